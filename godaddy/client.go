// Package godaddy is a minimal client for the GoDaddy REST API.
//
// Every call is a single request authenticated with the sso-key scheme.
// Responses are returned as raw JSON so they can be printed exactly as
// the server sent them.
package godaddy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/juju/errors"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("godaddy.client")

// DefaultBaseURL is the production API. OTEBaseURL is GoDaddy's test
// environment, which needs its own key and secret.
const (
	DefaultBaseURL = "https://api.godaddy.com"
	OTEBaseURL     = "https://api.ote-godaddy.com"
)

// JSON is the MIME type of request and response bodies.
const JSON = "application/json"

// ErrMalformedResponse is wrapped by the error returned when a successful
// response does not hold valid JSON.
const ErrMalformedResponse = errors.ConstError("malformed response")

// Requester makes a request to a path relative to the API base URL
// and returns the JSON body of the response.
//
// params is nil, a url.Values, or a struct with `url` field tags.
// body is marshalled as JSON; a json.RawMessage is sent as is.
// A successful response with no body returns a nil message.
type Requester interface {
	Get(ctx context.Context, path string, params any) (json.RawMessage, error)
	Post(ctx context.Context, path string, params, body any) (json.RawMessage, error)
	Put(ctx context.Context, path string, params, body any) (json.RawMessage, error)
	Delete(ctx context.Context, path string, params any) (json.RawMessage, error)
}

// Client is a Requester for the GoDaddy API.
type Client struct {
	Domains       *Domains
	Subscriptions *Subscriptions
	Orders        *Orders

	baseURL   *url.URL
	client    *http.Client
	userAgent string
	shopperID string
}

var _ Requester = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the http.Client used for requests.
// Its transport is wrapped to add the Authorization header.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithUserAgent sets the User-Agent header of every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithShopperID sets the X-Shopper-Id header of every request.
// Resellers use it to act on behalf of a customer account.
func WithShopperID(id string) Option {
	return func(c *Client) {
		c.shopperID = id
	}
}

// NewClient returns a Client for the API at baseURL
// authenticated with creds.
func NewClient(baseURL string, creds Credentials, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Annotate(err, "parsing base URL")
	}
	if !base.IsAbs() {
		return nil, errors.NotValidf("base URL %q", baseURL)
	}
	c := &Client{
		baseURL: base,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	hc := *c.client
	hc.Transport = creds.Transport(hc.Transport)
	c.client = &hc

	c.Domains = &Domains{service{api: c}}
	c.Subscriptions = &Subscriptions{service{api: c}}
	c.Orders = &Orders{service{api: c}}
	return c, nil
}

// BaseURL returns the URL that request paths are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Get implements Requester.
func (c *Client) Get(ctx context.Context, path string, params any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, params, nil)
}

// Post implements Requester.
func (c *Client) Post(ctx context.Context, path string, params, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, params, body)
}

// Put implements Requester.
func (c *Client) Put(ctx context.Context, path string, params, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, params, body)
}

// Delete implements Requester.
func (c *Client) Delete(ctx context.Context, path string, params any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, params, nil)
}

// ResolveURL returns the absolute URL for path with params encoded
// as its query string. An absolute path must be on the same scheme and
// host as the base URL, so credentials never leave the API.
func (c *Client) ResolveURL(path string, params any) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", errors.Annotatef(err, "parsing path %q", path)
	}
	u := c.baseURL.ResolveReference(ref)
	if u.Scheme != c.baseURL.Scheme || u.Host != c.baseURL.Host {
		return "", errors.NotValidf("URL %q outside %s", path, c.baseURL.Redacted())
	}
	q, err := encodeQuery(params)
	if err != nil {
		return "", errors.Trace(err)
	}
	if q != "" {
		if u.RawQuery != "" {
			u.RawQuery += "&" + q
		} else {
			u.RawQuery = q
		}
	}
	return u.String(), nil
}

func (c *Client) do(ctx context.Context, method, path string, params, body any) (json.RawMessage, error) {
	urlStr, err := c.ResolveURL(path, params)
	if err != nil {
		return nil, errors.Trace(err)
	}
	var r io.Reader
	if body != nil {
		b, err := encodeBody(body)
		if err != nil {
			return nil, errors.Annotate(err, "encoding request body")
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, urlStr, r)
	if err != nil {
		return nil, errors.Annotate(err, "can not make new request")
	}
	req.Header.Set("Accept", JSON)
	if body != nil {
		req.Header.Set("Content-Type", JSON)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.shopperID != "" {
		req.Header.Set("X-Shopper-Id", c.shopperID)
	}

	logger.Debugf("%s %s", method, urlStr)
	if logger.IsTraceEnabled() {
		if data, err := httputil.DumpRequestOut(req, true); err == nil {
			logger.Tracef("%s request %s", method, data)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if logger.IsTraceEnabled() {
		if data, err := httputil.DumpResponse(resp, false); err == nil {
			logger.Tracef("%s response %s", method, data)
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Annotatef(err, "reading response from %s", urlStr)
	}
	logger.Debugf("%s %s: %s (%d bytes)", method, urlStr, resp.Status, len(data))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newHTTPError(method, urlStr, resp, data)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var msg json.RawMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%s %s: %w: %v", method, urlStr, ErrMalformedResponse, err)
	}
	return json.RawMessage(data), nil
}

// encodeBody marshals body as JSON. A json.RawMessage is only checked,
// so its bytes reach the server unchanged.
func encodeBody(body any) ([]byte, error) {
	raw, ok := body.(json.RawMessage)
	if !ok {
		return json.Marshal(body)
	}
	if !json.Valid(raw) {
		return nil, errors.NotValidf("JSON body")
	}
	return raw, nil
}
