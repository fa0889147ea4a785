package godaddy

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/juju/errors"
)

var testCreds = Credentials{Key: "KEY", Secret: "SECRET"}

// request is what a test server saw.
type request struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

// newTestServer starts a server that records every request and answers
// with status and body. It returns a Client pointed at it.
func newTestServer(c *qt.C, status int, body string) (*Client, *[]request) {
	var reqs []request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		reqs = append(reqs, request{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   string(b),
		})
		if body != "" {
			w.Header().Set("Content-Type", JSON)
		}
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	c.Cleanup(srv.Close)
	client, err := NewClient(srv.URL, testCreds, WithHTTPClient(srv.Client()))
	c.Assert(err, qt.IsNil)
	return client, &reqs
}

func TestGetReturnsBodyVerbatim(t *testing.T) {
	c := qt.New(t)
	body := `{"z": 1, "a": {"y": [1, 2], "b": null}}`
	client, reqs := newTestServer(c, http.StatusOK, body)

	msg, err := client.Get(context.Background(), "/v1/domains/example.com", nil)
	c.Assert(err, qt.IsNil)
	c.Assert(string(msg), qt.Equals, body)
	c.Assert(*reqs, qt.HasLen, 1)
	r := (*reqs)[0]
	c.Assert(r.Method, qt.Equals, "GET")
	c.Assert(r.Path, qt.Equals, "/v1/domains/example.com")
	c.Assert(r.Header.Get("Authorization"), qt.Equals, "sso-key KEY:SECRET")
	c.Assert(r.Header.Get("Accept"), qt.Equals, JSON)
	c.Assert(r.Header.Get("Content-Type"), qt.Equals, "")
}

func TestHTTPErrorCarriesStatusAndBody(t *testing.T) {
	c := qt.New(t)
	body := `{"code":"INVALID_BODY","message":"Request body doesn't fulfill schema"}`
	client, _ := newTestServer(c, http.StatusUnprocessableEntity, body)

	msg, err := client.Get(context.Background(), "/v1/domains/available", url.Values{"domain": {"x"}})
	c.Assert(msg, qt.IsNil)
	var herr *HTTPError
	c.Assert(err, qt.ErrorAs, &herr)
	c.Assert(herr.StatusCode, qt.Equals, http.StatusUnprocessableEntity)
	c.Assert(string(herr.Body), qt.Equals, body)
	c.Assert(herr.Code, qt.Equals, "INVALID_BODY")
	c.Assert(err, qt.ErrorMatches, `GET .*/v1/domains/available\?domain=x: HTTP error 422 Unprocessable Entity \(INVALID_BODY: Request body doesn't fulfill schema\)`)
	c.Assert(IsStatus(err, http.StatusUnprocessableEntity), qt.IsTrue)
	c.Assert(IsStatus(err, http.StatusNotFound), qt.IsFalse)
}

func TestHTTPErrorWithPlainBody(t *testing.T) {
	c := qt.New(t)
	client, _ := newTestServer(c, http.StatusInternalServerError, "oops")

	_, err := client.Get(context.Background(), "/v1/orders", nil)
	c.Assert(err, qt.ErrorMatches, `GET .*/v1/orders: HTTP error 500 Internal Server Error`)
}

func TestMalformedResponse(t *testing.T) {
	c := qt.New(t)
	client, _ := newTestServer(c, http.StatusOK, "<html>not json</html>")

	_, err := client.Get(context.Background(), "/v1/domains", nil)
	c.Assert(errors.Is(err, ErrMalformedResponse), qt.IsTrue)
}

func TestEmptyResponse(t *testing.T) {
	c := qt.New(t)
	client, reqs := newTestServer(c, http.StatusNoContent, "")

	msg, err := client.Delete(context.Background(), "/v1/subscriptions/123", nil)
	c.Assert(err, qt.IsNil)
	c.Assert(msg, qt.IsNil)
	c.Assert((*reqs)[0].Method, qt.Equals, "DELETE")
}

func TestTransportErrorPropagates(t *testing.T) {
	c := qt.New(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client, err := NewClient(srv.URL, testCreds)
	c.Assert(err, qt.IsNil)

	_, err = client.Get(context.Background(), "/v1/domains", nil)
	c.Assert(err, qt.Not(qt.IsNil))
	var uerr *url.Error
	c.Assert(errors.Cause(err), qt.ErrorAs, &uerr)
	var herr *HTTPError
	c.Assert(errors.As(err, &herr), qt.IsFalse)
}

func TestPostAndPutSendJSONBody(t *testing.T) {
	c := qt.New(t)
	client, reqs := newTestServer(c, http.StatusOK, `{}`)

	_, err := client.Post(context.Background(), "/v1/domains/available", nil, []string{"a.com", "b.com"})
	c.Assert(err, qt.IsNil)
	_, err = client.Put(context.Background(), "/v1/x", nil, json.RawMessage(`[{"data":"1.2.3.4"}]`))
	c.Assert(err, qt.IsNil)

	c.Assert(*reqs, qt.HasLen, 2)
	c.Assert((*reqs)[0].Method, qt.Equals, "POST")
	c.Assert((*reqs)[0].Body, qt.Equals, `["a.com","b.com"]`)
	c.Assert((*reqs)[0].Header.Get("Content-Type"), qt.Equals, JSON)
	c.Assert((*reqs)[1].Method, qt.Equals, "PUT")
	c.Assert((*reqs)[1].Body, qt.Equals, `[{"data":"1.2.3.4"}]`)
}

func TestInvalidBodyIsNotSent(t *testing.T) {
	c := qt.New(t)
	client, reqs := newTestServer(c, http.StatusOK, `{}`)

	_, err := client.Put(context.Background(), "/v1/x", nil, json.RawMessage(`{nope`))
	c.Assert(err, qt.ErrorMatches, `encoding request body: JSON body not valid`)
	_, err = client.Post(context.Background(), "/v1/x", nil, json.RawMessage(``))
	c.Assert(err, qt.ErrorMatches, `encoding request body: .*`)
	c.Assert(*reqs, qt.HasLen, 0)
}

func TestRawBodyIsSentUnchanged(t *testing.T) {
	c := qt.New(t)
	client, reqs := newTestServer(c, http.StatusOK, `{}`)
	body := "[\n  {\"data\": \"192.0.2.7\", \"ttl\": 600}\n]"

	_, err := client.Put(context.Background(), "/v1/domains/example.com/records/A/www", nil, json.RawMessage(body))
	c.Assert(err, qt.IsNil)
	_, err = client.Post(context.Background(), "/v1/domains/available", nil, json.RawMessage(`["a.com", "b.org"]`))
	c.Assert(err, qt.IsNil)

	c.Assert(*reqs, qt.HasLen, 2)
	c.Assert((*reqs)[0].Body, qt.Equals, body)
	c.Assert((*reqs)[1].Body, qt.Equals, `["a.com", "b.org"]`)
}

func TestOptionalHeaders(t *testing.T) {
	c := qt.New(t)
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		io.WriteString(w, "[]")
	}))
	defer srv.Close()
	client, err := NewClient(srv.URL, testCreds, WithUserAgent("godaddy-test/1"), WithShopperID("12345"))
	c.Assert(err, qt.IsNil)

	_, err = client.Orders.List(context.Background(), nil)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Get("User-Agent"), qt.Equals, "godaddy-test/1")
	c.Assert(got.Get("X-Shopper-Id"), qt.Equals, "12345")
}

func TestResolveURL(t *testing.T) {
	c := qt.New(t)
	client, err := NewClient("https://api.ote-godaddy.com", testCreds)
	c.Assert(err, qt.IsNil)

	tests := []struct {
		path   string
		params any
		want   string
	}{
		{"/v1/domains", nil, "https://api.ote-godaddy.com/v1/domains"},
		{"v1/orders?limit=1", &PageOptions{Offset: Int(5)}, "https://api.ote-godaddy.com/v1/orders?limit=1&offset=5"},
		{"https://api.ote-godaddy.com/v1/x", nil, "https://api.ote-godaddy.com/v1/x"},
		{"/v1/domains/available", url.Values{"domain": {"a b"}}, "https://api.ote-godaddy.com/v1/domains/available?domain=a+b"},
	}
	for _, test := range tests {
		got, err := client.ResolveURL(test.path, test.params)
		c.Assert(err, qt.IsNil)
		c.Check(got, qt.Equals, test.want, qt.Commentf("path %q", test.path))
	}
}

func TestOtherHostsAreRefused(t *testing.T) {
	c := qt.New(t)
	client, reqs := newTestServer(c, http.StatusOK, `{}`)

	for _, path := range []string{
		"https://example.com/v1/domains",
		"//example.com/v1/domains",
		"ftp" + client.BaseURL()[len("http"):] + "/v1/domains",
	} {
		_, err := client.ResolveURL(path, nil)
		c.Check(errors.Is(err, errors.NotValid), qt.IsTrue, qt.Commentf("path %q", path))
		_, err = client.Get(context.Background(), path, nil)
		c.Check(errors.Is(err, errors.NotValid), qt.IsTrue, qt.Commentf("path %q", path))
	}
	c.Assert(*reqs, qt.HasLen, 0)
}

func TestNewClientDefaults(t *testing.T) {
	c := qt.New(t)
	client, err := NewClient("", testCreds)
	c.Assert(err, qt.IsNil)
	c.Assert(client.BaseURL(), qt.Equals, DefaultBaseURL)

	client, err = NewClient(OTEBaseURL, testCreds)
	c.Assert(err, qt.IsNil)
	c.Assert(client.BaseURL(), qt.Equals, "https://api.ote-godaddy.com")

	_, err = NewClient("/relative", testCreds)
	c.Assert(errors.Is(err, errors.NotValid), qt.IsTrue)
}
