package godaddy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/juju/errors"
)

// Endpoint is one API operation: an HTTP method and a path template.
// Placeholders in the template look like {name} and are filled in order.
type Endpoint struct {
	Method string
	Path   string
}

// Expand returns the path with each placeholder replaced by the
// corresponding path-escaped argument. Empty arguments and the dot
// segments "." and ".." are not valid, since they would change which
// resource the path names.
func (e Endpoint) Expand(args ...string) (string, error) {
	var b strings.Builder
	rest := e.Path
	n := 0
	for {
		i := strings.IndexByte(rest, '{')
		if i < 0 {
			break
		}
		j := strings.IndexByte(rest[i:], '}')
		if j < 0 {
			return "", errors.NotValidf("path template %q", e.Path)
		}
		if n >= len(args) {
			return "", errors.Errorf("%s: missing value for %s", e.Path, rest[i:i+j+1])
		}
		switch args[n] {
		case "", ".", "..":
			return "", errors.NotValidf("%s value %q", rest[i:i+j+1], args[n])
		}
		b.WriteString(rest[:i])
		b.WriteString(url.PathEscape(args[n]))
		n++
		rest = rest[i+j+1:]
	}
	if n != len(args) {
		return "", errors.Errorf("%s: got %d values, want %d", e.Path, len(args), n)
	}
	b.WriteString(rest)
	return b.String(), nil
}

// PageOptions are the paging parameters accepted by list operations.
// Nil fields are left out of the request; any value that is set,
// zero included, is sent as given.
type PageOptions struct {
	Limit  *int `url:"limit,omitempty"`
	Offset *int `url:"offset,omitempty"`
}

// Int returns a pointer to v, for the optional fields of PageOptions
// and SuggestOptions.
func Int(v int) *int {
	return &v
}

// service is the common part of a resource group.
type service struct {
	api Requester
}

// call performs the request for e. Bodies are only sent for POST and PUT.
func (s service) call(ctx context.Context, e Endpoint, params, body any, args ...string) (json.RawMessage, error) {
	path, err := e.Expand(args...)
	if err != nil {
		return nil, errors.Trace(err)
	}
	switch e.Method {
	case http.MethodGet:
		return s.api.Get(ctx, path, params)
	case http.MethodPost:
		return s.api.Post(ctx, path, params, body)
	case http.MethodPut:
		return s.api.Put(ctx, path, params, body)
	case http.MethodDelete:
		return s.api.Delete(ctx, path, params)
	default:
		return nil, errors.NotSupportedf("method %s", e.Method)
	}
}

// encodeQuery encodes params as a query string. Struct fields keep
// their declared order; url.Values and anything left over are sorted.
func encodeQuery(params any) (string, error) {
	var vals url.Values
	var order []string
	switch p := params.(type) {
	case nil:
		return "", nil
	case url.Values:
		vals = p
	default:
		var err error
		vals, err = query.Values(params)
		if err != nil {
			return "", errors.Annotate(err, "encoding query parameters")
		}
		order = fieldOrder(reflect.TypeOf(params))
	}
	if len(vals) == 0 {
		return "", nil
	}
	seen := make(map[string]bool, len(vals))
	var b strings.Builder
	add := func(k string) {
		if seen[k] {
			return
		}
		seen[k] = true
		for _, v := range vals[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	for _, k := range order {
		if _, ok := vals[k]; ok {
			add(k)
		}
	}
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		add(k)
	}
	return b.String(), nil
}

// fieldOrder lists the query names of the fields of struct type t
// in declaration order.
func fieldOrder(t reflect.Type) []string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("url")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if f.Anonymous && name == "" {
			names = append(names, fieldOrder(f.Type)...)
			continue
		}
		if name == "" {
			name = f.Name
		}
		names = append(names, name)
	}
	return names
}
