package godaddy

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/juju/errors"
)

// HTTPError is returned when the API answers with a non-2xx status.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       []byte

	// Code and Message are taken from the body when it is a GoDaddy
	// error document.
	Code    string
	Message string
}

func newHTTPError(method, url string, resp *http.Response, body []byte) *HTTPError {
	e := &HTTPError{
		Method:     method,
		URL:        url,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       body,
	}
	var doc struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &doc) == nil {
		e.Code = doc.Code
		e.Message = doc.Message
	}
	return e
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s %s: HTTP error %s", e.Method, e.URL, e.Status)
	switch {
	case e.Code != "" && e.Message != "":
		msg += fmt.Sprintf(" (%s: %s)", e.Code, e.Message)
	case e.Message != "":
		msg += fmt.Sprintf(" (%s)", e.Message)
	}
	return msg
}

// IsStatus reports whether err is an *HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var e *HTTPError
	return errors.As(err, &e) && e.StatusCode == code
}
