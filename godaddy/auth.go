package godaddy

import (
	"net/http"
	"strings"

	"github.com/juju/errors"
	"golang.org/x/oauth2"
)

// Environment variables holding the API credentials.
const (
	KeyEnv    = "GODADDY_KEY"
	SecretEnv = "GODADDY_SECRET"
)

// Scheme is the Authorization scheme used by the GoDaddy API.
const Scheme = "sso-key"

// Credentials is an API key and secret pair.
//
// Credentials is an oauth2.TokenSource whose tokens carry the sso-key
// scheme, so it can decorate requests through an oauth2.Transport.
// No validation of the key or secret is done here; the remote API
// rejects bad values with a 401.
type Credentials struct {
	Key    string
	Secret string
}

// LoadCredentials reads the key and secret using lookup,
// which is normally os.LookupEnv.
// The returned error satisfies errors.Is(err, errors.NotValid)
// and names every missing variable.
// The Credentials are returned even when incomplete.
func LoadCredentials(lookup func(string) (string, bool)) (Credentials, error) {
	var c Credentials
	var missing []string
	var ok bool
	if c.Key, ok = lookup(KeyEnv); !ok || c.Key == "" {
		missing = append(missing, KeyEnv)
	}
	if c.Secret, ok = lookup(SecretEnv); !ok || c.Secret == "" {
		missing = append(missing, SecretEnv)
	}
	if len(missing) > 0 {
		return c, errors.NotValidf("credentials (%s not set)", strings.Join(missing, ", "))
	}
	return c, nil
}

// Header returns the Authorization header value.
func (c Credentials) Header() string {
	t, _ := c.Token()
	return t.Type() + " " + t.AccessToken
}

// Token implements oauth2.TokenSource.
func (c Credentials) Token() (*oauth2.Token, error) {
	return &oauth2.Token{
		TokenType:   Scheme,
		AccessToken: c.Key + ":" + c.Secret,
	}, nil
}

// Transport returns a RoundTripper that sets the Authorization header
// on every request before handing it to base.
// A nil base means http.DefaultTransport.
func (c Credentials) Transport(base http.RoundTripper) http.RoundTripper {
	return &oauth2.Transport{
		Source: c,
		Base:   base,
	}
}
