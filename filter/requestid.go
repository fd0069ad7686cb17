package filter

import (
	"github.com/dchest/uniuri"
	"github.com/strand-web/strand/http"
	"github.com/strand-web/strand/scope"
)

type requestIDKey struct{}

// RequestID is a context filter stamping a random token into the request's
// scoped storage, where later filters, the handler and the response filters
// can pick it up.
type RequestID struct {
	// Length of the generated token. Defaults to uniuri.StdLen.
	Length int
}

func (r RequestID) Modify(env Env, c *http.Context) Action {
	length := r.Length
	if length == 0 {
		length = uniuri.StdLen
	}

	env.Storage.Set(requestIDKey{}, uniuri.NewLen(length))
	return Next()
}

// IDOf extracts the token stamped by RequestID, if any.
func IDOf(s *scope.Storage) (string, bool) {
	return scope.Load[string](s, requestIDKey{})
}
