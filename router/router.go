// Package router defines the routing contract the dispatch core consumes, and
// ships a straightforward table implementation. The matching algorithm behind
// the contract is deliberately replaceable: anything able to resolve a method
// and a normalized path into an Endpoint will do.
package router

import (
	"github.com/strand-web/strand/handler"
	"github.com/strand-web/strand/http"
	"github.com/strand-web/strand/http/method"
	"github.com/strand-web/strand/kv"
)

// Router resolves a method and a normalized path (leading slash, percent
// decoded, no query or fragment) into an Endpoint.
type Router interface {
	Find(m method.Method, path string) Endpoint
}

// Endpoint is the resolved outcome of routing, produced once per dispatch and
// consumed immediately.
type Endpoint struct {
	// Handler is nil when nothing is registered for the method+path pair.
	Handler handler.Factory
	// Variables are extracted from the matched route pattern.
	Variables *kv.Storage
	// Hyperlinks enumerate sibling routes registered at the path. They are
	// populated even when the method itself missed.
	Hyperlinks []http.Link
}

// None is the automatic endpoint for targets that bypass routing entirely:
// asterisk targets and targets with no extractable path.
func None() Endpoint {
	return Endpoint{Variables: kv.New()}
}
