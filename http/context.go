package http

import (
	"github.com/strand-web/strand/http/method"
	"github.com/strand-web/strand/kv"
	"github.com/strand-web/strand/scope"
	"github.com/strand-web/strand/uri"
)

// Link describes a sibling route registered at the same path, regardless of
// whether its method matched. Handlers use links for Allow headers and
// HATEOAS-style discovery.
type Link struct {
	Method method.Method
	Path   string
}

// Context is the per-request view handed to context filters and handlers. It
// is owned exclusively by the in-flight request: built at dispatch, destroyed
// when the handler finishes or the request is aborted, and never shared across
// connections or goroutines.
type Context struct {
	// Method is the request method the target was dispatched with.
	Method method.Method
	// Headers holds the request headers as delivered by the transport.
	Headers *kv.Storage
	// URI is the canonical request target, either a decoded path or asterisk.
	URI uri.URI
	// Host carries the authority of an absolute-form target. Inert metadata:
	// routing never consults it.
	Host *uri.Host
	// Query holds the decoded query parameters.
	Query *kv.Storage
	// Fragment distinguishes an absent fragment from a present-but-empty one.
	Fragment uri.Fragment
	// Vars are the path variables extracted by the router from the matched
	// route pattern.
	Vars *kv.Storage
	// Hyperlinks enumerate sibling routes at the resolved path.
	Hyperlinks []Link
	// Storage is filter-local data, created empty per request.
	Storage *scope.Storage
	// Global is the process-wide read-only application state.
	Global *scope.Global
	// Control is the connection's continuation handle, already consumed by
	// dispatch on behalf of this request.
	Control *Control
}
