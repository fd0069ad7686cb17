// Package gorillaadapter satisfies the routing contract on top of gorilla/mux,
// for deployments that want its pattern syntax and matchers instead of the
// built-in table.
package gorillaadapter

import (
	nethttp "net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/strand-web/strand/handler"
	"github.com/strand-web/strand/http"
	"github.com/strand-web/strand/http/method"
	"github.com/strand-web/strand/kv"
	"github.com/strand-web/strand/router"
)

type registration struct {
	route   *mux.Route
	method  method.Method
	pattern string
	factory handler.Factory
}

// Router adapts a gorilla/mux route set. Patterns use gorilla syntax:
// "/users/{id}".
type Router struct {
	mux    *mux.Router
	routes []registration
}

func New() *Router {
	return &Router{mux: mux.NewRouter()}
}

// Route registers a handler for the method and gorilla pattern.
func (r *Router) Route(m method.Method, pattern string, f handler.Factory) *Router {
	route := r.mux.NewRoute().Path(pattern).Methods(m.String())
	r.routes = append(r.routes, registration{
		route:   route,
		method:  m,
		pattern: pattern,
		factory: f,
	})

	return r
}

// RouteFunc registers a plain buffered handler function.
func (r *Router) RouteFunc(m method.Method, pattern string, f handler.Func) *Router {
	return r.Route(m, pattern, f)
}

func (r *Router) Find(m method.Method, path string) router.Endpoint {
	endpoint := router.None()

	for _, reg := range r.routes {
		// match with the registration's own method, so the probe tells path
		// affinity and a method miss still contributes a hyperlink
		var match mux.RouteMatch
		if !reg.route.Match(probe(reg.method, path), &match) {
			continue
		}

		endpoint.Hyperlinks = append(endpoint.Hyperlinks, http.Link{
			Method: reg.method,
			Path:   reg.pattern,
		})

		if reg.method == m && endpoint.Handler == nil {
			endpoint.Handler = reg.factory
			endpoint.Variables = varsOf(match.Vars)
		}
	}

	return endpoint
}

func probe(m method.Method, path string) *nethttp.Request {
	return &nethttp.Request{
		Method: m.String(),
		URL:    &url.URL{Path: path},
	}
}

func varsOf(vars map[string]string) *kv.Storage {
	storage := kv.NewPrealloc(len(vars))
	for name, value := range vars {
		storage.Add(name, value)
	}

	return storage
}
