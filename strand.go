// Package strand is the request-dispatch core of an HTTP server framework.
// It owns everything between a framed request head and the response bytes:
// target parsing, the context-filter chain, endpoint resolution and the
// per-connection state machine. Byte-level HTTP parsing and socket handling
// belong to an external transport driving the dispatch events.
package strand

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/strand-web/strand/config"
	"github.com/strand-web/strand/dispatch"
	"github.com/strand-web/strand/filter"
	"github.com/strand-web/strand/handler"
	"github.com/strand-web/strand/metrics"
	"github.com/strand-web/strand/router"
	"github.com/strand-web/strand/scope"
	"golang.org/x/sync/semaphore"
)

// Server is the one-stop composition point: fill in the parts you need and
// call Build. The zero value builds a server that answers 404 to everything.
type Server struct {
	// Router resolves endpoints. Leaving it nil routes nothing, so every
	// request falls through to Fallback.
	Router router.Router
	// Fallback serves requests the router has no endpoint for. Nil means a
	// synthesized 404.
	Fallback handler.Factory
	// ContextFilters run in order before routing; the first abort wins.
	ContextFilters []filter.Context
	// ResponseFilters wrap the outgoing body sink in chain order.
	ResponseFilters []filter.Response
	// Global is shared immutable state reachable from every handler and
	// filter. It is copied at build time.
	Global map[any]any
	// Config tunes the instance. Nil means config.Default().
	Config *config.Config
	// Registry receives the dispatch outcome counters. Nil disables
	// instrumentation entirely.
	Registry prometheus.Registerer
}

// Build assembles an immutable Instance. The Server struct may be discarded
// afterwards; nothing built retains it.
func (s Server) Build() *Instance {
	cfg := s.Config
	if cfg == nil {
		cfg = config.Default()
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = config.DefaultWorkers()
	}

	var m *metrics.Metrics
	if s.Registry != nil {
		m = metrics.New(s.Registry)
	}

	r := s.Router
	if r == nil {
		r = router.NewTable()
	}

	return &Instance{
		opts: &dispatch.Options{
			Router:          r,
			Fallback:        s.Fallback,
			ContextFilters:  s.ContextFilters,
			ResponseFilters: s.ResponseFilters,
			Global:          scope.NewGlobal(s.Global),
			Config:          cfg,
			Metrics:         m,
		},
		workers: workers,
		sem:     semaphore.NewWeighted(int64(workers)),
	}
}
