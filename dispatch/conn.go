// Package dispatch hosts the per-connection request/response state machine.
// The transport delivers I/O readiness events; the machine parses the target,
// runs the context-filter chain, resolves the endpoint and then relays the
// remaining events to the selected handler, or serves a synthesized error
// head. No worker ever blocks on a single connection: every event method
// returns a directive naming the next event the connection wants.
package dispatch

import (
	"io"
	"time"

	"github.com/strand-web/strand/config"
	"github.com/strand-web/strand/filter"
	"github.com/strand-web/strand/handler"
	"github.com/strand-web/strand/http"
	"github.com/strand-web/strand/http/method"
	"github.com/strand-web/strand/http/status"
	"github.com/strand-web/strand/kv"
	"github.com/strand-web/strand/metrics"
	"github.com/strand-web/strand/router"
	"github.com/strand-web/strand/scope"
	"github.com/strand-web/strand/uri"
)

const timeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// Request is the framed request head as delivered by the transport. Byte-level
// parsing and keep-alive bookkeeping stay on the transport's side of the
// contract.
type Request struct {
	Method  method.Method
	Target  string
	Headers *kv.Storage
}

// Options is the immutable wiring shared read-only by every connection of a
// server. Nothing in it is mutated after server start, so no locking applies.
type Options struct {
	Router          router.Router
	Fallback        handler.Factory
	ContextFilters  []filter.Context
	ResponseFilters []filter.Response
	Global          *scope.Global
	Config          *config.Config
	Metrics         *metrics.Metrics
	// Now is the clock stamping the Date header. Defaults to time.Now.
	Now func() time.Time
}

// State names the phase of the connection machine, exposed for observability.
type State uint8

const (
	StateIdle State = iota
	StateReadingBody
	StateWritingHead
	StateWritingBody
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReadingBody:
		return "reading-body"
	case StateWritingHead:
		return "writing-head"
	case StateWritingBody:
		return "writing-body"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Conn drives a single connection. It owns the connection's one-shot
// continuation handle and all per-request mutable state; nothing here is
// shared across connections or goroutines.
type Conn struct {
	opts    *Options
	control *http.Control
	state   State

	// the write method: a live handler, or a pending synthesized error head
	handler    handler.Handler
	errorHead  *http.Head
	dispatched bool

	filterEnv filter.Env
}

// NewConn binds a fresh connection driver to its continuation handle.
func NewConn(opts *Options, control *http.Control) *Conn {
	return &Conn{opts: opts, control: control}
}

// State reports the current phase of the machine.
func (c *Conn) State() State {
	return c.state
}

// OnRequest consumes the continuation handle and dispatches the request: URI
// parsing, context filters, endpoint resolution, handler selection. The
// returned directive tells the transport whether to wait for request body
// bytes or to proceed straight to writing. Dispatching the same driver twice
// is an invariant violation reported as status.ErrConnReused; it halts only
// this connection.
func (c *Conn) OnRequest(req Request) (http.Next, error) {
	if c.dispatched || c.control == nil {
		return 0, status.ErrConnReused
	}

	control := c.control
	c.control = nil
	c.dispatched = true

	if err := control.Consume(); err != nil {
		return 0, err
	}

	cfg := c.opts.Config
	resp := http.NewResponse().
		Header("Date", c.now().UTC().Format(timeFormat)).
		ContentType(cfg.ContentType).
		Header("Server", cfg.Server)

	for key, value := range cfg.DefaultHeaders {
		resp.Header(key, value)
	}

	storage := scope.NewStorage()
	c.filterEnv = filter.Env{Storage: storage, Global: c.opts.Global}

	parsed, err := uri.Parse(req.Target)
	if err != nil {
		c.opts.Metrics.BadTarget()
		return c.errorOut(resp.Code(status.BadRequest)), nil
	}

	ctx := &http.Context{
		Method:   req.Method,
		Headers:  req.Headers,
		URI:      parsed.URI,
		Host:     parsed.Host,
		Query:    parsed.Query,
		Fragment: parsed.Fragment,
		Vars:     kv.New(),
		Storage:  storage,
		Global:   c.opts.Global,
		Control:  control,
	}

	if code, aborted := filter.RunContext(c.opts.ContextFilters, c.filterEnv, ctx).Aborted(); aborted {
		c.opts.Metrics.Abort()
		return c.errorOut(resp.Code(code)), nil
	}

	// asterisk targets bypass routing and resolve to the automatic endpoint
	endpoint := router.None()
	if path, ok := ctx.URI.AsPath(); ok {
		endpoint = c.opts.Router.Find(ctx.Method, path)
	}

	factory := endpoint.Handler
	if factory == nil {
		factory = c.opts.Fallback
	}

	if factory == nil {
		c.opts.Metrics.NoRoute()
		return c.errorOut(resp.Code(status.NotFound)), nil
	}

	if endpoint.Variables != nil {
		ctx.Vars = endpoint.Variables
	}
	ctx.Hyperlinks = endpoint.Hyperlinks

	c.opts.Metrics.Handler()
	c.handler = factory.New(ctx, resp)

	next := c.handler.OnRequest()
	c.advance(next)
	return next, nil
}

// OnRequestReadable forwards a request body chunk to the active handler. An
// error response ignores body bytes and stays ready to write.
func (c *Conn) OnRequestReadable(chunk []byte) http.Next {
	if c.handler == nil {
		return http.NextWrite
	}

	next := c.handler.OnRequestReadable(chunk)
	c.advance(next)
	return next
}

// OnResponse produces the response head. A synthesized error head may be
// consumed exactly once; asking again is an invariant violation reported as
// status.ErrHeadConsumed. Calling before dispatch reports
// status.ErrNotDispatched.
func (c *Conn) OnResponse() (http.Head, http.Next, error) {
	switch {
	case c.handler != nil:
		head, next := c.handler.OnResponse()
		c.state = StateWritingBody
		if next == http.NextEnd {
			c.state = StateDone
		}

		return head, next, nil
	case c.errorHead != nil:
		head := *c.errorHead
		c.errorHead = nil
		c.state = StateDone
		return head, http.NextEnd, nil
	case c.dispatched:
		return http.Head{}, 0, status.ErrHeadConsumed
	default:
		return http.Head{}, 0, status.ErrNotDispatched
	}
}

// OnResponseWritable lets the handler produce body bytes. The sink is wrapped
// by the response-filter chain composed for this request, so bytes flow
// through the filters in chain order before reaching the transport.
func (c *Conn) OnResponseWritable(sink io.Writer) http.Next {
	if c.handler == nil {
		c.state = StateDone
		return http.NextEnd
	}

	c.state = StateWritingBody
	next := c.handler.OnResponseWritable(filter.WrapSink(c.opts.ResponseFilters, c.filterEnv, sink))
	if next == http.NextEnd {
		c.state = StateDone
	}

	return next
}

func (c *Conn) errorOut(resp *http.Response) http.Next {
	head := resp.Head()
	c.errorHead = &head
	c.state = StateWritingHead
	return http.NextWrite
}

func (c *Conn) advance(next http.Next) {
	switch next {
	case http.NextRead:
		c.state = StateReadingBody
	case http.NextWrite:
		c.state = StateWritingHead
	case http.NextEnd:
		c.state = StateDone
	}
}

func (c *Conn) now() time.Time {
	if c.opts.Now != nil {
		return c.opts.Now()
	}

	return time.Now()
}
