// Package filter defines the two pluggable hook chains of the dispatch core:
// context filters, which observe or rewrite a request before routing and may
// abort it, and response filters, which transform outgoing body bytes after
// the handler was selected.
package filter

import (
	"io"

	"github.com/strand-web/strand/http"
	"github.com/strand-web/strand/http/status"
	"github.com/strand-web/strand/scope"
)

// Action is the verdict a context filter returns: proceed to the next filter,
// or abort dispatch with a status.
type Action struct {
	code    status.Code
	aborted bool
}

func Next() Action {
	return Action{}
}

func Abort(code status.Code) Action {
	return Action{code: code, aborted: true}
}

// Aborted returns the abort status, if any.
func (a Action) Aborted() (status.Code, bool) {
	return a.code, a.aborted
}

// Env is what every filter invocation borrows: the request-scoped storage and
// the process-wide global state. Filters must not retain either beyond the
// call.
type Env struct {
	Storage *scope.Storage
	Global  *scope.Global
}

// Context observes or rewrites the request context before routing.
type Context interface {
	Modify(env Env, c *http.Context) Action
}

// ContextFunc adapts a plain function to the Context interface.
type ContextFunc func(env Env, c *http.Context) Action

func (f ContextFunc) Modify(env Env, c *http.Context) Action {
	return f(env, c)
}

// RunContext executes the chain in order. The first abort halts the chain: no
// subsequent filter runs.
func RunContext(filters []Context, env Env, c *http.Context) Action {
	for _, f := range filters {
		if action := f.Modify(env, c); action.aborted {
			return action
		}
	}

	return Next()
}

// Response transforms outgoing body bytes by wrapping the downstream sink.
// There is no abort capability at this stage: the status code is already on
// the wire by the time body bytes flow.
type Response interface {
	Wrap(env Env, sink io.Writer) io.Writer
}

// ResponseFunc adapts a plain function to the Response interface.
type ResponseFunc func(env Env, sink io.Writer) io.Writer

func (f ResponseFunc) Wrap(env Env, sink io.Writer) io.Writer {
	return f(env, sink)
}

// WrapSink composes the response filters at response-construction time. Bytes
// written by the handler pass the filters in chain order before reaching the
// sink.
func WrapSink(filters []Response, env Env, sink io.Writer) io.Writer {
	for i := len(filters) - 1; i >= 0; i-- {
		sink = filters[i].Wrap(env, sink)
	}

	return sink
}
