// Package handler defines the contract between the dispatch core and the
// user-supplied request handlers, plus a convenience adapter for plain
// buffered handlers.
package handler

import (
	"io"

	"github.com/strand-web/strand/http"
)

// Handler drives a single request through its event-ordered lifetime. The
// transport delivers readiness events strictly in the sequence
// request -> body chunks -> head -> body writes; the returned directives steer
// which event comes next.
type Handler interface {
	// OnRequest runs right after dispatch selected this handler. The directive
	// tells whether the connection should wait for request body bytes or
	// proceed straight to writing.
	OnRequest() http.Next
	// OnRequestReadable delivers the next chunk of the request body.
	OnRequestReadable(chunk []byte) http.Next
	// OnResponse produces the response head.
	OnResponse() (http.Head, http.Next)
	// OnResponseWritable writes response body bytes into the sink.
	OnResponseWritable(sink io.Writer) http.Next
}

// Factory mints one Handler per dispatched request. Implementations are shared
// across connections and must not carry per-request state themselves.
type Factory interface {
	New(c *http.Context, resp *http.Response) Handler
}

// Func adapts an ordinary buffered handler function to the event-driven
// contract: the request body is accumulated chunk by chunk, the function runs
// once when the head is requested, and its response body is flushed during the
// writable phase.
type Func func(c *http.Context, resp *http.Response) *http.Response

func (f Func) New(c *http.Context, resp *http.Response) Handler {
	return &buffered{fn: f, ctx: c, resp: resp}
}

type buffered struct {
	fn   Func
	ctx  *http.Context
	resp *http.Response
	body []byte
	out  *http.Response
}

func (b *buffered) OnRequest() http.Next {
	return http.NextRead
}

func (b *buffered) OnRequestReadable(chunk []byte) http.Next {
	if len(chunk) == 0 {
		// the transport signals end of body with an empty chunk
		return http.NextWrite
	}

	b.body = append(b.body, chunk...)
	return http.NextRead
}

// Body exposes the request body accumulated so far. The handler function may
// call it through a closure over the adapter.
func (b *buffered) Body() []byte {
	return b.body
}

func (b *buffered) OnResponse() (http.Head, http.Next) {
	b.out = b.fn(b.ctx, b.resp)
	if b.out == nil {
		b.out = b.resp
	}

	if len(b.out.Body()) == 0 {
		return b.out.Head(), http.NextEnd
	}

	return b.out.Head(), http.NextWrite
}

func (b *buffered) OnResponseWritable(sink io.Writer) http.Next {
	if _, err := sink.Write(b.out.Body()); err != nil {
		return http.NextEnd
	}

	return http.NextEnd
}
