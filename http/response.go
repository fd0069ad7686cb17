package http

import (
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
	"github.com/strand-web/strand/http/mime"
	"github.com/strand-web/strand/http/status"
	"github.com/strand-web/strand/kv"
)

type Header = kv.Pair

// Head is the status-and-headers half of a response. It is either produced by
// a handler incrementally or synthesized directly for early-exit error paths.
type Head struct {
	Code    status.Code
	Headers *kv.Storage
}

// Response is a chainable response builder. Dispatch seeds it with the default
// headers before any filter or handler runs; everything on it may be
// overridden downstream.
type Response struct {
	code    status.Code
	headers *kv.Storage
	body    []byte
}

// NewResponse returns a new instance of the Response object with status code
// set to 200 OK and no headers.
func NewResponse() *Response {
	return &Response{
		code:    status.OK,
		headers: kv.New(),
	}
}

// Code sets a Response code.
func (r *Response) Code(code status.Code) *Response {
	r.code = code
	return r
}

// ContentType sets a custom Content-Type header value.
func (r *Response) ContentType(value mime.MIME) *Response {
	return r.Header("Content-Type", value)
}

// Header sets the value of a header key, overriding a previously set one.
func (r *Response) Header(key, value string) *Response {
	r.headers.Set(key, value)
	return r
}

// AddHeader appends a header pair, keeping previously set values of the key.
func (r *Response) AddHeader(key, value string) *Response {
	r.headers.Add(key, value)
	return r
}

// String sets the response's body to the passed string.
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself.
func (r *Response) Bytes(body []byte) *Response {
	r.body = body
	return r
}

// TryJSON serializes the model into the response body and switches the
// content type accordingly.
func (r *Response) TryJSON(model any) (*Response, error) {
	body, err := json.ConfigDefault.Marshal(model)
	if err != nil {
		return r, err
	}

	return r.Bytes(body).ContentType(mime.JSON), nil
}

// JSON does the same as TryJSON does, except a serialization error is
// implicitly converted into a 500 response.
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Error renders the error as the response. status.HTTPError values carry their
// own code, everything else reports 500 Internal Server Error.
func (r *Response) Error(err error) *Response {
	if e, ok := err.(status.HTTPError); ok {
		return r.Code(e.Code).ContentType(mime.Plain).String(e.Message)
	}

	return r.Code(status.InternalServerError).
		ContentType(mime.Plain).
		String(err.Error())
}

// Body exposes the accumulated response body.
func (r *Response) Body() []byte {
	return r.body
}

// Head snapshots the status-and-headers half of the builder.
func (r *Response) Head() Head {
	return Head{
		Code:    r.code,
		Headers: r.headers,
	}
}

// Clear resets the builder for reuse.
func (r *Response) Clear() *Response {
	r.code = status.OK
	r.headers.Clear()
	r.body = nil
	return r
}
