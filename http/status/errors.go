package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrBadRequest       = NewError(BadRequest, "bad request")
	ErrMalformedTarget  = NewError(BadRequest, "malformed request target")
	ErrNotFound         = NewError(NotFound, "not found")
	ErrMethodNotAllowed = NewError(MethodNotAllowed, "method not allowed")
	ErrCloseConnection  = NewError(InternalServerError, "actively closing the connection")

	// The errors below report dispatch invariant violations. They never reach a client;
	// the transport must drop the offending connection and nothing else.
	ErrConnReused      = NewError(InternalServerError, "connection driver was dispatched twice")
	ErrControlConsumed = NewError(InternalServerError, "continuation handle was already consumed")
	ErrHeadConsumed    = NewError(InternalServerError, "response head was already consumed")
	ErrNotDispatched   = NewError(InternalServerError, "response head requested before dispatch")
)
