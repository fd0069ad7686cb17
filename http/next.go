package http

// Next is the directive a dispatch stage hands back to the transport, naming
// the readiness event the connection wants next.
type Next uint8

const (
	// NextRead asks for more request bytes.
	NextRead Next = iota + 1
	// NextWrite proceeds to the writable phase of the response.
	NextWrite
	// NextEnd marks the response as complete, the connection is handed back
	// to the transport for keep-alive reuse or closure.
	NextEnd
)

func (n Next) String() string {
	switch n {
	case NextRead:
		return "read"
	case NextWrite:
		return "write"
	case NextEnd:
		return "end"
	default:
		return "unknown"
	}
}
