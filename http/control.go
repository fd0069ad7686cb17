package http

import (
	"github.com/strand-web/strand/http/status"
)

// Control is the continuation handle of a connection. The transport mints one
// per connection; dispatch consumes it exactly once and threads it into the
// request context, where the handler may use it to request further readiness
// notifications. Consumption is guarded by an explicit flag instead of a
// runtime fault: a second consumption reports status.ErrControlConsumed and
// affects nothing but the offending connection.
type Control struct {
	wake     func(Next)
	consumed bool
}

// NewControl wraps the transport's wake callback. The callback may be called
// any number of times after the handle was consumed.
func NewControl(wake func(Next)) *Control {
	return &Control{wake: wake}
}

// Consume claims the handle. Only the first call succeeds.
func (c *Control) Consume() error {
	if c.consumed {
		return status.ErrControlConsumed
	}

	c.consumed = true
	return nil
}

// Consumed reports whether the handle was already claimed by dispatch.
func (c *Control) Consumed() bool {
	return c.consumed
}

// Wake asks the transport to deliver the named readiness event to this
// connection's state machine.
func (c *Control) Wake(next Next) {
	if c.wake != nil {
		c.wake(next)
	}
}
