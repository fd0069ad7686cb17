package strand

import (
	"context"

	"github.com/strand-web/strand/dispatch"
	"github.com/strand-web/strand/http"
	"golang.org/x/sync/semaphore"
)

// Instance is a built server. It is immutable and safe for concurrent use:
// every connection gets its own driver from NewConn, and the shared wiring
// inside is read-only.
type Instance struct {
	opts    *dispatch.Options
	sem     *semaphore.Weighted
	workers int
}

// Workers reports the dispatch concurrency bound of the instance.
func (i *Instance) Workers() int {
	return i.workers
}

// NewConn mints a fresh per-connection driver around a one-shot continuation
// handle. The wake callback, if any, is how a suspended handler asks the
// transport for its next readiness event; pass nil when the transport polls.
func (i *Instance) NewConn(wake func(http.Next)) *dispatch.Conn {
	return dispatch.NewConn(i.opts, http.NewControl(wake))
}

// Dispatch runs the dispatch phase of a request under the instance's worker
// bound: target parsing, filters, routing and handler selection. Body and
// response events are cheap relays and stay unbounded. Blocks while all
// workers are busy; ctx cancels the wait.
func (i *Instance) Dispatch(ctx context.Context, c *dispatch.Conn, req dispatch.Request) (http.Next, error) {
	if err := i.sem.Acquire(ctx, 1); err != nil {
		return 0, err
	}
	defer i.sem.Release(1)

	return c.OnRequest(req)
}
