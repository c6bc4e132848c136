/*
Package runloop implements a single-threaded, cooperative task loop.

Work is never executed in parallel. Clients queue tasks, and the goroutine
owning the loop executes them turn by turn. Each turn first drains all
microtasks (including microtasks queued while draining) and then runs at
most one macrotask. Tasks queued during a turn's macrotask are executed in a
later turn, which is how deferred work is modelled: posting a macrotask
corresponds to a zero-delay timeout in an event-driven host.

Microtasks are used for delivery of notifications, macrotasks for deferred
recomputation.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package runloop

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'anchor.loop'.
func tracer() tracing.Trace {
	return tracing.Select("anchor.loop")
}
