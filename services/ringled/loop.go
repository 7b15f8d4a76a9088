package ringled

import (
	"context"
	"runtime"
)

// Run polls the sweep button and then the advance button, in that order,
// until ctx is cancelled. Cancellation is only observed between iterations;
// a sweep or a release wait in progress always completes first.
//
// Firmware passes context.Background(), so Run never returns there.
func Run(ctx context.Context, sweep *Sweep, ctrl *Controller) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		sweep.Poll()
		ctrl.Poll()
		// Let the telemetry goroutines run on cooperative schedulers.
		runtime.Gosched()
	}
}
