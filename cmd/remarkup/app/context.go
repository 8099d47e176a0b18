package app

import (
	"context"
	"os/signal"
	"syscall"
)

// SignalContext returns a context cancelled by SIGINT or SIGTERM. The stop
// function releases the signal registration; once the first signal has been
// delivered, a second interrupt kills the process through the default
// handler.
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
