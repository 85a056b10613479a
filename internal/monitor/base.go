// Package monitor implements dead man's switches for the runs of the program.
package monitor

import (
	"context"

	"github.com/ipreg/superglue/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_monitor.go -package=mocks . Monitor

// maxReadLength is the maximum number of bytes read from an HTTP response.
const maxReadLength int64 = 102400

// Monitor is a dead man's switch or a heartbeat monitor.
type Monitor interface {
	// Describe a monitor in a human-readable format by calling callback with service names and params.
	Describe(callback func(service, params string))

	// Start tells the monitor that a run has started.
	Start(ctx context.Context, ppfmt pp.PP, message string) bool

	// Success tells the monitor that the run succeeded.
	Success(ctx context.Context, ppfmt pp.PP, message string) bool

	// Failure tells the monitor that the run failed.
	Failure(ctx context.Context, ppfmt pp.PP, message string) bool

	// Log sends a message without changing the status of the run.
	Log(ctx context.Context, ppfmt pp.PP, message string) bool

	// ExitStatus reports the exit code of the program.
	ExitStatus(ctx context.Context, ppfmt pp.PP, code int, message string) bool
}
