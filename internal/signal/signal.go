// Package signal implements the handling of signals.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ipreg/superglue/internal/pp"
)

// Signals contains the signals to catch.
//
//nolint:gochecknoglobals
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// NotifyContext gives a copy of the context that will be canceled by signals in [Signals].
// The caught signal is reported through ppfmt. Calling the returned function
// stops catching the signals and cancels the context.
func NotifyContext(ctx context.Context, ppfmt pp.PP) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	chanSignal := make(chan os.Signal, len(Signals))
	signal.Notify(chanSignal, Signals...)

	go func() {
		select {
		case sig := <-chanSignal:
			ppfmt.Noticef(pp.EmojiSignal, "Caught signal: %v", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(chanSignal)
		cancel()
	}
}
