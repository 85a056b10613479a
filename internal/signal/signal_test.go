package signal_test

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ipreg/superglue/internal/mocks"
	"github.com/ipreg/superglue/internal/pp"
	"github.com/ipreg/superglue/internal/signal"
)

//nolint:paralleltest //signals are global
func TestNotifyContext(t *testing.T) {
	delta := time.Second / 10
	for name, tc := range map[string]struct {
		signalDelay   time.Duration
		signal        syscall.Signal
		prepareMockPP func(m *mocks.MockPP)
	}{
		"no-signal": {0, 0, nil},
		"sigint": {
			time.Second / 10, syscall.SIGINT,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiSignal, "Caught signal: %v", syscall.SIGINT)
			},
		},
		"sigterm": {
			time.Second / 10, syscall.SIGTERM,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiSignal, "Caught signal: %v", syscall.SIGTERM)
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}

			ctx, stop := signal.NotifyContext(context.Background(), mockPP)
			defer stop()

			done := make(chan struct{}, 1)
			signalSelf := func() {
				if tc.signalDelay > 0 {
					time.Sleep(tc.signalDelay)
					err := syscall.Kill(os.Getpid(), tc.signal)
					require.NoError(t, err)
				} else {
					stop()
				}
				done <- struct{}{}
			}

			startTime := time.Now()
			expectedEndTime := startTime.Add(tc.signalDelay)
			go signalSelf()
			<-ctx.Done()
			<-done
			require.WithinDuration(t, expectedEndTime, time.Now(), delta)
			require.ErrorIs(t, ctx.Err(), context.Canceled)
		})
	}
}
