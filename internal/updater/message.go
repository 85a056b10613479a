package updater

import (
	"fmt"

	"github.com/ipreg/superglue/internal/config"
	"github.com/ipreg/superglue/internal/notifier"
)

// MonitorMessage is a one-line summary for monitors.
func (r Result) MonitorMessage(opts *config.Options) string {
	switch r.Outcome {
	case OutcomeSubmitted:
		return fmt.Sprintf("Scheduled %s of %s at %s", opts.Mode, opts.Domain, r.Slot)
	case OutcomeNotReally:
		return fmt.Sprintf("Would schedule %s of %s at %s", opts.Mode, opts.Domain, r.Slot)
	default:
		return fmt.Sprintf("No modification of %s needed", opts.Domain)
	}
}

// NotifierMessage is the message sent to notification services.
// Only submitted modifications are worth a notification.
func (r Result) NotifierMessage(opts *config.Options) notifier.Message {
	if r.Outcome != OutcomeSubmitted {
		return notifier.NewMessage()
	}
	return notifier.MergeMessages(
		notifier.NewMessagef("Submitted a modification of the %s of %s, taking effect at %s.",
			describeMode(opts.Mode), opts.Domain.Describe(), r.Slot),
		notifier.NewMessagef("The registry said: %s", r.Receipt),
	)
}

// FailureMessage is the message sent to notification services when a run fails.
func FailureMessage(opts *config.Options, err error) notifier.Message {
	return notifier.NewMessagef("Failed to update the %s of %s: %v", describeMode(opts.Mode), opts.Domain.Describe(), err)
}

func describeMode(m config.Mode) string {
	if m == config.ModeWhois {
		return "registrant"
	}
	return "delegation"
}
