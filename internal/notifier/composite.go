package notifier

import (
	"context"

	"github.com/ipreg/superglue/internal/pp"
)

// DescribeAll calls [Notifier.Describe] for each notifier in the group with the callback.
func DescribeAll(callback func(service, params string), ns []Notifier) {
	for _, n := range ns {
		n.Describe(callback)
	}
}

// SendAll calls [Notifier.Send] for each notifier in the group.
// Empty messages are not sent.
func SendAll(ctx context.Context, ppfmt pp.PP, ns []Notifier, msg Message) bool {
	if msg.IsEmpty() {
		return true
	}

	ok := true
	for _, n := range ns {
		if !n.Send(ctx, ppfmt, msg) {
			ok = false
		}
	}
	return ok
}
