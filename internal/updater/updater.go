// Package updater runs the whole pipeline for one domain: compare the input
// with the registry, pick a modification time, and submit.
package updater

import (
	"context"
	"time"

	"github.com/ipreg/superglue/internal/config"
	"github.com/ipreg/superglue/internal/delegation"
	"github.com/ipreg/superglue/internal/failure"
	"github.com/ipreg/superglue/internal/notifier"
	"github.com/ipreg/superglue/internal/pp"
	"github.com/ipreg/superglue/internal/reconciler"
	"github.com/ipreg/superglue/internal/registrant"
	"github.com/ipreg/superglue/internal/registry"
	"github.com/ipreg/superglue/internal/schedule"
)

// Outcome is what a successful run did.
type Outcome int

const (
	// OutcomeUnchanged means nothing was submitted.
	OutcomeUnchanged Outcome = iota
	// OutcomeNotReally means a modification was needed but --not-really stopped it.
	OutcomeNotReally
	// OutcomeSubmitted means the registry accepted a modification.
	OutcomeSubmitted
)

// Result is the outcome of a successful run.
type Result struct {
	Outcome Outcome
	// Slot is when the modification takes effect. It is zero when nothing was scheduled.
	Slot    schedule.Slot
	Receipt string
}

func unchanged() Result {
	return Result{Outcome: OutcomeUnchanged, Slot: schedule.Slot{}, Receipt: ""}
}

func checkPendingModifications(ctx context.Context, ppfmt pp.PP, c *config.Config, g registry.Gateway) error {
	if c.MaxPending == 0 {
		ppfmt.Debugf(pp.EmojiTicket, "Not counting pending modifications")
		return nil
	}

	count, err := g.CountPendingModifications(ctx, ppfmt)
	if err != nil {
		return err
	}
	if count >= c.MaxPending {
		return failure.Operationalf("count pending modifications", "",
			"too many pending modifications (%d, the limit is %d)", count, c.MaxPending)
	}
	return nil
}

// readCurrent reads only the parts of the registry that the input manages.
func readCurrent(ctx context.Context, ppfmt pp.PP, opts *config.Options, g registry.Gateway,
	desired Desired,
) (delegation.Set, registrant.Record, error) {
	var (
		current    delegation.Set
		currentReg registrant.Record
		err        error
	)

	if !desired.Delegation.IsEmpty() {
		if current, err = g.GetCurrentDelegation(ctx, ppfmt, opts.Domain); err != nil {
			return current, currentReg, err
		}
		delegation.PrintNameServers(ppfmt, pp.Debug, pp.EmojiRegistry, opts.Domain, current.NameServers)
	}

	if !desired.Registrant.IsEmpty() {
		if currentReg, err = g.GetCurrentRegistrant(ctx, ppfmt, opts.Domain); err != nil {
			return current, currentReg, err
		}
	}

	return current, currentReg, nil
}

// Run compares the desired state with the registry and submits a modification
// when they differ. Every call to the gateway is made in order and the first
// error ends the run.
func Run(ctx context.Context, ppfmt pp.PP, c *config.Config, opts *config.Options,
	g registry.Gateway, desired Desired, now func() time.Time,
) (Result, error) {
	name := opts.Domain

	if err := checkPendingModifications(ctx, ppfmt, c, g); err != nil {
		return unchanged(), err
	}

	tickets, err := g.GetPendingTicketCount(ctx, ppfmt, name)
	if err != nil {
		return unchanged(), err
	}
	ppfmt.Infof(pp.EmojiTicket, "Pending tickets for %s: %d", name.Describe(), tickets)

	current, currentReg, err := readCurrent(ctx, ppfmt, opts, g, desired)
	if err != nil {
		return unchanged(), err
	}

	decision := reconciler.Decide(ppfmt, reconciler.Input{
		Domain:            name,
		Desired:           desired.Delegation,
		DesiredRegistrant: desired.Registrant,
		Current:           current,
		CurrentRegistrant: currentReg,
		PendingTickets:    tickets,
		Flags:             opts.Flags,
	})
	if decision.Action != reconciler.ActionModify || decision.Plan == nil {
		return unchanged(), nil
	}

	slots, err := g.GetAvailableSlots(ctx, ppfmt, name)
	if err != nil {
		return unchanged(), err
	}
	picked := now()
	slot, err := schedule.PickSlot(picked, c.LeadTime, slots)
	if err != nil {
		return unchanged(), failure.Operational("pick a modification time", name.Describe(), err)
	}

	plan := *decision.Plan
	plan.Slot = slot
	ppfmt.Noticef(pp.EmojiAlarm, "Modification scheduled at %s for %s", slot, name.Describe())
	schedule.PrintCountdown(ppfmt, "The modification takes effect", picked, slot.Start)

	if opts.NotReally {
		ppfmt.Noticef(pp.EmojiNotReally, "Not really!")
		ppfmt.Hintf(pp.HintNotReally, "Run again without --not-really to submit the modification")
		return Result{Outcome: OutcomeNotReally, Slot: slot, Receipt: ""}, nil
	}

	ppfmt.Infof(pp.EmojiSubmit, "Submitting the modification of %s to %s", name.Describe(), g.Describe())
	receipt, err := g.SubmitChange(ctx, ppfmt, name, plan)
	if err != nil {
		return unchanged(), err
	}
	ppfmt.Noticef(pp.EmojiGood, "%s", receipt)

	result := Result{Outcome: OutcomeSubmitted, Slot: slot, Receipt: receipt}
	notifier.SendAll(ctx, ppfmt, c.Notifiers, result.NotifierMessage(opts))
	return result, nil
}
