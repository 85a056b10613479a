// Package reconciler decides whether the registry needs to be modified.
package reconciler

import (
	"github.com/ipreg/superglue/internal/delegation"
	"github.com/ipreg/superglue/internal/domain"
	"github.com/ipreg/superglue/internal/pp"
	"github.com/ipreg/superglue/internal/registrant"
	"github.com/ipreg/superglue/internal/registry"
)

// Action is what should be done with the registry.
type Action int

const (
	// ActionSkip leaves the registry alone.
	ActionSkip Action = iota
	// ActionModify submits a modification.
	ActionModify
)

// String gives the name of the action.
func (a Action) String() string {
	switch a {
	case ActionSkip:
		return "skip"
	case ActionModify:
		return "modify"
	default:
		return "unknown"
	}
}

// Flags override the usual caution.
type Flags struct {
	// IgnoreTickets modifies the domain even when some change is still pending.
	IgnoreTickets bool
	// IgnoreMatch modifies the domain even when the registry already looks right.
	IgnoreMatch bool
}

// Input is the desired and the current state of one domain.
type Input struct {
	Domain            domain.Name
	Desired           delegation.Set
	DesiredRegistrant registrant.Record
	Current           delegation.Set
	CurrentRegistrant registrant.Record
	PendingTickets    int
	Flags             Flags
}

// MatchResult tells which parts of the registry already look right.
// Parts that are not managed always match.
type MatchResult struct {
	NS         bool
	DS         bool
	Registrant bool
}

// All checks whether everything matches.
func (m MatchResult) All() bool { return m.NS && m.DS && m.Registrant }

// Decision is the outcome of [Decide].
type Decision struct {
	Action Action
	// Plan is nil unless Action is [ActionModify]. Its slot is not filled in.
	Plan   *registry.Plan
	Report MatchResult
}

func compare(in Input) (MatchResult, []registrant.Diff) {
	regMatch, diffs := registrant.Compare(in.DesiredRegistrant, in.CurrentRegistrant)
	report := MatchResult{
		NS:         !in.Desired.ManagesNameServers() || delegation.Equal(in.Desired.NameServers, in.Current.NameServers),
		DS:         !in.Desired.ManagesDS() || in.Desired.DS == in.Current.DS,
		Registrant: regMatch,
	}
	if in.Flags.IgnoreMatch {
		report = MatchResult{NS: false, DS: false, Registrant: false}
	}
	return report, diffs
}

func describeParts(in Input) string {
	managesDelegation := !in.Desired.IsEmpty()
	managesRegistrant := !in.DesiredRegistrant.IsEmpty()
	switch {
	case managesDelegation && managesRegistrant:
		return "delegation and registrant"
	case managesRegistrant:
		return "registrant"
	default:
		return "delegation"
	}
}

func printDiff(ppfmt pp.PP, in Input, diffs []registrant.Diff) {
	origin := in.Domain
	if in.Desired.ManagesNameServers() {
		ppfmt.Noticef(pp.EmojiOld, "Old NS records")
		delegation.PrintNameServers(ppfmt, pp.Notice, pp.EmojiOld, origin, in.Current.NameServers)
		ppfmt.Noticef(pp.EmojiNew, "New NS records")
		delegation.PrintNameServers(ppfmt, pp.Notice, pp.EmojiNew, origin, in.Desired.NameServers)
	}
	if in.Desired.ManagesDS() {
		ppfmt.Noticef(pp.EmojiOld, "Old DS records")
		ppfmt.Noticef(pp.EmojiOld, "%s", in.Current.DS)
		ppfmt.Noticef(pp.EmojiNew, "New DS records")
		ppfmt.Noticef(pp.EmojiNew, "%s", in.Desired.DS)
	}
	for _, d := range diffs {
		if !d.Match() {
			ppfmt.Noticef(pp.EmojiNew, "%s %q -> %q", d.Key, d.Current, d.Desired)
		}
	}
}

// Decide compares the desired state with the current state.
//
// Pending tickets win over everything else unless ignored, so that a change is
// never stacked on one the registry has not applied yet.
func Decide(ppfmt pp.PP, in Input) Decision {
	report, diffs := compare(in)
	parts := describeParts(in)

	if in.PendingTickets > 0 {
		ppfmt.Noticef(pp.EmojiTicket, "Changes pending for %s", in.Domain.Describe())
		if !in.Flags.IgnoreTickets {
			ppfmt.Hintf(pp.HintIgnoreTickets,
				"Use --ignore-tickets to modify %s anyway", in.Domain.Describe())
			return Decision{Action: ActionSkip, Plan: nil, Report: report}
		}
		ppfmt.Noticef(pp.EmojiTicket, "Ignoring tickets")
	}

	// Skipped even with IgnoreMatch, as there would be nothing to submit.
	if in.Desired.IsEmpty() && in.DesiredRegistrant.IsEmpty() {
		ppfmt.Infof(pp.EmojiAlreadyDone, "Nothing to modify for %s", in.Domain.Describe())
		return Decision{Action: ActionSkip, Plan: nil, Report: report}
	}

	for _, d := range diffs {
		arrow := "=="
		if !d.Match() {
			arrow = "->"
		}
		ppfmt.Infof(pp.EmojiCompare, "Checking %s %q %s %q", d.Key, d.Current, arrow, d.Desired)
	}

	if report.All() {
		ppfmt.Infof(pp.EmojiAlreadyDone, "No need to modify %s of %s", parts, in.Domain.Describe())
		return Decision{Action: ActionSkip, Plan: nil, Report: report}
	}

	if in.Flags.IgnoreMatch {
		ppfmt.Infof(pp.EmojiCompare, "Ignoring the comparison with the registry")
	}
	ppfmt.Infof(pp.EmojiCompare, "Modifying %s of %s", parts, in.Domain.Describe())
	printDiff(ppfmt, in, diffs)

	plan := registry.NewPlan(in.Desired, in.DesiredRegistrant)
	return Decision{Action: ActionModify, Plan: &plan, Report: report}
}
