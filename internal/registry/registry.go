// Package registry defines how the rest of the program talks to a domain registry.
package registry

import (
	"context"

	"github.com/ipreg/superglue/internal/delegation"
	"github.com/ipreg/superglue/internal/domain"
	"github.com/ipreg/superglue/internal/pp"
	"github.com/ipreg/superglue/internal/registrant"
)

//go:generate mockgen -destination=../mocks/mock_registry.go -package=mocks . Gateway

// Gateway is one logged-in session with a registry.
//
// Calls must be made one at a time and in the order of the pipeline: the
// registry is a sequence of stateful pages and every call may move the session
// to another page. Every error is an operational error and ends the session.
type Gateway interface {
	// Describe gives a short human-readable description of the registry.
	Describe() string

	// CountPendingModifications counts modification tickets of all domains that
	// have not taken effect yet.
	CountPendingModifications(ctx context.Context, ppfmt pp.PP) (int, error)

	// GetPendingTicketCount counts pending tickets of the domain.
	GetPendingTicketCount(ctx context.Context, ppfmt pp.PP, name domain.Name) (int, error)

	// GetCurrentDelegation reads the delegation in canonical form.
	GetCurrentDelegation(ctx context.Context, ppfmt pp.PP, name domain.Name) (delegation.Set, error)

	// GetCurrentRegistrant reads the registrant, keyed by display field names.
	GetCurrentRegistrant(ctx context.Context, ppfmt pp.PP, name domain.Name) (registrant.Record, error)

	// GetAvailableSlots lists the HH:MM times a modification can be scheduled at.
	GetAvailableSlots(ctx context.Context, ppfmt pp.PP, name domain.Name) ([]string, error)

	// SubmitChange submits the modification and gives the confirmation text of the registry.
	SubmitChange(ctx context.Context, ppfmt pp.PP, name domain.Name, plan Plan) (string, error)
}
