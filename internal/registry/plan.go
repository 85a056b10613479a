package registry

import (
	"github.com/ipreg/superglue/internal/delegation"
	"github.com/ipreg/superglue/internal/registrant"
	"github.com/ipreg/superglue/internal/schedule"
)

// Plan is everything needed to fill in one modification form.
// Parts that are not managed are left as they are on the registry.
type Plan struct {
	// Primary is nil when the name servers are not managed.
	Primary     *delegation.NameServer
	Secondaries []delegation.NameServer

	// DS is empty when the DS records are not managed.
	DS string

	// Registrant holds only the fields to be changed, keyed by record keys.
	Registrant registrant.Record

	Slot schedule.Slot
}

// NewPlan builds a plan from the desired state. The slot is filled in later.
func NewPlan(desired delegation.Set, reg registrant.Record) Plan {
	plan := Plan{
		Primary:     nil,
		Secondaries: nil,
		DS:          desired.DS,
		Registrant:  reg,
		Slot:        schedule.Slot{},
	}
	if primary, ok := desired.Primary(); ok {
		plan.Primary = &primary
		plan.Secondaries = desired.Secondaries()
	}
	return plan
}

// ManagesNameServers checks whether the name server fields are to be filled in.
func (p Plan) ManagesNameServers() bool { return p.Primary != nil }

// ManagesDS checks whether the DS field is to be filled in.
func (p Plan) ManagesDS() bool { return p.DS != "" }

// ManagesRegistrant checks whether any registrant field is to be filled in.
func (p Plan) ManagesRegistrant() bool { return !p.Registrant.IsEmpty() }

// NameServers gives the primary followed by the secondaries.
func (p Plan) NameServers() []delegation.NameServer {
	if p.Primary == nil {
		return nil
	}
	return append([]delegation.NameServer{*p.Primary}, p.Secondaries...)
}
