// Package statefile implements a registry kept in a local JSON file.
//
// It behaves like the real registry as far as the pipeline can tell, which
// makes it useful for rehearsing a change before running it for real:
//
//	{"domains": {"example.ac.uk": {
//	  "tickets": 0,
//	  "nameServers": [{"name": "ns1.example.ac.uk", "address": "192.0.2.1"}],
//	  "ds": ["example.ac.uk. IN DS 60485 5 1 2BB183AF5F22588179A53B0A98631FAD1A292118"],
//	  "registrant": {"Name": "Example University"}
//	}}}
//
// A submitted change takes effect at once and leaves a pending ticket behind.
package statefile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ipreg/superglue/internal/delegation"
	"github.com/ipreg/superglue/internal/domain"
	"github.com/ipreg/superglue/internal/failure"
	"github.com/ipreg/superglue/internal/file"
	"github.com/ipreg/superglue/internal/pp"
	"github.com/ipreg/superglue/internal/registrant"
	"github.com/ipreg/superglue/internal/registry"
	"github.com/ipreg/superglue/internal/schedule"
	"github.com/ipreg/superglue/internal/sliceutil"
	"github.com/ipreg/superglue/internal/zonetext"
)

var _ registry.Gateway = (*Gateway)(nil)

type nameServer struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type domainState struct {
	Tickets     int               `json:"tickets"`
	NameServers []nameServer      `json:"nameServers"`
	DS          []string          `json:"ds"`
	Registrant  registrant.Record `json:"registrant"`
}

type state struct {
	Domains map[string]*domainState `json:"domains"`
}

// Gateway reads and writes the state file on every call.
type Gateway struct {
	path  string
	slots *schedule.CronSlots
	now   func() time.Time
}

// New creates a gateway for the state file at path. The modification times
// offered each day are those of slots.
func New(path string, slots *schedule.CronSlots, now func() time.Time) *Gateway {
	return &Gateway{path: path, slots: slots, now: now}
}

// Describe names the state file.
func (g *Gateway) Describe() string { return "state file " + g.path }

func (g *Gateway) load(ppfmt pp.PP) (*state, error) {
	data, err := file.Read(ppfmt, g.path)
	if err != nil {
		return nil, err
	}

	var s state
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", g.path, err)
	}
	if s.Domains == nil {
		s.Domains = map[string]*domainState{}
	}
	return &s, nil
}

func (g *Gateway) save(s *state) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode the state: %w", err)
	}
	return file.WriteAtomic(g.path, append(data, '\n'))
}

func (g *Gateway) lookup(ppfmt pp.PP, name domain.Name) (*state, *domainState, error) {
	s, err := g.load(ppfmt)
	if err != nil {
		return nil, nil, err
	}
	d, ok := s.Domains[string(name)]
	if !ok {
		return nil, nil, fmt.Errorf("could not find domain %s", name)
	}
	return s, d, nil
}

// CountPendingModifications adds up the tickets of all domains.
func (g *Gateway) CountPendingModifications(_ context.Context, ppfmt pp.PP) (int, error) {
	s, err := g.load(ppfmt)
	if err != nil {
		return 0, failure.Operational("count pending modifications", "", err)
	}

	n := 0
	for _, d := range s.Domains {
		n += d.Tickets
	}
	ppfmt.Infof(pp.EmojiTicket, "Pending modifications: %d", n)
	return n, nil
}

// GetPendingTicketCount gives the tickets of the domain.
func (g *Gateway) GetPendingTicketCount(_ context.Context, ppfmt pp.PP, name domain.Name) (int, error) {
	_, d, err := g.lookup(ppfmt, name)
	if err != nil {
		return 0, failure.Operational("read pending tickets", name.Describe(), err)
	}
	return d.Tickets, nil
}

// GetCurrentDelegation gives the stored delegation in canonical order.
func (g *Gateway) GetCurrentDelegation(_ context.Context, ppfmt pp.PP, name domain.Name) (delegation.Set, error) {
	const op = "read current delegation"

	_, d, err := g.lookup(ppfmt, name)
	if err != nil {
		return delegation.Set{}, failure.Operational(op, name.Describe(), err)
	}

	nss := make([]delegation.NameServer, 0, len(d.NameServers))
	for _, ns := range d.NameServers {
		n, err := domain.New(ns.Name)
		if err != nil {
			return delegation.Set{}, failure.Operational(op, name.Describe(), err)
		}
		addr := ns.Address
		if addr != "" {
			if addr, err = zonetext.ParseAddress(addr); err != nil {
				return delegation.Set{}, failure.Operational(op, name.Describe(), fmt.Errorf("%w %s", err, ns.Address))
			}
		}
		nss = append(nss, delegation.NameServer{Name: n, Address: addr})
	}

	set := delegation.Set{
		Origin:      name,
		NameServers: sliceutil.SortAndCompact(nss, delegation.Compare),
		DS:          strings.Join(d.DS, "\n"),
	}
	delegation.PrintNameServers(ppfmt, pp.Debug, pp.EmojiRegistry, name, set.NameServers)
	return set, nil
}

// GetCurrentRegistrant gives the stored registrant.
func (g *Gateway) GetCurrentRegistrant(_ context.Context, ppfmt pp.PP, name domain.Name) (registrant.Record, error) {
	_, d, err := g.lookup(ppfmt, name)
	if err != nil {
		return registrant.Record{}, failure.Operational("read current registrant", name.Describe(), err)
	}
	return d.Registrant, nil
}

// GetAvailableSlots lists today's times of the schedule.
func (g *Gateway) GetAvailableSlots(_ context.Context, ppfmt pp.PP, name domain.Name) ([]string, error) {
	if _, _, err := g.lookup(ppfmt, name); err != nil {
		return nil, failure.Operational("read modification times", name.Describe(), err)
	}

	slots := g.slots.On(g.now())
	ppfmt.Debugf(pp.EmojiRegistry, "Modification times: %s", strings.Join(slots, " "))
	return slots, nil
}

// SubmitChange applies the plan to the state file and opens a ticket.
func (g *Gateway) SubmitChange(_ context.Context, ppfmt pp.PP, name domain.Name, plan registry.Plan) (string, error) {
	const op = "submit modification"

	s, d, err := g.lookup(ppfmt, name)
	if err != nil {
		return "", failure.Operational(op, name.Describe(), err)
	}

	if plan.ManagesNameServers() {
		d.NameServers = nil
		for _, ns := range plan.NameServers() {
			d.NameServers = append(d.NameServers, nameServer{Name: string(ns.Name), Address: ns.Address})
		}
	}
	if plan.ManagesDS() {
		d.DS = strings.Split(plan.DS, "\n")
	}
	// The record is stored the way the registry displays it.
	for _, f := range plan.Registrant.Fields() {
		d.Registrant.Set(registrant.DisplayField(f.Key), f.Value)
	}
	d.Tickets++

	if err := g.save(s); err != nil {
		return "", failure.Operational(op, name.Describe(), err)
	}

	return fmt.Sprintf("Modification of %s scheduled at %s %s was recorded in %s",
		name.Describe(), plan.Slot.Time, plan.Slot.Date, g.path), nil
}
