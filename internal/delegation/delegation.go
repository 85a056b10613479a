// Package delegation models the NS, glue, and DS records of a delegated zone.
//
// A [Set] is always kept in its canonical form: one [NameServer] per
// (name, glue address) pair, sorted by name and then by address. The same
// order is used for comparing against the registry and for filling the
// primary and secondary name server slots of a modification form.
package delegation

import (
	"cmp"
	"slices"

	"github.com/ipreg/superglue/internal/domain"
	"github.com/ipreg/superglue/internal/pp"
)

// NameServer is one name server paired with one glue address.
// Address is empty for name servers outside the delegated zone.
type NameServer struct {
	Name    domain.Name
	Address string
}

// Compare orders name servers by name, then by address.
// An empty address comes before any other address of the same name.
func Compare(a, b NameServer) int {
	return cmp.Or(
		cmp.Compare(a.Name, b.Name),
		cmp.Compare(a.Address, b.Address),
	)
}

// Equal checks whether two canonical lists are element-wise the same.
func Equal(a, b []NameServer) bool {
	return slices.Equal(a, b)
}

// Set is the delegation of one zone.
//
// An empty NameServers list means the name servers are not managed and an
// empty DS means the DS records are not managed; neither is an error.
type Set struct {
	Origin      domain.Name
	NameServers []NameServer
	DS          string
}

// ManagesNameServers checks whether the name servers should be compared and submitted.
func (s Set) ManagesNameServers() bool { return len(s.NameServers) > 0 }

// ManagesDS checks whether the DS records should be compared and submitted.
func (s Set) ManagesDS() bool { return s.DS != "" }

// IsEmpty checks whether the set manages nothing at all.
func (s Set) IsEmpty() bool { return !s.ManagesNameServers() && !s.ManagesDS() }

// Primary gives the first name server in the canonical order.
func (s Set) Primary() (NameServer, bool) {
	if len(s.NameServers) == 0 {
		return NameServer{}, false
	}
	return s.NameServers[0], true
}

// Secondaries gives all but the first name server in the canonical order.
func (s Set) Secondaries() []NameServer {
	if len(s.NameServers) <= 1 {
		return nil
	}
	return slices.Clone(s.NameServers[1:])
}

// PrintNameServers prints one line per name server, in the same format as the debugging
// output of the parser so that old and new lists can be compared by eye.
func PrintNameServers(ppfmt pp.PP, v pp.Verbosity, emoji pp.Emoji, origin domain.Name, nss []NameServer) {
	printf := ppfmt.Infof
	switch v {
	case pp.Debug:
		printf = ppfmt.Debugf
	case pp.Notice:
		printf = ppfmt.Noticef
	}

	for _, ns := range nss {
		printf(emoji, "%s ns %s glue %s", origin, ns.Name, ns.Address)
	}
}
