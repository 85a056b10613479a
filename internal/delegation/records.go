package delegation

import (
	"strings"

	"github.com/ipreg/superglue/internal/domain"
	"github.com/ipreg/superglue/internal/failure"
	"github.com/ipreg/superglue/internal/sliceutil"
)

// Records is the raw record set collected by a parser before any cross-record check.
type Records struct {
	Source string
	Origin domain.Name

	ns      map[domain.Name]bool
	glue    map[domain.Name][]string
	dsLines []string
}

// NewRecords creates an empty record set for the zone origin.
// The source names the input in error messages.
func NewRecords(source string, origin domain.Name) *Records {
	return &Records{
		Source:  source,
		Origin:  origin,
		ns:      map[domain.Name]bool{},
		glue:    map[domain.Name][]string{},
		dsLines: nil,
	}
}

// AddNS declares a name server. Duplicates collapse silently.
func (r *Records) AddNS(name domain.Name) { r.ns[name] = true }

// AddGlue records a glue address for the owner.
func (r *Records) AddGlue(owner domain.Name, address string) {
	r.glue[owner] = append(r.glue[owner], address)
}

// AddDS appends one DS record line, in input order.
func (r *Records) AddDS(line string) { r.dsLines = append(r.dsLines, line) }

// ClearDS forgets all DS records collected so far.
func (r *Records) ClearDS() { r.dsLines = nil }

// DS gives the DS records as one text, one record per line.
func (r *Records) DS() string { return strings.Join(r.dsLines, "\n") }

// NameServerNames gives the declared name servers in sorted order.
func (r *Records) NameServerNames() []domain.Name { return sliceutil.SortedKeys(r.ns) }

// IsEmpty checks whether there are neither name servers nor DS records.
func (r *Records) IsEmpty() bool { return len(r.ns) == 0 && len(r.dsLines) == 0 }

// Validate cross-checks glue records against the declared name servers.
//
// Glue must belong to a declared name server, every name server inside the
// zone must have glue, and name servers outside the zone must not have any.
func (r *Records) Validate() error {
	for _, owner := range sliceutil.SortedKeys(r.glue) {
		if !r.ns[owner] {
			return failure.Validationf(r.Source, "glue records for nonexistent NS %s", owner)
		}
	}

	for _, name := range r.NameServerNames() {
		addrs := r.glue[name]
		switch inside := name.IsWithin(r.Origin); {
		case inside && len(addrs) == 0:
			return failure.Validationf(r.Source, "glue records missing for NS %s", name)
		case !inside && len(addrs) > 0:
			return failure.Validationf(r.Source, "spurious glue records for NS %s", name)
		}
	}

	return nil
}

// Canonicalize expands and sorts the records into a [Set].
// It assumes [Records.Validate] has succeeded.
func (r *Records) Canonicalize() Set {
	nss := make([]NameServer, 0, len(r.ns))
	for name := range r.ns {
		addrs := r.glue[name]
		if len(addrs) == 0 {
			nss = append(nss, NameServer{Name: name, Address: ""})
			continue
		}
		for _, addr := range addrs {
			nss = append(nss, NameServer{Name: name, Address: addr})
		}
	}

	return Set{
		Origin:      r.Origin,
		NameServers: sliceutil.SortAndCompact(nss, Compare),
		DS:          r.DS(),
	}
}
