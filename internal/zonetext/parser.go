// Package zonetext reads delegation records written in zone file syntax.
//
// Only a small subset of the master file format is understood: one record
// per line, an optional owner, optional class and TTL tokens, then the type
// and its data. There are no directives, escapes, or parentheses.
package zonetext

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ipreg/superglue/internal/delegation"
	"github.com/ipreg/superglue/internal/domain"
	"github.com/ipreg/superglue/internal/failure"
	"github.com/ipreg/superglue/internal/pp"
)

//nolint:gochecknoglobals
var lineRegex = regexp.MustCompile(`^(\S*)\s+(?:(?i:IN|\d+)\s+)*([A-Za-z][A-Za-z0-9]*)\s+(.*)$`)

// state is carried from one line to the next.
type state struct {
	// owner of the previous record, used when a line starts with blanks
	owner domain.Name
}

type parser struct {
	ppfmt   pp.PP
	source  string
	origin  domain.Name
	records *delegation.Records
}

func (p *parser) syntaxf(n int, text string, format string, args ...any) error {
	return &failure.SyntaxError{Source: p.source, Line: n, Text: text, Msg: fmt.Sprintf(format, args...)}
}

// parseLine handles line number n and gives the state for the next line.
func (p *parser) parseLine(st state, n int, line string) (state, error) {
	raw := line
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimRight(line, " \t\r")
	if strings.TrimSpace(line) == "" {
		return st, nil
	}

	m := lineRegex.FindStringSubmatch(line)
	if m == nil {
		return st, p.syntaxf(n, raw, "could not parse line %s", strings.TrimSpace(line))
	}
	ownerToken, rtype, rdata := m[1], strings.ToUpper(m[2]), strings.TrimSpace(m[3])

	if ownerToken != "" {
		owner, err := domain.Qualify(ownerToken, p.origin)
		if err != nil {
			return st, p.syntaxf(n, raw, "bad domain name %s", ownerToken)
		}
		st.owner = owner
	}
	owner := st.owner

	switch rtype {
	case "NS":
		if owner != p.origin {
			return st, p.syntaxf(n, raw, "NS records must be owned by %s", p.origin)
		}
		name, err := domain.Qualify(rdata, p.origin)
		if err != nil {
			return st, p.syntaxf(n, raw, "bad domain name %s", rdata)
		}
		p.records.AddNS(name)
		p.ppfmt.Debugf(pp.EmojiParse, "parse %s NS %s", p.origin, name)

	case "DS":
		if owner != p.origin {
			return st, p.syntaxf(n, raw, "DS records must be owned by %s", p.origin)
		}
		ds := formatDS(owner, rdata)
		if err := checkDS(p.ppfmt, ds); err != nil {
			return st, p.syntaxf(n, raw, "%v", err)
		}
		p.records.AddDS(ds)
		p.ppfmt.Debugf(pp.EmojiParse, "parse %s", ds)

	case "DNSKEY":
		p.ppfmt.Debugf(pp.EmojiParse, "ignore %s DNSKEY record", owner)

	case "A", "AAAA":
		if !owner.IsWithin(p.origin) {
			return st, p.syntaxf(n, raw, "glue %s records must be subdomains of %s", rtype, p.origin)
		}
		parse := ParseIPv4
		if rtype == "AAAA" {
			parse = ParseIPv6
		}
		addr, err := parse(rdata)
		if err != nil {
			return st, p.syntaxf(n, raw, "%v: %s", err, rdata)
		}
		p.records.AddGlue(owner, addr)
		p.ppfmt.Debugf(pp.EmojiParse, "parse %s %s %s", owner, rtype, addr)

	default:
		return st, p.syntaxf(n, raw, "unsupported record type %s", rtype)
	}

	return st, nil
}

// ParseRecords reads delegation records for the origin without any cross-record checks.
// The source names the input in error messages.
func ParseRecords(ppfmt pp.PP, source string, text string, origin domain.Name, opts Options) (*delegation.Records, error) {
	p := &parser{
		ppfmt:   ppfmt,
		source:  source,
		origin:  origin,
		records: delegation.NewRecords(source, origin),
	}

	st := state{owner: origin}
	for i, line := range strings.Split(text, "\n") {
		var err error
		if st, err = p.parseLine(st, i+1, line); err != nil {
			return nil, err
		}
	}

	if origin.IsReverse() && p.records.DS() != "" {
		switch opts.ReverseDS {
		case ReverseDSKeep:
			ppfmt.Infof(pp.EmojiParse, "Keeping DS records of the reverse zone %s", origin.Describe())
		default:
			ppfmt.Warningf(pp.EmojiUserWarning, "Dropping DS records of the reverse zone %s", origin.Describe())
			ppfmt.Hintf(pp.HintReverseDS,
				"The registry does not accept signed delegations of reverse zones; "+
					"set REVERSE_DS_POLICY=keep if yours does")
			p.records.ClearDS()
		}
	}

	return p.records, nil
}

// Parse reads, validates, and canonicalizes the delegation of the origin.
//
// Input with neither NS nor DS records is accepted and gives an empty [delegation.Set],
// which leaves the current delegation alone.
func Parse(ppfmt pp.PP, source string, text string, origin domain.Name, opts Options) (delegation.Set, error) {
	records, err := ParseRecords(ppfmt, source, text, origin, opts)
	if err != nil {
		return delegation.Set{}, err
	}

	if err := records.Validate(); err != nil {
		return delegation.Set{}, err
	}

	set := records.Canonicalize()
	if set.IsEmpty() {
		ppfmt.Noticef(pp.EmojiUserWarning, "No delegation records found in %s; the delegation of %s will be left unchanged",
			source, origin.Describe())
		return set, nil
	}

	ppfmt.Debugf(pp.EmojiParse, "Name server count %d", len(set.NameServers))
	delegation.PrintNameServers(ppfmt, pp.Debug, pp.EmojiParse, origin, set.NameServers)
	return set, nil
}
