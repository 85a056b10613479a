// Package domain parses DNS domain names.
package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// Name is a fully qualified domain name in its lowercase ASCII form,
// without the final dot.
type Name string

//nolint:gochecknoglobals
var (
	// profile does C2 in UTS#46 with all checks on.
	profile = idna.New(
		idna.MapForLookup(),
		idna.BidiRule(),
		idna.Transitional(false),
	)

	labelRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]*[a-z0-9])?$`)
)

const (
	maxLabelLength = 63
	maxNameLength  = 253
)

var (
	// ErrEmpty means the name is empty.
	ErrEmpty = errors.New("empty domain name")

	// ErrNotFQDN means a domain name has only one label.
	ErrNotFQDN = errors.New("not fully qualified")

	// ErrBadName means the name does not follow the hostname grammar.
	ErrBadName = errors.New("bad domain name")
)

// New normalizes a domain name and checks it against the hostname grammar.
// The input may end with a dot.
func New(s string) (Name, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), ".")
	if s == "" {
		return "", ErrEmpty
	}

	ascii, err := profile.ToASCII(s)
	if err != nil {
		return "", fmt.Errorf("%w %s: %v", ErrBadName, s, err)
	}

	if len(ascii) > maxNameLength {
		return "", fmt.Errorf("%w %s: longer than %d characters", ErrBadName, ascii, maxNameLength)
	}

	labels := strings.Split(ascii, ".")
	for _, label := range labels {
		if len(label) > maxLabelLength || !labelRegex.MatchString(label) {
			return "", fmt.Errorf("%w %s", ErrBadName, ascii)
		}
	}
	if len(labels) < 2 { //nolint:mnd
		return "", fmt.Errorf("%w: %s", ErrNotFQDN, ascii)
	}

	return Name(ascii), nil
}

// MustNew is like [New] but panics on errors. It is meant for tests and constants.
func MustNew(s string) Name {
	n, err := New(s)
	if err != nil {
		panic(fmt.Errorf("domain.MustNew failed: %w", err))
	}
	return n
}

// Qualify turns an owner token of a zone file into a name.
// "@" is the origin itself, a token with a final dot is already fully
// qualified, and anything else is relative to the origin.
func Qualify(token string, origin Name) (Name, error) {
	switch {
	case token == "@":
		return origin, nil
	case strings.HasSuffix(token, "."):
		return New(token)
	default:
		return New(token + "." + string(origin))
	}
}

// String gives the ASCII form.
func (n Name) String() string { return string(n) }

// IsWithin checks whether n is origin or a subdomain of it.
func (n Name) IsWithin(origin Name) bool {
	return n == origin || strings.HasSuffix(string(n), "."+string(origin))
}

// IsReverse checks whether n is inside the reverse-mapping tree.
func (n Name) IsReverse() bool {
	return n == "arpa" || strings.HasSuffix(string(n), ".arpa")
}

// Describe gives the most human-readable form that is still unambiguous.
// The Unicode form is used only when the round trip gives the same ASCII form back.
func (n Name) Describe() string {
	ascii := string(n)
	unicode, errToU := profile.ToUnicode(ascii)
	roundTrip, errToA := profile.ToASCII(unicode)
	if errToU != nil || errToA != nil || roundTrip != ascii {
		return ascii
	}
	return unicode
}
