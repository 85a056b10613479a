package zonetext

import (
	"errors"
	"net/netip"
	"regexp"
)

//nolint:gochecknoglobals
var (
	ipv4Regex = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)
	ipv6Regex = regexp.MustCompile(`^(?i:(?:[0-9a-f]{1,4}:)+(?::|(?::[0-9a-f]{1,4})+|[0-9a-f]{1,4}))$`)
)

var (
	errBadIPv4 = errors.New("bad IPv4 address")
	errBadIPv6 = errors.New("bad IPv6 address")
)

// ParseIPv4 checks a dotted-quad IPv4 literal and gives its canonical text form.
func ParseIPv4(s string) (string, error) {
	if !ipv4Regex.MatchString(s) {
		return "", errBadIPv4
	}
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return "", errBadIPv4
	}
	return addr.String(), nil
}

// ParseIPv6 checks a colon-hex IPv6 literal and gives its canonical text form,
// which is lowercase with the longest run of zero groups compressed.
func ParseIPv6(s string) (string, error) {
	if !ipv6Regex.MatchString(s) {
		return "", errBadIPv6
	}
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is6() || addr.Zone() != "" {
		return "", errBadIPv6
	}
	return addr.String(), nil
}

// ParseAddress accepts either kind of literal. It is used to bring addresses
// shown by a registry into the same form as parsed glue.
func ParseAddress(s string) (string, error) {
	if a, err := ParseIPv4(s); err == nil {
		return a, nil
	}
	return ParseIPv6(s)
}
