package zonetext

import (
	"fmt"
	"strings"
)

// ReverseDSPolicy decides what happens to DS records of reverse-mapping zones.
type ReverseDSPolicy int

const (
	// ReverseDSDrop discards them with a warning. The Jisc registry does not
	// accept signed delegations under .arpa.
	ReverseDSDrop ReverseDSPolicy = iota

	// ReverseDSKeep treats them like any other DS records.
	ReverseDSKeep
)

// String gives the name used in the configuration.
func (p ReverseDSPolicy) String() string {
	switch p {
	case ReverseDSDrop:
		return "drop"
	case ReverseDSKeep:
		return "keep"
	default:
		return fmt.Sprintf("<unknown policy %d>", int(p))
	}
}

// ParseReverseDSPolicy parses the name of a policy.
func ParseReverseDSPolicy(s string) (ReverseDSPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "drop":
		return ReverseDSDrop, nil
	case "keep":
		return ReverseDSKeep, nil
	default:
		return ReverseDSDrop, fmt.Errorf("unknown reverse DS policy %q (expected drop or keep)", s)
	}
}

// Options tunes the parser for a particular registry.
type Options struct {
	ReverseDS ReverseDSPolicy
}
