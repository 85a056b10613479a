package config

import (
	"strings"

	"github.com/ipreg/superglue/internal/domain"
	"github.com/ipreg/superglue/internal/failure"
	"github.com/ipreg/superglue/internal/pp"
	"github.com/ipreg/superglue/internal/reconciler"
)

// Mode tells what the input of a run describes.
type Mode int

const (
	// ModeDelegate reads zone text and manages the delegation.
	ModeDelegate Mode = iota
	// ModeWhois reads JSON and manages the registrant.
	ModeWhois
)

// String gives the name of the subcommand of the mode.
func (m Mode) String() string {
	switch m {
	case ModeDelegate:
		return "delegate"
	case ModeWhois:
		return "whois"
	default:
		return "unknown"
	}
}

// Options are the command-line settings of one run.
type Options struct {
	Mode      Mode
	Domain    domain.Name
	Input     string
	CredsPath string
	Flags     reconciler.Flags
	NotReally bool
	LogLevel  pp.Verbosity
}

// ParseDomain checks the domain argument.
func ParseDomain(arg string) (domain.Name, error) {
	name, err := domain.New(strings.ToLower(arg))
	if err != nil {
		return "", failure.Usagef("bad domain %q: %v", arg, err)
	}
	return name, nil
}

// ParseLogLevel reads the value of --log-level.
func ParseLogLevel(level string) (pp.Verbosity, error) {
	v, err := pp.ParseVerbosity(level)
	if err != nil {
		return v, failure.Usagef("%v", err)
	}
	return v, nil
}
