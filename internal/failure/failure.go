// Package failure classifies the errors that can end a run.
//
// Every error is fatal. The classification only decides how the error is
// reported and whether the registry may have been touched before it happened:
// usage, syntax, and validation errors are found before the first request to
// the registry, while operational errors happen in the middle of a session.
package failure

import (
	"context"
	"errors"
	"fmt"
)

// Kind is the category of an error.
type Kind int

// All the kinds.
const (
	KindUnknown Kind = iota
	KindUsage
	KindSyntax
	KindValidation
	KindOperational
)

// String gives the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage error"
	case KindSyntax:
		return "syntax error"
	case KindValidation:
		return "validation error"
	case KindOperational:
		return "operational error"
	default:
		return "error"
	}
}

// UsageError is a mistake in the command line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// Usagef creates a new [UsageError].
func Usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// SyntaxError is a malformed line in some input text.
// Line is 0 when the problem is not attached to a particular line.
type SyntaxError struct {
	Source string
	Line   int
	Text   string
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Source, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
}

// ValidationError is a semantic inconsistency in otherwise well-formed input.
type ValidationError struct {
	Source string
	Msg    string
}

func (e *ValidationError) Error() string {
	if e.Source == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Msg)
}

// Validationf creates a new [ValidationError].
func Validationf(source string, format string, args ...any) error {
	return &ValidationError{Source: source, Msg: fmt.Sprintf(format, args...)}
}

// OperationalError is a failure while talking to the registry.
// The registry session may be in an unknown state afterwards.
type OperationalError struct {
	Op     string
	Domain string
	Err    error
}

func (e *OperationalError) Error() string {
	msg := e.Err.Error()
	if errors.Is(e.Err, context.DeadlineExceeded) {
		msg = "timeout"
	}
	if e.Domain == "" {
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return fmt.Sprintf("%s for %s: %s", e.Op, e.Domain, msg)
}

func (e *OperationalError) Unwrap() error { return e.Err }

// Operational wraps err as an [OperationalError]. It returns nil if err is nil
// and leaves existing operational errors alone.
func Operational(op, domain string, err error) error {
	if err == nil {
		return nil
	}
	var oe *OperationalError
	if errors.As(err, &oe) {
		return err
	}
	return &OperationalError{Op: op, Domain: domain, Err: err}
}

// Operationalf creates a new [OperationalError] from a message.
func Operationalf(op, domain string, format string, args ...any) error {
	return &OperationalError{Op: op, Domain: domain, Err: fmt.Errorf(format, args...)}
}

// KindOf finds the kind of the first classified error in the chain.
func KindOf(err error) Kind {
	var (
		usage       *UsageError
		syntax      *SyntaxError
		validation  *ValidationError
		operational *OperationalError
	)
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &usage):
		return KindUsage
	case errors.As(err, &syntax):
		return KindSyntax
	case errors.As(err, &validation):
		return KindValidation
	case errors.As(err, &operational):
		return KindOperational
	default:
		return KindUnknown
	}
}

// IsUserError tells whether the error was caused by the input rather than the registry.
func IsUserError(err error) bool {
	switch KindOf(err) {
	case KindUsage, KindSyntax, KindValidation:
		return true
	default:
		return false
	}
}
