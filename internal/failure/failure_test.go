package failure_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ipreg/superglue/internal/failure"
)

func TestErrorStrings(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		err      error
		expected string
	}{
		"usage":             {failure.Usagef("bad domain %q", "x"), `bad domain "x"`},
		"syntax":            {&failure.SyntaxError{Source: "stdin", Line: 3, Msg: "could not parse line"}, "stdin:3: could not parse line"},
		"syntax/no-line":    {&failure.SyntaxError{Source: "creds", Msg: "missing key pass"}, "creds: missing key pass"},
		"validation":        {failure.Validationf("stdin", "glue records missing for NS %s", "ns1.example.ac.uk"), "stdin: glue records missing for NS ns1.example.ac.uk"},
		"validation/bare":   {failure.Validationf("", "oops"), "oops"},
		"operational":       {failure.Operationalf("login", "", "login failed"), "login: login failed"},
		"operational/dom":   {failure.Operationalf("find domain", "example.ac.uk", "not listed"), "find domain for example.ac.uk: not listed"},
		"operational/tmout": {failure.Operational("submit", "example.ac.uk", context.DeadlineExceeded), "submit for example.ac.uk: timeout"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.EqualError(t, tc.err, tc.expected)
		})
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		err      error
		kind     failure.Kind
		userFail bool
	}{
		"nil":         {nil, failure.KindUnknown, false},
		"plain":       {errors.New("plain"), failure.KindUnknown, false},
		"usage":       {failure.Usagef("x"), failure.KindUsage, true},
		"syntax":      {fmt.Errorf("wrapped: %w", &failure.SyntaxError{Source: "s", Line: 1}), failure.KindSyntax, true},
		"validation":  {failure.Validationf("s", "x"), failure.KindValidation, true},
		"operational": {failure.Operational("op", "", errors.New("x")), failure.KindOperational, false},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.kind, failure.KindOf(tc.err))
			require.Equal(t, tc.userFail, failure.IsUserError(tc.err))
		})
	}
}

func TestOperationalKeepsExisting(t *testing.T) {
	t.Parallel()

	inner := failure.Operationalf("login", "", "rejected")
	require.Same(t, inner, failure.Operational("other", "example.ac.uk", inner))
	require.NoError(t, failure.Operational("op", "", nil))
	require.ErrorIs(t, failure.Operational("op", "", context.DeadlineExceeded), context.DeadlineExceeded)
}

func TestKindString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "syntax error", failure.KindSyntax.String())
	require.Equal(t, "error", failure.KindUnknown.String())
}
