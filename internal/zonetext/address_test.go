package zonetext_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ipreg/superglue/internal/zonetext"
)

func TestParseAddress(t *testing.T) {
	t.Parallel()

	for input, tc := range map[string]struct {
		ok       bool
		expected string
	}{
		"192.0.2.1":            {true, "192.0.2.1"},
		"192.0.2.01":           {false, ""},
		"192.0.2":              {false, ""},
		"300.0.2.1":            {false, ""},
		"2001:DB8::1":          {true, "2001:db8::1"},
		"2001:db8:0:0:0:0:0:1": {true, "2001:db8::1"},
		"2001:db8::":           {true, "2001:db8::"},
		"::1":                  {false, ""},
		"::ffff:192.0.2.1":     {false, ""},
		"fe80::1%eth0":         {false, ""},
		"":                     {false, ""},
	} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			addr, err := zonetext.ParseAddress(input)
			if !tc.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, addr)
		})
	}
}
