package delegation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ipreg/superglue/internal/delegation"
	"github.com/ipreg/superglue/internal/pp"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	for _, tc := range [...]struct {
		a, b     delegation.NameServer
		expected int
	}{
		{delegation.NameServer{"ns1.a.b", ""}, delegation.NameServer{"ns1.a.b", "192.0.2.1"}, -1},
		{delegation.NameServer{"ns1.a.b", "192.0.2.2"}, delegation.NameServer{"ns1.a.b", "192.0.2.10"}, 1},
		{delegation.NameServer{"ns1.a.b", "192.0.2.1"}, delegation.NameServer{"ns2.a.b", ""}, -1},
		{delegation.NameServer{"ns1.a.b", "2001:db8::1"}, delegation.NameServer{"ns1.a.b", "2001:db8::1"}, 0},
	} {
		require.Equal(t, tc.expected, delegation.Compare(tc.a, tc.b))
		require.Equal(t, -tc.expected, delegation.Compare(tc.b, tc.a))
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := []delegation.NameServer{{"ns1.a.b", "192.0.2.1"}, {"ns2.a.b", "192.0.2.2"}}
	require.True(t, delegation.Equal(a, []delegation.NameServer{{"ns1.a.b", "192.0.2.1"}, {"ns2.a.b", "192.0.2.2"}}))
	require.False(t, delegation.Equal(a, a[:1]))
	require.False(t, delegation.Equal(a, []delegation.NameServer{{"ns2.a.b", "192.0.2.2"}, {"ns1.a.b", "192.0.2.1"}}))
	require.True(t, delegation.Equal(nil, []delegation.NameServer{}))
}

func TestSetManages(t *testing.T) {
	t.Parallel()

	require.True(t, delegation.Set{Origin: origin}.IsEmpty())

	s := delegation.Set{Origin: origin, DS: "x"}
	require.True(t, s.ManagesDS())
	require.False(t, s.ManagesNameServers())
	require.False(t, s.IsEmpty())

	_, ok := s.Primary()
	require.False(t, ok)
	require.Nil(t, s.Secondaries())
}

func TestPrintNameServers(t *testing.T) {
	t.Parallel()

	nss := []delegation.NameServer{{"ns.other.org", ""}, {"ns1.example.ac.uk", "192.0.2.1"}}

	var buf strings.Builder
	ppfmt := pp.New(&buf).SetEmoji(false).SetVerbosity(pp.Info)
	delegation.PrintNameServers(ppfmt, pp.Notice, pp.EmojiNew, origin, nss)
	delegation.PrintNameServers(ppfmt, pp.Debug, pp.EmojiNew, origin, nss)

	require.Equal(t,
		"example.ac.uk ns ns.other.org glue \nexample.ac.uk ns ns1.example.ac.uk glue 192.0.2.1\n",
		buf.String())
}
