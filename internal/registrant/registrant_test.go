package registrant_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ipreg/superglue/internal/failure"
	"github.com/ipreg/superglue/internal/mocks"
	"github.com/ipreg/superglue/internal/pp"
	"github.com/ipreg/superglue/internal/registrant"
)

func TestRecord(t *testing.T) {
	t.Parallel()

	r := registrant.NewRecord(
		registrant.Field{"Name", "University of Example"},
		registrant.Field{"Town", "Exampleton"},
		registrant.Field{"Name", "Example University"},
	)
	require.Equal(t, 2, r.Len())
	require.Equal(t, []string{"Name", "Town"}, r.Keys())

	v, ok := r.Get("Name")
	require.True(t, ok)
	require.Equal(t, "Example University", v)

	_, ok = r.Get("PostCode")
	require.False(t, ok)

	fields := r.Fields()
	fields[0].Value = "changed"
	v, _ = r.Get("Name")
	require.Equal(t, "Example University", v)

	require.True(t, registrant.Record{}.IsEmpty())
}

func TestDecode(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		input    string
		ok       bool
		expected []string
	}{
		"ordered":    {`{"Town":"Exampleton","Name":"X","PostCode":"EX1 1AA"}`, true, []string{"Town", "Name", "PostCode"}},
		"empty":      {`{}`, true, []string{}},
		"spaces":     {" \n{ \"A\" : \"1\" }\n", true, []string{"A"}},
		"duplicate":  {`{"A":"1","B":"2","A":"3"}`, true, []string{"A", "B"}},
		"array":      {`["A"]`, false, nil},
		"number":     {`{"A":1}`, false, nil},
		"nested":     {`{"A":{"B":"C"}}`, false, nil},
		"trailing":   {`{"A":"1"} {}`, false, nil},
		"truncated":  {`{"A":"1"`, false, nil},
		"not-json":   {`A 1`, false, nil},
		"empty-text": {``, false, nil},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r, err := registrant.Decode([]byte(tc.input))
			if !tc.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, r.Keys())
		})
	}
}

func TestDecodeDuplicateKeepsLastValue(t *testing.T) {
	t.Parallel()

	r, err := registrant.Decode([]byte(`{"A":"1","B":"2","A":"3"}`))
	require.NoError(t, err)
	v, _ := r.Get("A")
	require.Equal(t, "3", v)
}

func TestEncode(t *testing.T) {
	t.Parallel()

	r := registrant.NewRecord(registrant.Field{"Town", "Exampleton"}, registrant.Field{"Name", `"Quoted"`})
	require.JSONEq(t, `{"Town":"Exampleton","Name":"\"Quoted\""}`, string(registrant.Encode(r)))

	var decoded registrant.Record
	require.NoError(t, json.Unmarshal(registrant.Encode(r), &decoded))
	require.Equal(t, r, decoded)

	wrapped, err := json.Marshal(map[string]registrant.Record{"x": r})
	require.NoError(t, err)
	require.Equal(t, `{"x":{"Town":"Exampleton","Name":"\"Quoted\""}}`, string(wrapped))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	gomock.InOrder(
		mockPP.EXPECT().Debugf(pp.EmojiParse, "%s: %s", "Town", "Exampleton"),
		mockPP.EXPECT().Debugf(pp.EmojiParse, "%s: %s", "PostCode", "EX1 1AA"),
	)

	r, err := registrant.Load(mockPP, "whois.json", []byte(`{"Town":"Exampleton","PostCode":"EX1 1AA"}`))
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())
}

func TestLoadEmpty(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockPP.EXPECT().Noticef(pp.EmojiUserWarning,
		"No registrant fields found in %s; the registrant will be left unchanged", "stdin")

	r, err := registrant.Load(mockPP, "stdin", []byte(`{}`))
	require.NoError(t, err)
	require.True(t, r.IsEmpty())
}

func TestLoadError(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)

	_, err := registrant.Load(mockPP, "stdin", []byte(`[]`))
	require.EqualError(t, err, "stdin: registrant data must be a JSON object")
	require.Equal(t, failure.KindSyntax, failure.KindOf(err))
}

func TestFieldTables(t *testing.T) {
	t.Parallel()

	require.Equal(t, "PostCode", registrant.DisplayField("Postcode"))
	require.Equal(t, "PostCode", registrant.DisplayField("PostCode"))
	require.Equal(t, "Town", registrant.DisplayField("Town"))

	require.Equal(t, "Postcode", registrant.FormField("PostCode"))
	require.Equal(t, "Postcode", registrant.FormField("Postcode"))
	require.Equal(t, "Town", registrant.FormField("Town"))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	current := registrant.NewRecord(
		registrant.Field{"Name", "Example University"},
		registrant.Field{"Town", "Exampleton"},
		registrant.Field{"PostCode", "EX1 1AA"},
	)

	for name, tc := range map[string]struct {
		desired  registrant.Record
		match    bool
		expected []registrant.Diff
	}{
		"empty": {registrant.Record{}, true, []registrant.Diff{}},
		"partial": {
			registrant.NewRecord(registrant.Field{"Town", "Exampleton"}),
			true,
			[]registrant.Diff{{"Town", "Exampleton", "Exampleton"}},
		},
		"remapped": {
			registrant.NewRecord(registrant.Field{"Postcode", "EX1 1AA"}),
			true,
			[]registrant.Diff{{"Postcode", "EX1 1AA", "EX1 1AA"}},
		},
		"changed": {
			registrant.NewRecord(registrant.Field{"Name", "Example University"}, registrant.Field{"Town", "Newtown"}),
			false,
			[]registrant.Diff{
				{"Name", "Example University", "Example University"},
				{"Town", "Exampleton", "Newtown"},
			},
		},
		"not-shown": {
			registrant.NewRecord(registrant.Field{"Fax", "+44 1234"}),
			false,
			[]registrant.Diff{{"Fax", "", "+44 1234"}},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			match, diffs := registrant.Compare(tc.desired, current)
			require.Equal(t, tc.match, match)
			require.Equal(t, tc.expected, diffs)
		})
	}
}
