package registrant

import (
	"errors"
	"fmt"

	"github.com/go-faster/jx"

	"github.com/ipreg/superglue/internal/failure"
	"github.com/ipreg/superglue/internal/pp"
)

var errNotObject = errors.New("registrant data must be a JSON object")

// Decode reads a flat JSON object of strings, keeping the order of the keys.
func Decode(data []byte) (Record, error) {
	var r Record

	d := jx.DecodeBytes(data)
	if d.Next() != jx.Object {
		return Record{}, errNotObject
	}

	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if d.Next() != jx.String {
			return fmt.Errorf("value of %q must be a string", key)
		}
		value, err := d.Str()
		if err != nil {
			return fmt.Errorf("value of %q: %w", key, err)
		}
		r.Set(string(key), value)
		return nil
	})
	if err != nil {
		return Record{}, err
	}

	if d.Next() != jx.Invalid {
		return Record{}, errors.New("unexpected data after the JSON object")
	}

	return r, nil
}

// Encode writes the record as a flat JSON object in field order.
func Encode(r Record) []byte {
	var e jx.Encoder
	e.ObjStart()
	for _, f := range r.fields {
		e.FieldStart(f.Key)
		e.Str(f.Value)
	}
	e.ObjEnd()
	return e.Bytes()
}

// MarshalJSON implements [encoding/json.Marshaler].
func (r Record) MarshalJSON() ([]byte, error) { return Encode(r), nil }

// UnmarshalJSON implements [encoding/json.Unmarshaler].
func (r *Record) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}

// Load decodes the registrant data read from the source and prints it at the debug level.
func Load(ppfmt pp.PP, source string, data []byte) (Record, error) {
	r, err := Decode(data)
	if err != nil {
		return Record{}, &failure.SyntaxError{Source: source, Line: 0, Text: "", Msg: err.Error()}
	}

	for _, f := range r.fields {
		ppfmt.Debugf(pp.EmojiParse, "%s: %s", f.Key, f.Value)
	}
	if r.IsEmpty() {
		ppfmt.Noticef(pp.EmojiUserWarning, "No registrant fields found in %s; the registrant will be left unchanged", source)
	}

	return r, nil
}
