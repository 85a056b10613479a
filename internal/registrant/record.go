// Package registrant handles the contact details shown in the whois output of a domain.
package registrant

import (
	"slices"
)

// Field is one registrant attribute.
type Field struct {
	Key   string
	Value string
}

// Record is an ordered set of registrant attributes. The order is the order
// in which the fields were first given, and is kept for logging and for
// filling forms. The zero value is an empty record.
type Record struct {
	fields []Field
}

// NewRecord creates a record from fields. Later fields replace earlier ones with the same key.
func NewRecord(fields ...Field) Record {
	var r Record
	for _, f := range fields {
		r.Set(f.Key, f.Value)
	}
	return r
}

func (r Record) index(key string) int {
	return slices.IndexFunc(r.fields, func(f Field) bool { return f.Key == key })
}

// Set adds or replaces a field. A replaced field keeps its position.
func (r *Record) Set(key, value string) {
	if i := r.index(key); i >= 0 {
		r.fields[i].Value = value
		return
	}
	r.fields = append(r.fields, Field{Key: key, Value: value})
}

// Get looks up a field.
func (r Record) Get(key string) (string, bool) {
	if i := r.index(key); i >= 0 {
		return r.fields[i].Value, true
	}
	return "", false
}

// Len gives the number of fields.
func (r Record) Len() int { return len(r.fields) }

// IsEmpty checks whether there are no fields.
func (r Record) IsEmpty() bool { return len(r.fields) == 0 }

// Fields gives a copy of all fields in order.
func (r Record) Fields() []Field { return slices.Clone(r.fields) }

// Keys gives all keys in order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r.fields))
	for _, f := range r.fields {
		keys = append(keys, f.Key)
	}
	return keys
}
