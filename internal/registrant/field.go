package registrant

// The registry does not spell every attribute the same way on every page.
// Keys not in these tables are used as they are.
//
//nolint:gochecknoglobals
var (
	// displayFields maps a record key to the name of the field on the domain details page.
	displayFields = map[string]string{
		"Postcode": "PostCode",
	}

	// formFields maps a record key to the name of the input on the modification form.
	formFields = map[string]string{
		"PostCode": "Postcode",
	}
)

// DisplayField gives the name under which the registry displays the key.
func DisplayField(key string) string {
	if f, ok := displayFields[key]; ok {
		return f
	}
	return key
}

// FormField gives the name under which the registry accepts the key in modifications.
func FormField(key string) string {
	if f, ok := formFields[key]; ok {
		return f
	}
	return key
}

// Diff is the comparison of one desired field with what the registry shows.
type Diff struct {
	Key     string
	Current string
	Desired string
}

// Match checks whether the registry already shows the desired value.
func (d Diff) Match() bool { return d.Current == d.Desired }

// Compare checks every key of desired against current, whose keys are display field names.
// Keys absent from desired are ignored. A field the registry does not show
// at all counts as empty.
func Compare(desired, current Record) (bool, []Diff) {
	match := true
	diffs := make([]Diff, 0, desired.Len())
	for _, f := range desired.fields {
		shown, _ := current.Get(DisplayField(f.Key))
		d := Diff{Key: f.Key, Current: shown, Desired: f.Value}
		if !d.Match() {
			match = false
		}
		diffs = append(diffs, d)
	}
	return match, diffs
}
