package updater

import (
	"github.com/ipreg/superglue/internal/config"
	"github.com/ipreg/superglue/internal/delegation"
	"github.com/ipreg/superglue/internal/file"
	"github.com/ipreg/superglue/internal/pp"
	"github.com/ipreg/superglue/internal/registrant"
	"github.com/ipreg/superglue/internal/zonetext"
)

// Desired is what the input asks the registry to hold.
// A part that is empty is left alone.
type Desired struct {
	Delegation delegation.Set
	Registrant registrant.Record
}

// IsEmpty checks whether the input asks for nothing at all.
func (d Desired) IsEmpty() bool { return d.Delegation.IsEmpty() && d.Registrant.IsEmpty() }

// ReadInput reads the input of the mode: zone text for delegate and a JSON object for whois.
func ReadInput(ppfmt pp.PP, c *config.Config, opts *config.Options) (Desired, error) {
	var desired Desired

	body, err := file.Read(ppfmt, opts.Input)
	if err != nil {
		return desired, err
	}
	source := file.Describe(opts.Input)

	switch opts.Mode {
	case config.ModeWhois:
		desired.Registrant, err = registrant.Load(ppfmt, source, body)
	default:
		desired.Delegation, err = zonetext.Parse(ppfmt, source, string(body), opts.Domain,
			zonetext.Options{ReverseDS: c.ReverseDS})
	}
	if err != nil {
		var none Desired
		return none, err
	}

	ppfmt.Infof(pp.EmojiParse, "Read the %s input from %s", opts.Mode, source)
	return desired, nil
}
