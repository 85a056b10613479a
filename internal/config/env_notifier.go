package config

import (
	"github.com/ipreg/superglue/internal/notifier"
	"github.com/ipreg/superglue/internal/pp"
)

// ReadAndAppendShoutrrrURL reads the URLs separated by the newline.
func ReadAndAppendShoutrrrURL(ppfmt pp.PP, key string, field *[]notifier.Notifier) bool {
	vals := Getenvs(key)
	if len(vals) == 0 {
		return true
	}

	s, ok := notifier.NewShoutrrr(ppfmt, vals)
	if !ok {
		return false
	}

	*field = append(*field, s)
	return true
}
