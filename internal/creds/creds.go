// Package creds reads the login details for the registry.
package creds

import (
	"regexp"
	"strings"

	"github.com/ipreg/superglue/internal/failure"
	"github.com/ipreg/superglue/internal/file"
	"github.com/ipreg/superglue/internal/pp"
)

//nolint:gochecknoglobals
var (
	skipRegex = regexp.MustCompile(`^\s*#|^\s*$`)
	lineRegex = regexp.MustCompile(`^(\S+)\s+(.*)$`)
)

// Credentials are the login details. Unknown keys are kept but not used.
type Credentials struct {
	User  string
	Pass  string
	Extra map[string]string
}

// Parse reads "key value" lines. Blank lines and lines starting with # are skipped.
// The value of pass is never printed.
func Parse(ppfmt pp.PP, source string, text string) (Credentials, error) {
	c := Credentials{User: "", Pass: "", Extra: map[string]string{}}
	seen := map[string]bool{}

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if skipRegex.MatchString(line) {
			continue
		}

		m := lineRegex.FindStringSubmatch(line)
		if m == nil {
			return Credentials{}, &failure.SyntaxError{
				Source: source, Line: i + 1, Text: line,
				Msg: "could not parse line: " + line,
			}
		}
		key, value := m[1], m[2]
		seen[key] = true

		switch key {
		case "user":
			c.User = value
			ppfmt.Debugf(pp.EmojiSecret, "%s %s", key, value)
		case "pass":
			c.Pass = value
			ppfmt.Debugf(pp.EmojiSecret, "pass ********")
		default:
			c.Extra[key] = value
			ppfmt.Debugf(pp.EmojiSecret, "%s %s", key, value)
		}
	}

	for _, key := range [...]string{"user", "pass"} {
		if !seen[key] {
			return Credentials{}, &failure.SyntaxError{
				Source: source, Line: 0, Text: "",
				Msg: "missing " + key,
			}
		}
	}

	return c, nil
}

// Load reads the credentials file at path.
func Load(ppfmt pp.PP, path string) (Credentials, error) {
	body, err := file.Read(ppfmt, path)
	if err != nil {
		return Credentials{}, err
	}
	return Parse(ppfmt, file.Describe(path), string(body))
}
