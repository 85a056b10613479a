package pp

import (
	"fmt"
	"strings"
)

// Verbosity is the type of message levels.
type Verbosity int

// Pre-defined verbosity levels.
const (
	Debug            Verbosity = iota // step-by-step details of parsing and navigation
	Info                              // useful additional info
	Notice                            // important messages
	Warning                           // unusual situations that do not stop the run
	Error                             // failures that stop the run
	Verbose          Verbosity = Info
	Quiet            Verbosity = Notice
	DefaultVerbosity Verbosity = Verbose
)

// ParseVerbosity reads the value of a --log-level flag.
func ParseVerbosity(level string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return Debug, nil
	case "info", "":
		return Info, nil
	default:
		return DefaultVerbosity, fmt.Errorf("unknown log level %q (expected info or debug)", level)
	}
}
