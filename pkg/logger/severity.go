package logger

import (
	"fmt"
	"strconv"
	"strings"
)

// Severity :
// Describes the various available log severities that can be
// used in conjunction with the dispatcher. Lower values are of
// higher priority: a message is displayed when its severity is
// lower or equal to the threshold configured for its channel.
//
// The `LevelNever` value is not meant to be used at a call site: it
// only makes sense as a configured threshold.
type Severity int

const (
	LevelNever Severity = iota
	LevelError
	LevelWarning
	LevelInfo
	LevelDebug
)

// DefaultThreshold :
// The threshold applied to channels which do not have any
// level configured.
const DefaultThreshold = LevelWarning

// ErrUnknownSeverity :
// Used when a string cannot be converted into a severity.
var ErrUnknownSeverity = fmt.Errorf("unknown severity")

var names = [...]string{
	"never",
	"error",
	"warning",
	"info",
	"debug",
}

// valid :
// Returns `true` if the severity is one of the named values.
func (s Severity) valid() bool {
	return s >= LevelNever && int(s) < len(names)
}

// Name :
// Provides a string value from the severity. Values outside of
// the known range are named "unknown".
//
// Returns the string representing the severity.
func (s Severity) Name() string {
	if !s.valid() {
		return "unknown"
	}
	return names[s]
}

// Color :
// Provides a color value representing the severity. This is used
// as a visual way to distinguish between severity when displayed
// in a console.
//
// Returns the color associated to the severity.
func (s Severity) Color() Color {
	switch s {
	case LevelError:
		return Red
	case LevelWarning:
		return Yellow
	case LevelInfo:
		return Green
	case LevelDebug:
		return Blue
	default:
		return Grey
	}
}

// String :
// Provides the name of the severity surrounded by brackets and
// colored according to its importance.
func (s Severity) String() string {
	return FormatWithBrackets(s.Name(), s.Color())
}

// ParseSeverity :
// Converts the input string into the corresponding severity value.
// The case is not important (so `Debug`, `DeBug` and `debug` all
// produce `LevelDebug`). The short forms `warn` and `err` are accepted
// as well as plain integers such as "3" which are converted with
// no range check.
//
// The `level` represents the string to convert to a severity.
//
// Returns the severity associated to the input string along with
// any error.
func ParseSeverity(level string) (Severity, error) {
	lower := strings.ToLower(strings.TrimSpace(level))

	switch lower {
	case "never":
		return LevelNever, nil
	case "error", "err":
		return LevelError, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}

	if n, err := strconv.Atoi(lower); err == nil {
		return Severity(n), nil
	}

	return LevelNever, fmt.Errorf("%w: %q", ErrUnknownSeverity, level)
}
