package logger

// Section :
// The configuration section holding the thresholds of the
// logging channels: the level of channel `db` is found under
// the key `db` of this section.
const Section = "logging"

// Loggable :
// Any value that can be displayed by a sink. Values are rendered
// with the default format of the `fmt` package so types defining
// a `String` or an `Error` method are displayed through it.
type Loggable = interface{}

// Logger :
// Describes the interface allowing to log messages under a named
// channel with one method per severity.
type Logger interface {
	Debug(channel string, args ...Loggable)
	Info(channel string, args ...Loggable)
	Warning(channel string, args ...Loggable)
	Error(channel string, args ...Loggable)
}

// Provider :
// Describes the configuration store consulted by the dispatcher
// to fetch the threshold of a channel. The boolean is `false`
// when no level is configured for the key.
type Provider interface {
	Level(section string, key string) (Severity, bool)
}

// Levels :
// An in-memory provider mapping channel names to thresholds.
// Only the `logging` section is served.
type Levels map[string]Severity

// Level :
// Implementation of the `Provider` interface.
func (l Levels) Level(section string, key string) (Severity, bool) {
	if section != Section {
		return LevelNever, false
	}
	s, ok := l[key]
	return s, ok
}

// Sink :
// An output primitive receiving the arguments of a log call.
type Sink func(args ...Loggable)

// Sinks :
// Groups the output primitive associated to each severity. A
// nil sink discards the messages it would receive.
type Sinks struct {
	Error Sink
	Warn  Sink
	Log   Sink
	Debug Sink
}

// forSeverity :
// Returns the sink associated to the input severity or `nil`
// if the severity does not have one (this is the case for the
// `LevelNever` value).
func (s Sinks) forSeverity(level Severity) Sink {
	switch level {
	case LevelError:
		return s.Error
	case LevelWarning:
		return s.Warn
	case LevelInfo:
		return s.Log
	case LevelDebug:
		return s.Debug
	default:
		return nil
	}
}
