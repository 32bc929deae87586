package logger

import "sync"

var (
	defaultLocker     sync.RWMutex
	defaultDispatcher = NewDispatcher(Levels{}, DefaultConsole().Sinks())
)

// SetDefault :
// Replaces the dispatcher used by the package level functions.
// A nil value restores a dispatcher with no configured level
// writing to the standard streams.
func SetDefault(d *Dispatcher) {
	if d == nil {
		d = NewDispatcher(Levels{}, DefaultConsole().Sinks())
	}

	defaultLocker.Lock()
	defer defaultLocker.Unlock()
	defaultDispatcher = d
}

// Default :
// Returns the dispatcher used by the package level functions.
func Default() *Dispatcher {
	defaultLocker.RLock()
	defer defaultLocker.RUnlock()
	return defaultDispatcher
}

func Debug(channel string, args ...Loggable) {
	Default().Debug(channel, args...)
}

func Info(channel string, args ...Loggable) {
	Default().Info(channel, args...)
}

func Warning(channel string, args ...Loggable) {
	Default().Warning(channel, args...)
}

func Error(channel string, args ...Loggable) {
	Default().Error(channel, args...)
}
