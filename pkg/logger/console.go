package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// ConsoleOptions :
// Configures the way the console displays the messages.
//
// The `Prefix` is prepended to each line when it is not empty.
// A typical value includes the name of the application and the
// identifier of the running instance.
//
// The `Colored` boolean allows to display each line with the
// color of the severity it was logged with.
type ConsoleOptions struct {
	Prefix  string
	Colored bool
}

// Console :
// Provides the output primitives used by the dispatcher. Errors
// and warnings are written to the error stream while info and
// debug messages go to the standard stream. Arguments are joined
// with spaces and terminated by a new line.
//
// The `locker` serializes writes so that lines produced by
// concurrent callers are not mixed together.
type Console struct {
	stdout  io.Writer
	stderr  io.Writer
	options ConsoleOptions
	locker  sync.Mutex
}

// NewConsole :
// Creates a console writing to the input streams.
func NewConsole(stdout io.Writer, stderr io.Writer, options ConsoleOptions) *Console {
	return &Console{
		stdout:  stdout,
		stderr:  stderr,
		options: options,
	}
}

// DefaultConsole :
// Creates a console bound to the process' standard streams.
func DefaultConsole() *Console {
	return NewConsole(os.Stdout, os.Stderr, ConsoleOptions{})
}

// format :
// Builds the line to display for the input arguments.
func (c *Console) format(level Severity, args []Loggable) string {
	body := strings.TrimSuffix(fmt.Sprintln(args...), "\n")

	if c.options.Colored {
		body = Colorize(body, level.Color())
	}
	if len(c.options.Prefix) > 0 {
		body = c.options.Prefix + " " + body
	}

	return body + "\n"
}

// write :
// Writes the line to `out`. Write failures are ignored as there
// is nowhere left to report them.
func (c *Console) write(out io.Writer, level Severity, args []Loggable) {
	line := c.format(level, args)

	c.locker.Lock()
	defer c.locker.Unlock()

	_, _ = io.WriteString(out, line)
}

func (c *Console) Error(args ...Loggable) {
	c.write(c.stderr, LevelError, args)
}

func (c *Console) Warn(args ...Loggable) {
	c.write(c.stderr, LevelWarning, args)
}

func (c *Console) Log(args ...Loggable) {
	c.write(c.stdout, LevelInfo, args)
}

func (c *Console) Debug(args ...Loggable) {
	c.write(c.stdout, LevelDebug, args)
}

// Sinks :
// Returns the output primitives of the console ready to be used
// by a dispatcher.
func (c *Console) Sinks() Sinks {
	return Sinks{
		Error: c.Error,
		Warn:  c.Warn,
		Log:   c.Log,
		Debug: c.Debug,
	}
}
