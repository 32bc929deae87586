package logger

// Dispatcher :
// Routes log calls to the sink matching their severity when the
// threshold configured for their channel allows it. The threshold
// is fetched from the provider on each call so that changes to
// the configuration apply right away.
//
// The `provider` is queried with the `logging` section and the
// name of the channel.
//
// The `sinks` receive the arguments of the calls that pass the
// threshold.
//
// The `strictNever` boolean controls how a configured `LevelNever`
// level is interpreted: when `false` (the default) it falls back
// to the default threshold just like a channel with no level,
// when `true` it discards every message of the channel.
type Dispatcher struct {
	provider    Provider
	sinks       Sinks
	strictNever bool
}

// Option :
// Allows to customize a dispatcher upon creation.
type Option func(d *Dispatcher)

// WithStrictNever :
// Makes a channel configured with `LevelNever` silent instead of
// falling back to the default threshold.
func WithStrictNever() Option {
	return func(d *Dispatcher) {
		d.strictNever = true
	}
}

// NewDispatcher :
// Creates a dispatcher fetching thresholds from `provider` and
// writing messages to `sinks`.
func NewDispatcher(provider Provider, sinks Sinks, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		provider: provider,
		sinks:    sinks,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Threshold :
// Returns the severity at or below which messages of the input
// channel are displayed.
func (d *Dispatcher) Threshold(channel string) Severity {
	level, ok := d.provider.Level(Section, channel)

	if ok && level == LevelNever && d.strictNever {
		return LevelNever
	}
	if !ok || level == LevelNever {
		return DefaultThreshold
	}

	return level
}

// Enabled :
// Returns `true` if a message with the specified severity would
// be displayed on the channel.
func (d *Dispatcher) Enabled(channel string, level Severity) bool {
	return level <= d.Threshold(channel)
}

// emit :
// Forwards the arguments to the sink of the severity if the
// channel's threshold allows it and drops them otherwise.
func (d *Dispatcher) emit(channel string, level Severity, args []Loggable) {
	if !d.Enabled(channel, level) {
		return
	}

	if sink := d.sinks.forSeverity(level); sink != nil {
		sink(args...)
	}
}

func (d *Dispatcher) Debug(channel string, args ...Loggable) {
	d.emit(channel, LevelDebug, args)
}

func (d *Dispatcher) Info(channel string, args ...Loggable) {
	d.emit(channel, LevelInfo, args)
}

func (d *Dispatcher) Warning(channel string, args ...Loggable) {
	d.emit(channel, LevelWarning, args)
}

func (d *Dispatcher) Error(channel string, args ...Loggable) {
	d.emit(channel, LevelError, args)
}

// Channel :
// Returns a handle logging every message under `name`.
func (d *Dispatcher) Channel(name string) *Channel {
	return &Channel{
		name:   name,
		logger: d,
	}
}

// Channel :
// A logger bound to a single channel.
type Channel struct {
	name   string
	logger Logger
}

// Name :
// Returns the name of the channel.
func (c *Channel) Name() string {
	return c.name
}

func (c *Channel) Debug(args ...Loggable) {
	c.logger.Debug(c.name, args...)
}

func (c *Channel) Info(args ...Loggable) {
	c.logger.Info(c.name, args...)
}

func (c *Channel) Warning(args ...Loggable) {
	c.logger.Warning(c.name, args...)
}

func (c *Channel) Error(args ...Loggable) {
	c.logger.Error(c.name, args...)
}
