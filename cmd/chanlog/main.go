package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"chanlog/pkg/config"
	"chanlog/pkg/logger"

	"github.com/spf13/viper"
)

const (
	codeFailed      = 1
	codeInvalidArgs = 2
)

// usage :
// Displays the usage of the tool.
func usage(out io.Writer) {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "chanlog [-config=[file]] [-strict-never] <severity> <channel> [message...]")
	fmt.Fprintln(out, "  severity: error, warning, info or debug")
}

// run :
// Parses the arguments, loads the configuration and emits the
// message. Returns the exit code of the process.
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	flags := flag.NewFlagSet("chanlog", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configFile := flags.String("config", "", "configuration file to use (without extension)")
	strictNever := flags.Bool("strict-never", false, "silence channels configured with never")
	help := flags.Bool("h", false, "print usage")

	if err := flags.Parse(args); err != nil {
		usage(stderr)
		return codeInvalidArgs
	}
	if *help {
		usage(stdout)
		return 0
	}

	rest := flags.Args()
	if len(rest) < 2 {
		usage(stderr)
		return codeInvalidArgs
	}

	level, err := logger.ParseSeverity(rest[0])
	if err != nil || level < logger.LevelError || level > logger.LevelDebug {
		fmt.Fprintf(stderr, "invalid severity %q\n", rest[0])
		usage(stderr)
		return codeInvalidArgs
	}

	v := viper.New()
	metadata, err := config.Load(v, *configFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return codeFailed
	}

	var opts []logger.Option
	if *strictNever {
		opts = append(opts, logger.WithStrictNever())
	}

	console := logger.NewConsole(stdout, stderr, metadata.ConsoleOptions())
	d := logger.NewDispatcher(config.NewProvider(v), console.Sinks(), opts...)

	d.Debug("chanlog", "loaded configuration", metadata.Environment)

	channel, message := rest[1], rest[2:]
	values := make([]logger.Loggable, 0, len(message))
	for _, m := range message {
		values = append(values, m)
	}

	switch level {
	case logger.LevelError:
		d.Error(channel, values...)
	case logger.LevelWarning:
		d.Warning(channel, values...)
	case logger.LevelInfo:
		d.Info(channel, values...)
	case logger.LevelDebug:
		d.Debug(channel, values...)
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
