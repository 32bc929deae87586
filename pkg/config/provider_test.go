package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/spf13/viper"

	"chanlog/pkg/config"
	"chanlog/pkg/logger"
)

func assertEq(t *testing.T, actual, expected interface{}) {
	t.Helper()
	if diff := cmp.Diff(actual, expected); diff != "" {
		t.Fatal(diff)
	}
}

func TestProvider(t *testing.T) {
	spec.Run(t, "Provider", testProvider, spec.Parallel(), spec.Report(report.Terminal{}))
}

func testProvider(t *testing.T, when spec.G, it spec.S) {
	var (
		v        *viper.Viper
		provider *config.Provider
	)

	it.Before(func() {
		v = viper.New()
		provider = config.NewProvider(v)
	})

	when("#Level", func() {
		it("reports missing channels as not set", func() {
			_, ok := provider.Level(logger.Section, "net")
			assertEq(t, ok, false)
		})

		it("uses integer values as severities", func() {
			v.Set("logging.db", 3)
			level, ok := provider.Level(logger.Section, "db")
			assertEq(t, ok, true)
			assertEq(t, level, logger.LevelInfo)
		})

		it("converts floating values", func() {
			v.Set("logging.db", 4.0)
			level, ok := provider.Level(logger.Section, "db")
			assertEq(t, ok, true)
			assertEq(t, level, logger.LevelDebug)
		})

		it("parses string values", func() {
			v.Set("logging.db", "Debug")
			v.Set("logging.net", "1")
			level, ok := provider.Level(logger.Section, "db")
			assertEq(t, ok, true)
			assertEq(t, level, logger.LevelDebug)

			level, ok = provider.Level(logger.Section, "net")
			assertEq(t, ok, true)
			assertEq(t, level, logger.LevelError)
		})

		it("reports a configured never level as set", func() {
			v.Set("logging.io", 0)
			level, ok := provider.Level(logger.Section, "io")
			assertEq(t, ok, true)
			assertEq(t, level, logger.LevelNever)
		})

		it("reports values that are not severities as not set", func() {
			v.Set("logging.bad", "loud")
			v.Set("logging.flag", true)
			v.Set("logging.list", []string{"a"})

			for _, channel := range []string{"bad", "flag", "list"} {
				_, ok := provider.Level(logger.Section, channel)
				assertEq(t, ok, false)
			}
		})

		it("ignores the case of the channel", func() {
			v.Set("logging.db", 4)
			level, ok := provider.Level(logger.Section, "DB")
			assertEq(t, ok, true)
			assertEq(t, level, logger.LevelDebug)
		})
	})

	when("#Get", func() {
		it("returns the raw value", func() {
			v.Set("logging.db", "info")
			raw, ok := provider.Get("logging", "db")
			assertEq(t, ok, true)
			assertEq(t, raw, "info")

			_, ok = provider.Get("logging", "net")
			assertEq(t, ok, false)
		})
	})

	when("used by a dispatcher", func() {
		it("drives the thresholds of the channels", func() {
			var out []string
			sink := func(args ...logger.Loggable) {
				out = append(out, args[0].(string))
			}
			sinks := logger.Sinks{Error: sink, Warn: sink, Log: sink, Debug: sink}

			v.Set("logging.db", "info")
			v.Set("logging.io", 0)
			d := logger.NewDispatcher(provider, sinks)

			d.Debug("db", "query plan")
			d.Info("db", "query plan")
			d.Info("net", "connected")
			d.Warning("net", "retrying")
			d.Warning("io", "slow disk")

			assertEq(t, out, []string{"query plan", "retrying", "slow disk"})
		})
	})
}
