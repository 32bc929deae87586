package config

import (
	"chanlog/pkg/logger"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Provider :
// Serves the levels of the logging channels from a viper instance.
// The level of a channel is the value of the key `section.channel`
// so with a yaml file it looks like:
//
//	logging:
//	  db: info
//	  net: 4
//
// Keys are case insensitive.
type Provider struct {
	v *viper.Viper
}

// NewProvider :
// Creates a provider reading `v`. A nil value uses the global
// viper instance.
func NewProvider(v *viper.Viper) *Provider {
	if v == nil {
		v = viper.GetViper()
	}

	return &Provider{
		v: v,
	}
}

func key(section string, key string) string {
	return section + "." + key
}

// Get :
// Returns the raw value associated to the key in the section and
// whether it is set.
func (p *Provider) Get(section string, k string) (interface{}, bool) {
	full := key(section, k)
	if !p.v.IsSet(full) {
		return nil, false
	}

	return p.v.Get(full), true
}

// Level :
// Implementation of the `logger.Provider` interface. Integer values
// are used as is, strings are parsed as severity names or numbers.
// Values that cannot be interpreted are reported as not set.
func (p *Provider) Level(section string, k string) (logger.Severity, bool) {
	raw, ok := p.Get(section, k)
	if !ok {
		return logger.LevelNever, false
	}

	switch value := raw.(type) {
	case string:
		level, err := logger.ParseSeverity(value)
		if err != nil {
			return logger.LevelNever, false
		}
		return level, true
	case bool, nil:
		return logger.LevelNever, false
	default:
		n, err := cast.ToIntE(value)
		if err != nil {
			return logger.LevelNever, false
		}
		return logger.Severity(n), true
	}
}
