package config

import (
	"fmt"
	"strings"

	"chanlog/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// AppMetadata :
// Describes some properties used to identify the current instance
// of the application in the logs it produces.
//
// The `AppName` is the name displayed in front of each message.
// The default value is "chanlog".
//
// The `InstanceID` describes an identifier of the current instance
// of the application. It is generated at runtime and changes upon
// each restart which allows to distinguish several instances that
// run on a single machine.
//
// The `Environment` is the name of the configuration used to start
// the application. Typical values include `development` or
// `production`.
// The default value is "unknown".
//
// The `Colored` boolean indicates whether the console should color
// the messages based on their severity.
// The default value is `false`.
type AppMetadata struct {
	AppName     string `json:"app_name"`
	InstanceID  string `json:"instance_id"`
	Environment string `json:"environment"`
	Colored     bool   `json:"colored"`
}

// Prefix :
// Builds the string displayed in front of each console line
// from the name of the application and its instance id.
func (m AppMetadata) Prefix() string {
	if !m.Colored {
		return "[" + m.AppName + "] [" + m.InstanceID + "]"
	}

	return logger.FormatWithBrackets(m.AppName, logger.Magenta) + " " + logger.FormatWithBrackets(m.InstanceID, logger.Magenta)
}

// ConsoleOptions :
// Converts the metadata into the options of a console.
func (m AppMetadata) ConsoleOptions() logger.ConsoleOptions {
	return logger.ConsoleOptions{
		Prefix:  m.Prefix(),
		Colored: m.Colored,
	}
}

// Parse :
// Used to parse the configuration of the application into the
// global viper instance. See `Load` for details.
func Parse(configFile string) (AppMetadata, error) {
	return Load(viper.GetViper(), configFile)
}

// Load :
// Reads the configuration file and the environment into `v` and
// produces the application's metadata. Any key can be overridden
// by an environment variable prefixed with `ENV_` where the `.`
// of the key are replaced by `_` (so `logging.db` can be set with
// `ENV_LOGGING_DB`).
//
// The `configFile` is the name of the configuration file without
// its extension. It is looked for in the working directory and in
// the `data/config` directory. An empty name skips the file so
// that only the environment is used.
//
// Returns the metadata along with any error.
func Load(v *viper.Viper, configFile string) (AppMetadata, error) {
	v.SetEnvPrefix("ENV")
	replacer := strings.NewReplacer(".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	metadata := AppMetadata{
		AppName:     "chanlog",
		InstanceID:  uuid.New().String(),
		Environment: "unknown",
		Colored:     false,
	}

	if len(configFile) > 0 {
		v.SetConfigName(configFile)
		v.AddConfigPath(".")
		v.AddConfigPath("data/config")

		if err := v.ReadInConfig(); err != nil {
			return metadata, fmt.Errorf("could not parse input configuration %q: %w", configFile, err)
		}

		metadata.Environment = configFile
	}

	if v.IsSet("App.Name") {
		metadata.AppName = v.GetString("App.Name")
	}
	if v.IsSet("Console.Color") {
		metadata.Colored = v.GetBool("Console.Color")
	}

	return metadata, nil
}
