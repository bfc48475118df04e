package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

const (
	EnvFiles     = "RACING_REPORT_FILES"
	EnvOrder     = "RACING_REPORT_ORDER"
	EnvColor     = "RACING_REPORT_COLOR"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
)

// Variable is an environment variable read by Load.
type Variable struct {
	Name    string
	Default string
	Usage   string
}

// Variables lists what Load reads, in the order usage shows them.
var Variables = []Variable{
	{Name: EnvFiles, Default: "", Usage: "directory holding the race logs, empty for the sample race"},
	{Name: EnvOrder, Default: "asc", Usage: "report order, asc or desc"},
	{Name: EnvColor, Default: "true", Usage: "colored output"},
	{Name: EnvLogLevel, Default: "warn", Usage: "log level"},
	{Name: EnvLogFormat, Default: "text", Usage: "log format, text or json"},
}

type Config struct {
	// Files is the directory holding the race logs, empty means the bundled sample race.
	Files   string
	Order   string
	Color   bool
	Logging LoggingConfig
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load fills the config from the environment. When envFile is not empty it is
// read first and must exist; variables already set are not overridden by it.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.Wrapf(err, "load %s", envFile)
		}
	}

	color, err := cast.ToBoolE(coalesce(EnvColor, true))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", EnvColor)
	}

	return &Config{
		Files: cast.ToString(coalesce(EnvFiles, "")),
		Order: cast.ToString(coalesce(EnvOrder, "asc")),
		Color: color,
		Logging: LoggingConfig{
			Level:  cast.ToString(coalesce(EnvLogLevel, "warn")),
			Format: cast.ToString(coalesce(EnvLogFormat, "text")),
		},
	}, nil
}

func coalesce(key string, value interface{}) interface{} {
	val, exist := os.LookupEnv(key)
	if exist {
		return val
	}
	return value
}
