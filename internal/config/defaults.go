package config

const (
	defaultConfigPath   = "~/.config/olistcheck/config.toml"
	projectConfigName   = "olistcheck.toml"
	defaultDataDir      = "./data"
	defaultSamplePrefix = "sample_"
	defaultLocale       = "en"
	defaultColor        = ColorAuto
	defaultLogFormat    = "console"
	defaultLogLevel     = "warn"

	// DataDirEnv names the environment variable consulted when the config
	// file does not set paths.data_dir.
	DataDirEnv = "OLISTCHECK_DATA_DIR"
)

// Colour modes accepted by report.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
		},
		Samples: Samples{
			Prefix: defaultSamplePrefix,
			Prompt: true,
		},
		Report: Report{
			Locale: defaultLocale,
			Color:  defaultColor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
