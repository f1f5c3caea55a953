package config

const (
	defaultConfigPath   = "~/.config/clipmeta/config.toml"
	projectConfigName   = "clipmeta.toml"
	defaultOutputFormat = "table"
	defaultLogFormat    = "console"
	defaultLogLevel     = "warn"
)

var defaultExtensions = []string{"mp4"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Extensions: append([]string(nil), defaultExtensions...),
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
