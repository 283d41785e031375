// Package config loads the CLI configuration from defaults, an optional file,
// NUM_* environment variables and command line flags, in increasing priority.
package config

// Config holds all application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Console ConsoleConfig `mapstructure:"console"`
	Export  ExportConfig  `mapstructure:"export"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// ConsoleConfig configures the interactive terminal. An empty Prompt disables it.
type ConsoleConfig struct {
	Prompt string `mapstructure:"prompt"`
	Banner bool   `mapstructure:"banner"`
}

// ExportConfig holds the defaults of `num export`. Prefix is prepended to every
// variable name and must itself be usable at the start of one.
type ExportConfig struct {
	Shell  string `mapstructure:"shell" validate:"shell"`
	Prefix string `mapstructure:"prefix" validate:"omitempty,envprefix"`
}
