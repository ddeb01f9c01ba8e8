package config

import "github.com/spf13/viper"

// SMTPConfig holds outbound mail settings. With no host configured,
// --email and manifest recipients are rejected before any ranking runs.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// Config holds all runtime configuration for a verdict invocation.
// Values are populated from .verdict.yaml, VERDICT_* env vars, and CLI
// flags.
type Config struct {
	Weights string     `mapstructure:"weights"`
	Impacts string     `mapstructure:"impacts"`
	Verbose bool       `mapstructure:"verbose"`
	SMTP    SMTPConfig `mapstructure:"smtp"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("weights", "")
	viper.SetDefault("impacts", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("smtp.host", "")
	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("smtp.username", "")
	viper.SetDefault("smtp.password", "")
	viper.SetDefault("smtp.from", "verdict@localhost")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
