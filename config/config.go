// Package config loads server settings from the environment with sane
// defaults. The core packages never read config; only cmd does.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxFret        int      `mapstructure:"max_fret"`
}

// Load reads FRETWISE_* environment variables over defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("fretwise")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("max_fret", 12)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
