package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr            string        `mapstructure:"addr" yaml:"addr"`
	LogLevel        string        `mapstructure:"log_level" yaml:"log_level"`
	DefaultRoom     string        `mapstructure:"default_room" yaml:"default_room"`
	Notices         bool          `mapstructure:"notices" yaml:"notices"`
	ClientBuffer    int           `mapstructure:"client_buffer" yaml:"client_buffer"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:            ":6567",
		LogLevel:        "info",
		DefaultRoom:     "default",
		Notices:         true,
		ClientBuffer:    16,
		ShutdownTimeout: 5 * time.Second,
	}
}
