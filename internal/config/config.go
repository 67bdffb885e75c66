package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Seed      SeedConfig      `mapstructure:"seed"`
	KeepAlive KeepAliveConfig `mapstructure:"keepalive"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// SeedConfig controls the synthetic data the server starts with.
type SeedConfig struct {
	// Contacts is the number of generated contacts to preload. Zero starts
	// the server with an empty collection.
	Contacts int `mapstructure:"contacts" validate:"gte=0"`
}

// KeepAliveConfig controls the optional self-ping loop used on hosts that
// idle services out after a period without traffic.
type KeepAliveConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	URL             string `mapstructure:"url" validate:"required_if=Enabled true,omitempty,url"`
	IntervalMinutes int    `mapstructure:"interval_minutes" validate:"gt=0"`
}
