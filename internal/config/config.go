package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StoreConfig contains settings for the record store and its listing
// behavior. DefaultPageLimit is applied when a list request carries no
// explicit limit; MaxPageLimit caps whatever the caller asks for.
type StoreConfig struct {
	DefaultPageLimit int `mapstructure:"default_page_limit" validate:"required,gt=0"`
	MaxPageLimit     int `mapstructure:"max_page_limit"     validate:"required,gtefield=DefaultPageLimit"`
}
