package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Content  ContentConfig  `mapstructure:"content" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
// The URL is optional: without it the service answers from the static
// catalogue only.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url" validate:"omitempty,url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0,ltefield=MaxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
	// AutoMigrate applies pending migrations when the server starts.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// ContentConfig controls language handling for readings and content.
type ContentConfig struct {
	DefaultLanguage string `mapstructure:"default_language" validate:"required,oneof=en es it de zh ja fr"`
	// SQLitePath is a SQLite database file holding content entries. It is
	// used when no PostgreSQL URL is configured and is created if missing.
	SQLitePath string `mapstructure:"sqlite_path"`
	// OverridesFile is a YAML file of content entries served when neither
	// database is configured.
	OverridesFile string `mapstructure:"overrides_file" validate:"omitempty,file"`
}

// HasDatabase reports whether a content database is configured.
func (c *Config) HasDatabase() bool {
	return c.Database.URL != ""
}
