package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment   string              `mapstructure:"environment"`
	Server        ServerConfig        `mapstructure:"server"`
	Storage       StorageConfig       `mapstructure:"storage"`
	Logger        LoggerConfig        `mapstructure:"logger"`
	Simulation    SimulationConfig    `mapstructure:"simulation"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// StorageConfig contains settings for the device-local key-value store
type StorageConfig struct {
	// Driver selects the persistence adapter: "sqlite" or "memory"
	Driver string `mapstructure:"driver"`
	// Path is the sqlite database file location
	Path string `mapstructure:"path"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SimulationConfig tunes the fake backend behavior
type SimulationConfig struct {
	// LatencyMs is the simulated round-trip applied to session mutations
	LatencyMs int64 `mapstructure:"latencyMs"`
}

// NotificationsConfig contains notification feed settings
type NotificationsConfig struct {
	FeedCapacity int `mapstructure:"feedCapacity"`
}
