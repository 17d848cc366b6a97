package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string        `mapstructure:"environment"`
	Server      ServerConfig  `mapstructure:"server"`
	Logger      LoggerConfig  `mapstructure:"logger"`
	Ledger      LedgerConfig  `mapstructure:"ledger"`
	Metrics     MetricsConfig `mapstructure:"metrics"`
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

// Address returns the host:port the server listens on
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// LedgerConfig contains ledger settings
type LedgerConfig struct {
	SeedOnStartup bool             `mapstructure:"seedOnStartup"`
	SeedUsers     []SeedUserConfig `mapstructure:"seedUsers"`
}

// SeedUserConfig describes a user created at startup.
// Balance is a decimal string such as "100.00".
type SeedUserConfig struct {
	Name    string `mapstructure:"name"`
	Email   string `mapstructure:"email"`
	Balance string `mapstructure:"balance"`
}

// Metric exporters
const (
	ExporterOTLP   = "otlp"
	ExporterStdout = "stdout"
)

// MetricsConfig contains OpenTelemetry metric settings
type MetricsConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	MeterName      string        `mapstructure:"meterName"`
	ServiceName    string        `mapstructure:"serviceName"`
	Exporter       string        `mapstructure:"exporter"`       // otlp or stdout
	Endpoint       string        `mapstructure:"endpoint"`       // OTLP gRPC collector, host:port
	ExportInterval time.Duration `mapstructure:"exportInterval"` // seconds
}

// Validate checks values the service cannot start without
func (c *Config) Validate() error {
	var problems []error

	switch c.Environment {
	case Development, Production, Test:
	default:
		problems = append(problems, fmt.Errorf("invalid environment %q, must be one of: %s, %s, %s",
			c.Environment, Development, Production, Test))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Server.ShutdownTimeout <= 0 {
		problems = append(problems, errors.New("server.shutdownTimeout must be positive"))
	}
	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		problems = append(problems, fmt.Errorf("logger.format %q must be json or console", c.Logger.Format))
	}
	if c.Metrics.Enabled {
		switch c.Metrics.Exporter {
		case ExporterStdout:
		case ExporterOTLP:
			if c.Metrics.Endpoint == "" {
				problems = append(problems, errors.New("metrics.endpoint is required for the otlp exporter"))
			}
		default:
			problems = append(problems, fmt.Errorf("metrics.exporter %q must be otlp or stdout", c.Metrics.Exporter))
		}
	}
	for i, u := range c.Ledger.SeedUsers {
		if u.Email == "" {
			problems = append(problems, fmt.Errorf("ledger.seedUsers[%d].email is required", i))
		}
	}

	return errors.Join(problems...)
}

// IsProduction reports whether the production environment is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
