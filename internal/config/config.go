package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int   `env:"LOG_LEVEL" envDefault:"0"`
	API      API   `envPrefix:"API_"`
	Mongo    Mongo `envPrefix:"MONGO_"`
	CORS     CORS  `envPrefix:"CORS_"`
}

// API contains HTTP listener parameters.
type API struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Mongo contains document store parameters.
type Mongo struct {
	URI            string        `env:"URI" envDefault:"mongodb://localhost:27017"`
	Database       string        `env:"DATABASE" envDefault:"tutoring"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
	QueryTimeout   time.Duration `env:"QUERY_TIMEOUT" envDefault:"5s"`
	EnsureIndexes  bool          `env:"ENSURE_INDEXES" envDefault:"true"`
}

// CORS contains cross-origin response header parameters.
type CORS struct {
	AllowOrigins []string `env:"ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
	AllowHeaders []string `env:"ALLOW_HEADERS" envDefault:"Origin,X-Requested-With,Content-Type,Accept" envSeparator:","`
}

// AllowAll reports whether any origin is accepted.
func (c CORS) AllowAll() bool {
	for _, o := range c.AllowOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
