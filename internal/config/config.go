// Package config holds env-driven configuration for the server and the client.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server configures cmd/server.
type Server struct {
	Port            int           `env:"FLAVORSHOP_PORT" envDefault:"5000"`
	DBPath          string        `env:"FLAVORSHOP_DB_PATH" envDefault:"./data/flavors.db"`
	CORSOrigin      string        `env:"FLAVORSHOP_CORS_ORIGIN" envDefault:"*"`
	ShutdownTimeout time.Duration `env:"FLAVORSHOP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// StaticDir, when set, is served at / for a browser front end.
	StaticDir string `env:"FLAVORSHOP_STATIC_DIR"`

	// AMQPURL enables event publishing when set.
	AMQPURL   string `env:"FLAVORSHOP_AMQP_URL"`
	AMQPQueue string `env:"FLAVORSHOP_AMQP_QUEUE" envDefault:"flavorshop.events"`

	// OTelEndpoint enables tracing when set, e.g. http://localhost:4318.
	OTelEndpoint string `env:"FLAVORSHOP_OTEL_ENDPOINT"`
}

// Client configures cmd/flavorctl.
type Client struct {
	ServerURL  string        `env:"FLAVORSHOP_URL" envDefault:"http://localhost:5000"`
	Timeout    time.Duration `env:"FLAVORSHOP_CLIENT_TIMEOUT" envDefault:"10s"`
	MessageTTL time.Duration `env:"FLAVORSHOP_MESSAGE_TTL" envDefault:"3s"`
}

// Parse loads configuration from environment variables into target.
func Parse(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServer returns the server configuration from the environment.
func LoadServer() (Server, error) {
	var cfg Server
	if err := Parse(&cfg); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// LoadClient returns the client configuration from the environment.
func LoadClient() (Client, error) {
	var cfg Client
	if err := Parse(&cfg); err != nil {
		return Client{}, err
	}
	return cfg, nil
}
