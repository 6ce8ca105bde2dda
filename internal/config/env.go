package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerEnv holds SSH server settings read from the environment.
// Command-line flags override these values.
type ServerEnv struct {
	Addr        string        `env:"WATERSORT_SSH_ADDR"     envDefault:":23234"`
	HostKey     string        `env:"WATERSORT_HOST_KEY"`
	DB          string        `env:"WATERSORT_DB"`
	IdleTimeout time.Duration `env:"WATERSORT_IDLE_TIMEOUT" envDefault:"30m"`
}

// LoadServerEnv parses ServerEnv from the process environment.
func LoadServerEnv() (ServerEnv, error) {
	var cfg ServerEnv
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}
