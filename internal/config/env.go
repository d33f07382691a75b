package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings taken from the environment. They replace the built-in
// defaults of the matching CLI flags; explicit flags still win.
type Env struct {
	DataDir    string `env:"NCSCATTER_DATA" envDefault:".ncscatter"`
	ConfigFile string `env:"NCSCATTER_CONFIG"`
	LogLevel   string `env:"NCSCATTER_LOG_LEVEL" envDefault:"info"`
	Inelas     string `env:"NCSCATTER_INELAS" envDefault:"auto"`
	Workers    int    `env:"NCSCATTER_WORKERS" envDefault:"4"`
}

func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
