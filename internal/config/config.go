package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	Seed          int64  `env:"SIM_SEED"` // 0 draws a fresh seed per session
	GMUser        string `env:"GM_USER"`
	GMPass        string `env:"GM_PASS"`
	SingleSession bool   `env:"SINGLE_SESSION" envDefault:"true"`
}

// GMEnabled reports whether the basic-auth control routes are mounted.
func (c Config) GMEnabled() bool {
	return c.GMUser != "" && c.GMPass != ""
}

// FromEnv loads an optional .env file and then parses the environment.
// Variables already set win over .env values.
func FromEnv() (Config, error) {
	return FromEnvFile(".env")
}

func FromEnvFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}
