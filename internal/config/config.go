// Package config loads settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Server configures cmd/server and the maintenance commands
type Server struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	DBPath         string   `env:"DB_PATH" envDefault:"./gamevault.db"`
	StaticDir      string   `env:"STATIC_DIR" envDefault:"./public"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:*"`
}

// Client configures cmd/catalog
type Client struct {
	BaseURL string        `env:"CATALOG_URL" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"CATALOG_TIMEOUT" envDefault:"10s"`
	Locale  string        `env:"CATALOG_LOCALE" envDefault:"es"`
}

// LocaleTag parses Locale, falling back to Spanish
func (c Client) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Spanish
	}
	return tag
}

// LoadServer reads the server configuration
func LoadServer() (Server, error) {
	var cfg Server
	return cfg, load(&cfg)
}

// LoadClient reads the client configuration
func LoadClient() (Client, error) {
	var cfg Client
	return cfg, load(&cfg)
}

func load(target any) error {
	_ = godotenv.Load() // .env is optional
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
