// Package config reads the service settings from the environment once at
// startup. The resulting Config is an immutable value passed to the handlers.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Flag is a boolean that is set only by the literal "true", compared
// case-insensitively. Any other value, including "1" or "yes", is false.
type Flag bool

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Flag) UnmarshalText(text []byte) error {
	*f = Flag(strings.EqualFold(string(text), "true"))
	return nil
}

// SMTP holds the relay connection settings.
type SMTP struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"465"`
	Secure   Flag   `env:"SMTP_SECURE"` // implicit TLS; STARTTLS otherwise
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
}

// Mail holds addressing for outgoing summaries.
type Mail struct {
	To         string `env:"MAIL_TO" envDefault:"diegodasilva272013@gmail.com"`
	From       string `env:"MAIL_FROM"` // defaults to SMTP.Username
	CopyToUser Flag   `env:"SEND_COPY_TO_USER"`
}

type Config struct {
	Port      string `env:"PORT" envDefault:"3000"`
	StaticDir string `env:"STATIC_DIR" envDefault:"."`
	LogoPath  string `env:"LOGO_PATH" envDefault:"assets/arete_logo_lockup.png.png"`
	SMTP      SMTP
	Mail      Mail
}

// Load parses the process environment.
func Load() (Config, error) {
	return Parse(env.Options{})
}

// Parse parses the environment described by opts; tests pass
// opts.Environment to avoid touching the process environment.
func Parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Mail.From == "" {
		cfg.Mail.From = cfg.SMTP.Username
	}
	return cfg, nil
}
