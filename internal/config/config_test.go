package config_test

import (
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/blueprint-intake/internal/config"
)

func parse(t *testing.T, vars map[string]string) config.Config {
	t.Helper()
	cfg, err := config.Parse(env.Options{Environment: vars})
	require.NoError(t, err)
	return cfg
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg := parse(t, map[string]string{})

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ".", cfg.StaticDir)
	assert.Equal(t, "assets/arete_logo_lockup.png.png", cfg.LogoPath)
	assert.Equal(t, 465, cfg.SMTP.Port)
	assert.False(t, bool(cfg.SMTP.Secure))
	assert.Equal(t, "diegodasilva272013@gmail.com", cfg.Mail.To)
	assert.Empty(t, cfg.Mail.From)
	assert.False(t, bool(cfg.Mail.CopyToUser))
}

func TestParse_FromDefaultsToSMTPUser(t *testing.T) {
	t.Parallel()

	cfg := parse(t, map[string]string{"SMTP_USER": "relay@example.com"})
	assert.Equal(t, "relay@example.com", cfg.Mail.From)

	cfg = parse(t, map[string]string{
		"SMTP_USER": "relay@example.com",
		"MAIL_FROM": "noreply@example.com",
	})
	assert.Equal(t, "noreply@example.com", cfg.Mail.From)
}

func TestParse_AllSettings(t *testing.T) {
	t.Parallel()

	cfg := parse(t, map[string]string{
		"PORT":              "8081",
		"SMTP_HOST":         "smtp.example.com",
		"SMTP_PORT":         "587",
		"SMTP_SECURE":       "TRUE",
		"SMTP_USER":         "user",
		"SMTP_PASS":         "secret",
		"MAIL_TO":           "leads@example.com",
		"SEND_COPY_TO_USER": "True",
	})

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, config.SMTP{
		Host:     "smtp.example.com",
		Port:     587,
		Secure:   true,
		Username: "user",
		Password: "secret",
	}, cfg.SMTP)
	assert.Equal(t, "leads@example.com", cfg.Mail.To)
	assert.True(t, bool(cfg.Mail.CopyToUser))
}

func TestParse_InvalidPort(t *testing.T) {
	t.Parallel()

	_, err := config.Parse(env.Options{Environment: map[string]string{"SMTP_PORT": "smtp"}})
	require.Error(t, err)
}

func TestFlag_OnlyLiteralTrue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"tRuE", true},
		{"1", false},
		{"yes", false},
		{"t", false},
		{"", false},
		{" true", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var f config.Flag
			require.NoError(t, f.UnmarshalText([]byte(tt.in)))
			assert.Equal(t, tt.want, bool(f))
		})
	}
}
