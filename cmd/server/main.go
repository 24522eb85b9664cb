package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/csg33k/blueprint-intake/internal/adapters/pdf"
	"github.com/csg33k/blueprint-intake/internal/adapters/smtp"
	"github.com/csg33k/blueprint-intake/internal/config"
	"github.com/csg33k/blueprint-intake/internal/handlers"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.SMTP.Host == "" {
		slog.Warn("SMTP_HOST is not set; submissions will fail until it is configured")
	}

	renderer := pdf.New(pdf.WithLogo(cfg.LogoPath))
	h := handlers.New(cfg, renderer, smtp.Factory, slog.Default())

	slog.Info("server running", "addr", "http://localhost:"+cfg.Port, "static", cfg.StaticDir, "copy_to_user", bool(cfg.Mail.CopyToUser))
	if err := http.ListenAndServe(":"+cfg.Port, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
