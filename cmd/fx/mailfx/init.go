package mailfx

import (
	"os"
	"strconv"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Viveknaik1/CFMS/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(logger *zap.Logger) services.MailService {
	port := 587 // STARTTLS; use 465 with UseSSL=true for SMTPS
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}

	cfg := services.SMTPConfig{
		Host:       envOr("SMTP_HOST", "smtp.gmail.com"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"), // empty keeps dev mode: log only
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       envOr("SMTP_FROM", "no-reply@cfms.local"),
		FromName:   "CFMS",
		UseSSL:     os.Getenv("SMTP_USE_SSL") == "true",
		RequireTLS: true,

		AppName: "CFMS",
	}

	return services.NewSMTPMailService(cfg, logger)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
