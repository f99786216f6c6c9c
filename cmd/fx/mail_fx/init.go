package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"wellspring/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("SMTP_HOST not set, password reset mails are disabled")
		return services.NoopMailService{}
	}

	port := 587
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			port = n
		}
	}

	cfg := services.SMTPConfig{
		Host:       host,
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "Wellspring",
		UseSSL:     port == 465,
		AppName:    "Wellspring",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
		return services.NoopMailService{}
	}
	return mailService
}
