package logger_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"wellspring/pkg/logger"
)

var Module = fx.Provide(provideLogger)

func provideLogger() *logger.Logger {
	l, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return l
}
