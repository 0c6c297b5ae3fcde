package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/openslot/slotbook/internal/server"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if err := godotenv.Load(".env"); err != nil {
		logger.Info().Msg("no .env file, using environment")
	}

	if err := server.Start(&logger); err != nil {
		logger.Fatal().Err(err).Msg("server failed to start")
	}
}
