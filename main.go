package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Rimao416/facture/cmd"
	"github.com/Rimao416/facture/internal/config"
	"github.com/Rimao416/facture/internal/logger"
)

func main() {
	// Load environment variables; a missing .env file is fine.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg := config.Load()
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	log := logger.WithComponent("main")
	log.Info().Msg("Starting facture")

	cmd.Execute()

	log.Info().Msg("facture shutdown")
	os.Exit(0)
}
