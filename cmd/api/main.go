package main

import (
	"os"

	"github.com/schoolsafe/backend/internal/pkg/logger"
	"github.com/schoolsafe/backend/internal/server"
)

// @title School Safety Program API
// @version 1.0
// @description Administrative backend for the school safety visit program

// @contact.name API Support

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
