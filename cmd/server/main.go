package main

import (
	"fmt"

	_ "github.com/Zathsiri/Api/docs"
	"github.com/Zathsiri/Api/internal/config"
	"github.com/Zathsiri/Api/internal/handler"
	"github.com/Zathsiri/Api/internal/logger"
	"github.com/Zathsiri/Api/internal/server"
	"github.com/Zathsiri/Api/internal/service"
	"github.com/Zathsiri/Api/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// @title						User Directory API
// @version					1.0
// @description				Minimal CRUD HTTP service for managing user records backed by an in-memory store.
// @BasePath					/
//
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the static token.
func main() {
	printBuildInfo()

	log := logger.NewLogger("user-directory-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages()
	services := service.NewServices(storages, log)
	handlers := handler.NewHandlers(services, cfg.App, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
