package main

import (
	"fmt"

	"github.com/MKhiriev/go-login-bridge/internal/adapter"
	"github.com/MKhiriev/go-login-bridge/internal/client"
	"github.com/MKhiriev/go-login-bridge/internal/config"
	"github.com/MKhiriev/go-login-bridge/internal/logger"
	"github.com/MKhiriev/go-login-bridge/internal/service"
	"github.com/MKhiriev/go-login-bridge/internal/store"
	"github.com/MKhiriev/go-login-bridge/internal/tui"
	"github.com/MKhiriev/go-login-bridge/internal/workers"
	"github.com/MKhiriev/go-login-bridge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-login-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	loginService, err := adapter.NewHTTPLoginService(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create login service")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, cfg.Login, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	pool := workers.NewPool(cfg.Workers.IOPoolSize, cfg.Workers.QueueSize, log)

	services, err := service.NewClientServices(localStorage, loginService, pool, cfg.Login, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if cfg.App.Version != "" {
		buildInfo = models.NewAppBuildInfo(cfg.App.Version, buildDate, buildCommit)
	}

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, pool, localStorage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
