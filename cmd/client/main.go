package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/client"
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	startupLog := logger.NewLogger("todo-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		startupLog.Fatal().Err(err).Msg("error getting configs")
	}

	if err = run(cfg, buildInfo); err != nil {
		startupLog.Fatal().Err(err).Msg("client run error")
	}
}

// run owns the client log file for the lifetime of the app.
func run(cfg *config.ClientConfig, buildInfo models.AppBuildInfo) error {
	log, closeLog := logger.NewClientLogger("todo-client", cfg.Log.File, cfg.Log.Level)
	defer closeLog()

	log.Info().
		Str("address", cfg.Adapter.HTTPAddress).
		Str("base_path", cfg.Adapter.BasePath).
		Dur("request_timeout", cfg.Adapter.RequestTimeout).
		Msg("configuration loaded")

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(context.Background())
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
