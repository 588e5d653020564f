package main

import (
	"log"
	"time"

	"univar/adapters/chart"
	"univar/adapters/tabular"
	"univar/app"
	"univar/internal"
	"univar/internal/api"
	"univar/internal/config"
	"univar/internal/session"
	"univar/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewLogger(appConfig.Logging.Level)
	gin.SetMode(appConfig.Server.GinMode)

	store := session.NewStore(appConfig.Session.TTL)
	analysis := app.NewAnalysisService(logger)

	server, err := ui.NewServer(ui.Assets, ui.Dependencies{
		Config:   appConfig,
		Reader:   tabular.NewReader(logger),
		Store:    store,
		Analysis: analysis,
		Charts:   chart.NewRenderer(appConfig.Chart.Width, appConfig.Chart.Height, logger),
		Logger:   logger,
	})
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	server.Mount(api.Prefix, api.NewHandler(store, analysis, appConfig.Analysis, logger).Routes())
	logger.Info("JSON API mounted at %s/v1", api.Prefix)

	logger.Info("Uploads limited to %dMB, datasets kept for %s idle", appConfig.Upload.MaxMB, appConfig.Session.TTL.Round(time.Minute))
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
