package main

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/JusticeOpara/real-estate-hub/config"
	"github.com/JusticeOpara/real-estate-hub/logger"
	"github.com/JusticeOpara/real-estate-hub/metrics"
	"github.com/JusticeOpara/real-estate-hub/routes"
	"github.com/JusticeOpara/real-estate-hub/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init("real-estate-hub", cfg.IsDevelopment())

	if err := config.ConnectDB(cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	if err := config.EnsureIndexes(cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to create indexes")
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(metrics.Middleware())

	routes.RegisterRoutes(e, cfg)

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
