package main

import (
	"fmt"
	"os"

	"zone-service/internal/auth"
	"zone-service/internal/config"
	"zone-service/internal/db"
	httphandler "zone-service/internal/http"
	"zone-service/internal/http/middleware"
	"zone-service/internal/logger"
	"zone-service/internal/repository"
	"zone-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	siteRepo := repository.NewSiteRepository(database)
	deviceRepo := repository.NewDeviceRepository(database)
	zoneRepo := repository.NewZoneRepository(database)
	ruleRepo := repository.NewRuleRepository(database)

	siteService := service.NewSiteService(siteRepo)
	deviceService := service.NewDeviceService(deviceRepo, siteRepo)
	zoneService := service.NewZoneService(zoneRepo, deviceRepo, siteRepo)
	ruleService := service.NewRuleService(ruleRepo, zoneRepo)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(siteService, deviceService, zoneService, ruleService, appLogger)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting zone service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
