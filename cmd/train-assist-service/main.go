package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"train-assist-service/internal/config"
	"train-assist-service/internal/db"
	httphandler "train-assist-service/internal/http"
	"train-assist-service/internal/logger"
	"train-assist-service/internal/repository"
	"train-assist-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg.DB, cfg.Environment, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.HealthCheck(ctx, database); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("database ping failed")
	}
	cancel()

	if err := db.Seed(database, log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	trainRepo := repository.NewTrainRepository(database)
	coachRepo := repository.NewCoachRepository(database)
	crowdRepo := repository.NewCrowdReportRepository(database)
	sosRepo := repository.NewSOSReportRepository(database)

	trainService := service.NewTrainService(trainRepo, coachRepo, crowdRepo)
	reportService := service.NewReportService(trainRepo, coachRepo, crowdRepo, sosRepo)

	handler := httphandler.NewHandler(trainService, reportService, log)
	router := httphandler.NewRouter(handler, log, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting train assist service")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
