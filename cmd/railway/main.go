package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"go-railway-admin/config"
	"go-railway-admin/internal/audit"
	"go-railway-admin/internal/database"
	"go-railway-admin/internal/repository"
	"go-railway-admin/internal/service"
	"go-railway-admin/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	ctx := context.Background()

	// The console works without a database: repositories run against a nil
	// pool and every persistence call becomes a logged no-op.
	connected := true
	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		logger.L.Warn("database unavailable, continuing without persistence", zap.Error(err))
		pool = nil
		connected = false
	} else {
		defer pool.Close()
		if err := repository.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("Failed to create schema: %v", err)
		}
	}

	trail := audit.Open(cfg.Audit.FilePath)
	defer trail.Close()

	stationRepo := repository.NewStationRepository(pool)
	trainRepo := repository.NewTrainRepository(pool)
	routeRepo := repository.NewRouteRepository(pool, stationRepo)
	userRepo := repository.NewUserRepository(pool)

	users := service.NewUserService(ctx, userRepo)
	stations := service.NewStationService(ctx, stationRepo, trainRepo, routeRepo)
	tickets := service.NewTicketService()

	menu := NewMenu(
		ctx,
		newPrompter(bufio.NewReader(os.Stdin)),
		trail,
		users,
		stations,
		tickets,
		stationRepo,
		trainRepo,
		routeRepo,
		userRepo,
		connected,
	)
	menu.SeedSampleData()
	menu.Run()
}
