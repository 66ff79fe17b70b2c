package main

import (
	"context"
	"log"

	"go-railway-admin/config"
	"go-railway-admin/internal/audit"
	"go-railway-admin/internal/database"
	"go-railway-admin/internal/handler"
	"go-railway-admin/internal/repository"
	"go-railway-admin/internal/service"
	"go-railway-admin/internal/session"
	"go-railway-admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	ctx := context.Background()

	// The database is optional: on failure the repositories run against a
	// nil pool and every persistence call becomes a logged no-op.
	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		logger.L.Warn("database unavailable, continuing without persistence", zap.Error(err))
		pool = nil
	} else {
		defer pool.Close()
		if err := repository.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("Failed to create schema: %v", err)
		}
	}

	// Redis is not optional, it backs every API session.
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	trail := audit.Open(cfg.Audit.FilePath)
	defer trail.Close()

	stationRepo := repository.NewStationRepository(pool)
	trainRepo := repository.NewTrainRepository(pool)
	routeRepo := repository.NewRouteRepository(pool, stationRepo)
	userRepo := repository.NewUserRepository(pool)

	users := service.NewUserService(ctx, userRepo)
	stations := service.NewStationService(ctx, stationRepo, trainRepo, routeRepo)
	tickets := service.NewTicketService()

	store := session.NewRedisStore(rdb, handler.SessionTTL)

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewAuthHandler(users, store, trail).RegisterRoutes(router)
	handler.NewStationHandler(stations, store, trail).RegisterRoutes(router)
	handler.NewTrainHandler(stations, store, trail).RegisterRoutes(router)
	handler.NewRouteHandler(stations, store, trail).RegisterRoutes(router)
	handler.NewScheduleHandler(stations, store, trail).RegisterRoutes(router)
	handler.NewTicketHandler(tickets, stations, users, store, trail).RegisterRoutes(router)
	handler.NewReservationHandler(stations, users, store, trail).RegisterRoutes(router)
	handler.NewAdminHandler(users, stationRepo, trainRepo, routeRepo, userRepo, store, trail).RegisterRoutes(router)

	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
