package service

import (
	"context"
	"testing"

	"go-railway-admin/internal/repository"
)

// Services under test run against nil-pool repositories, which makes every
// persistence call a no-op and keeps all state in memory.
func setupServices(t *testing.T) (UserService, StationService, TicketService) {
	t.Helper()
	ctx := context.Background()

	stationRepo := repository.NewStationRepository(nil)
	trainRepo := repository.NewTrainRepository(nil)
	routeRepo := repository.NewRouteRepository(nil, stationRepo)
	userRepo := repository.NewUserRepository(nil)

	users := NewUserService(ctx, userRepo)
	stations := NewStationService(ctx, stationRepo, trainRepo, routeRepo)
	tickets := NewTicketService()
	return users, stations, tickets
}
