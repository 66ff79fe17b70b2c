package repository

import (
	"context"

	"go-railway-admin/internal/model"
	"go-railway-admin/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// RouteRepository persists routes keyed by the (origin, destination) name
// pair. Rows reference the stations table, so Save lazily inserts missing
// stations first. The two inserts are sequential, not a transaction.
type RouteRepository interface {
	Save(ctx context.Context, route *model.Route)
	FindAll(ctx context.Context) []*model.Route
	FindByStations(ctx context.Context, originName, destName string) *model.Route
	UpdatePrice(ctx context.Context, originName, destName string, newPrice float64) bool
	Delete(ctx context.Context, originName, destName string) bool
	ClearAll(ctx context.Context)
}

type RouteRepositoryImpl struct {
	pool     *pgxpool.Pool
	stations StationRepository
	log      *zap.Logger
}

func NewRouteRepository(pool *pgxpool.Pool, stations StationRepository) RouteRepository {
	return &RouteRepositoryImpl{
		pool:     pool,
		stations: stations,
		log:      logger.WithComponent("repository"),
	}
}

// Save inserts the route, creating the origin and destination station rows
// first if they are missing. Station insert failures (a concurrent insert of
// the same name, for instance) are swallowed; the route insert then either
// succeeds against the existing row or fails its FK check and is logged.
func (r *RouteRepositoryImpl) Save(ctx context.Context, route *model.Route) {
	if r.pool == nil {
		return
	}

	if existing := r.stations.FindByName(ctx, route.Origin.Name); existing == nil {
		r.stations.Save(ctx, route.Origin)
	}
	if existing := r.stations.FindByName(ctx, route.Destination.Name); existing == nil {
		r.stations.Save(ctx, route.Destination)
	}

	query := `INSERT INTO routes (origin_station, destination_station, base_price) VALUES ($1, $2, $3)`
	if _, err := r.pool.Exec(ctx, query, route.Origin.Name, route.Destination.Name, route.BasePrice); err != nil {
		r.log.Error("save route",
			zap.String("origin", route.Origin.Name),
			zap.String("destination", route.Destination.Name),
			zap.Error(err))
	}
}

func (r *RouteRepositoryImpl) FindAll(ctx context.Context) []*model.Route {
	routes := make([]*model.Route, 0)
	if r.pool == nil {
		return routes
	}

	query := `
		SELECT origin_station, destination_station, base_price
		FROM routes
		ORDER BY origin_station, destination_station
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("find all routes", zap.Error(err))
		return routes
	}
	defer rows.Close()

	type routeRow struct {
		origin, destination string
		basePrice           float64
	}
	rowData := make([]routeRow, 0)
	for rows.Next() {
		var row routeRow
		if err := rows.Scan(&row.origin, &row.destination, &row.basePrice); err != nil {
			r.log.Error("scan route", zap.Error(err))
			return routes
		}
		rowData = append(rowData, row)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("find all routes", zap.Error(err))
		return routes
	}
	rows.Close()

	// Resolve station rows after the route cursor is drained; the pool is
	// shared and the station lookups issue their own queries.
	for _, row := range rowData {
		origin := r.stations.FindByName(ctx, row.origin)
		destination := r.stations.FindByName(ctx, row.destination)
		if origin != nil && destination != nil {
			routes = append(routes, model.NewRoute(origin, destination, row.basePrice))
		}
	}

	return routes
}

func (r *RouteRepositoryImpl) FindByStations(ctx context.Context, originName, destName string) *model.Route {
	if r.pool == nil {
		return nil
	}

	var basePrice float64
	query := `SELECT base_price FROM routes WHERE origin_station = $1 AND destination_station = $2`
	err := r.pool.QueryRow(ctx, query, originName, destName).Scan(&basePrice)
	if err != nil {
		if err != pgx.ErrNoRows {
			r.log.Error("find route",
				zap.String("origin", originName),
				zap.String("destination", destName),
				zap.Error(err))
		}
		return nil
	}

	origin := r.stations.FindByName(ctx, originName)
	destination := r.stations.FindByName(ctx, destName)
	if origin == nil || destination == nil {
		return nil
	}

	return model.NewRoute(origin, destination, basePrice)
}

func (r *RouteRepositoryImpl) UpdatePrice(ctx context.Context, originName, destName string, newPrice float64) bool {
	if r.pool == nil {
		return false
	}

	query := `UPDATE routes SET base_price = $1 WHERE origin_station = $2 AND destination_station = $3`
	result, err := r.pool.Exec(ctx, query, newPrice, originName, destName)
	if err != nil {
		r.log.Error("update route price",
			zap.String("origin", originName),
			zap.String("destination", destName),
			zap.Error(err))
		return false
	}
	return result.RowsAffected() > 0
}

func (r *RouteRepositoryImpl) Delete(ctx context.Context, originName, destName string) bool {
	if r.pool == nil {
		return false
	}

	query := `DELETE FROM routes WHERE origin_station = $1 AND destination_station = $2`
	result, err := r.pool.Exec(ctx, query, originName, destName)
	if err != nil {
		r.log.Error("delete route",
			zap.String("origin", originName),
			zap.String("destination", destName),
			zap.Error(err))
		return false
	}
	return result.RowsAffected() > 0
}

func (r *RouteRepositoryImpl) ClearAll(ctx context.Context) {
	if r.pool == nil {
		return
	}

	if _, err := r.pool.Exec(ctx, `DELETE FROM routes`); err != nil {
		r.log.Error("clear routes", zap.Error(err))
	}
}
