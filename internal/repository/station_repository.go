package repository

import (
	"context"

	"go-railway-admin/internal/model"
	"go-railway-admin/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// StationRepository persists stations keyed by name.
//
// Like the other repositories, database failures are logged and swallowed at
// this boundary: lookups report absence, writes report false or nothing.
// With a nil pool (startup connectivity failure) every operation is a no-op.
type StationRepository interface {
	Save(ctx context.Context, station *model.Station)
	FindAll(ctx context.Context) []*model.Station
	FindByName(ctx context.Context, name string) *model.Station
	Update(ctx context.Context, station *model.Station) bool
	Delete(ctx context.Context, name string) bool
	ClearAll(ctx context.Context)
}

type StationRepositoryImpl struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewStationRepository(pool *pgxpool.Pool) StationRepository {
	return &StationRepositoryImpl{
		pool: pool,
		log:  logger.WithComponent("repository"),
	}
}

// Save inserts the station, or updates it if a row with the same name
// already exists.
func (r *StationRepositoryImpl) Save(ctx context.Context, station *model.Station) {
	if r.pool == nil {
		return
	}

	if existing := r.FindByName(ctx, station.Name); existing != nil {
		r.Update(ctx, station)
		return
	}

	query := `INSERT INTO stations (name, platform_count) VALUES ($1, $2)`
	if _, err := r.pool.Exec(ctx, query, station.Name, station.PlatformCount); err != nil {
		r.log.Error("save station", zap.String("name", station.Name), zap.Error(err))
	}
}

func (r *StationRepositoryImpl) FindAll(ctx context.Context) []*model.Station {
	stations := make([]*model.Station, 0)
	if r.pool == nil {
		return stations
	}

	rows, err := r.pool.Query(ctx, `SELECT name, platform_count FROM stations ORDER BY name`)
	if err != nil {
		r.log.Error("find all stations", zap.Error(err))
		return stations
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var platformCount int
		if err := rows.Scan(&name, &platformCount); err != nil {
			r.log.Error("scan station", zap.Error(err))
			return stations
		}
		stations = append(stations, model.NewStation(name, platformCount))
	}

	if err := rows.Err(); err != nil {
		r.log.Error("find all stations", zap.Error(err))
	}

	return stations
}

func (r *StationRepositoryImpl) FindByName(ctx context.Context, name string) *model.Station {
	if r.pool == nil {
		return nil
	}

	var platformCount int
	query := `SELECT platform_count FROM stations WHERE name = $1`
	err := r.pool.QueryRow(ctx, query, name).Scan(&platformCount)
	if err != nil {
		if err != pgx.ErrNoRows {
			r.log.Error("find station", zap.String("name", name), zap.Error(err))
		}
		return nil
	}

	return model.NewStation(name, platformCount)
}

// Update overwrites the full row by name and reports whether a row was
// affected.
func (r *StationRepositoryImpl) Update(ctx context.Context, station *model.Station) bool {
	if r.pool == nil {
		return false
	}

	query := `UPDATE stations SET platform_count = $1 WHERE name = $2`
	result, err := r.pool.Exec(ctx, query, station.PlatformCount, station.Name)
	if err != nil {
		r.log.Error("update station", zap.String("name", station.Name), zap.Error(err))
		return false
	}
	return result.RowsAffected() > 0
}

func (r *StationRepositoryImpl) Delete(ctx context.Context, name string) bool {
	if r.pool == nil {
		return false
	}

	result, err := r.pool.Exec(ctx, `DELETE FROM stations WHERE name = $1`, name)
	if err != nil {
		r.log.Error("delete station", zap.String("name", name), zap.Error(err))
		return false
	}
	return result.RowsAffected() > 0
}

// ClearAll wipes the table. Administrative reset only.
func (r *StationRepositoryImpl) ClearAll(ctx context.Context) {
	if r.pool == nil {
		return
	}

	if _, err := r.pool.Exec(ctx, `DELETE FROM stations`); err != nil {
		r.log.Error("clear stations", zap.Error(err))
	}
}
