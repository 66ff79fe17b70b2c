package repository

import (
	"context"

	"go-railway-admin/internal/model"
	"go-railway-admin/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// TrainRepository persists trains keyed by train number.
type TrainRepository interface {
	Save(ctx context.Context, train *model.Train)
	FindAll(ctx context.Context) []*model.Train
	FindByNumber(ctx context.Context, number string) *model.Train
	Update(ctx context.Context, train *model.Train) bool
	Delete(ctx context.Context, number string) bool
	ClearAll(ctx context.Context)
}

type TrainRepositoryImpl struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewTrainRepository(pool *pgxpool.Pool) TrainRepository {
	return &TrainRepositoryImpl{
		pool: pool,
		log:  logger.WithComponent("repository"),
	}
}

// Save attempts a straight insert; a duplicate train number is rejected by
// the primary key and only logged.
func (r *TrainRepositoryImpl) Save(ctx context.Context, train *model.Train) {
	if r.pool == nil {
		return
	}

	query := `INSERT INTO trains (number, type, capacity) VALUES ($1, $2, $3)`
	if _, err := r.pool.Exec(ctx, query, train.Number, train.Type, train.Capacity); err != nil {
		r.log.Error("save train", zap.String("number", train.Number), zap.Error(err))
	}
}

func (r *TrainRepositoryImpl) FindAll(ctx context.Context) []*model.Train {
	trains := make([]*model.Train, 0)
	if r.pool == nil {
		return trains
	}

	rows, err := r.pool.Query(ctx, `SELECT number, type, capacity FROM trains ORDER BY number`)
	if err != nil {
		r.log.Error("find all trains", zap.Error(err))
		return trains
	}
	defer rows.Close()

	for rows.Next() {
		var train model.Train
		if err := rows.Scan(&train.Number, &train.Type, &train.Capacity); err != nil {
			r.log.Error("scan train", zap.Error(err))
			return trains
		}
		trains = append(trains, &train)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("find all trains", zap.Error(err))
	}

	return trains
}

func (r *TrainRepositoryImpl) FindByNumber(ctx context.Context, number string) *model.Train {
	if r.pool == nil {
		return nil
	}

	var train model.Train
	query := `SELECT number, type, capacity FROM trains WHERE number = $1`
	err := r.pool.QueryRow(ctx, query, number).Scan(&train.Number, &train.Type, &train.Capacity)
	if err != nil {
		if err != pgx.ErrNoRows {
			r.log.Error("find train", zap.String("number", number), zap.Error(err))
		}
		return nil
	}

	return &train
}

func (r *TrainRepositoryImpl) Update(ctx context.Context, train *model.Train) bool {
	if r.pool == nil {
		return false
	}

	query := `UPDATE trains SET type = $1, capacity = $2 WHERE number = $3`
	result, err := r.pool.Exec(ctx, query, train.Type, train.Capacity, train.Number)
	if err != nil {
		r.log.Error("update train", zap.String("number", train.Number), zap.Error(err))
		return false
	}
	return result.RowsAffected() > 0
}

func (r *TrainRepositoryImpl) Delete(ctx context.Context, number string) bool {
	if r.pool == nil {
		return false
	}

	result, err := r.pool.Exec(ctx, `DELETE FROM trains WHERE number = $1`, number)
	if err != nil {
		r.log.Error("delete train", zap.String("number", number), zap.Error(err))
		return false
	}
	return result.RowsAffected() > 0
}

func (r *TrainRepositoryImpl) ClearAll(ctx context.Context) {
	if r.pool == nil {
		return
	}

	if _, err := r.pool.Exec(ctx, `DELETE FROM trains`); err != nil {
		r.log.Error("clear trains", zap.Error(err))
	}
}
