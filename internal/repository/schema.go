package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schedules, tickets and reservations live in memory only and have no
// tables.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		username VARCHAR(50) PRIMARY KEY,
		password VARCHAR(100) NOT NULL,
		user_type VARCHAR(20) NOT NULL,
		full_name VARCHAR(100),
		email VARCHAR(100)
	)`,
	`CREATE TABLE IF NOT EXISTS stations (
		name VARCHAR(100) PRIMARY KEY,
		platform_count INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS trains (
		number VARCHAR(20) PRIMARY KEY,
		type VARCHAR(50) NOT NULL,
		capacity INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS routes (
		id SERIAL PRIMARY KEY,
		origin_station VARCHAR(100) NOT NULL,
		destination_station VARCHAR(100) NOT NULL,
		base_price DECIMAL(10, 2) NOT NULL,
		CONSTRAINT fk_origin FOREIGN KEY (origin_station) REFERENCES stations(name),
		CONSTRAINT fk_destination FOREIGN KEY (destination_station) REFERENCES stations(name),
		CONSTRAINT unique_route UNIQUE (origin_station, destination_station)
	)`,
}

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
