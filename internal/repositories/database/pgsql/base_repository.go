package pgsql

import "github.com/jackc/pgx/v5/pgxpool"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}
