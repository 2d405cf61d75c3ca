package db

import "context"

// DB is a generic database port that allows swapping
// GORM, sqlc, pgx, bun, ent or even in-memory DB.
type DB interface {
	Conn() any

	// Ping reports whether the underlying store is reachable.
	Ping(ctx context.Context) error
}
