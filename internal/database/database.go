package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PoolLimits bounds the connection pool. Zero values fall back to defaults
// sized for a single-instance deployment.
type PoolLimits struct {
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
}

func (p PoolLimits) withDefaults() PoolLimits {
	if p.MaxOpen == 0 {
		p.MaxOpen = 25
	}

	if p.MaxIdle == 0 {
		p.MaxIdle = 5
	}

	if p.MaxLifetime == 0 {
		p.MaxLifetime = 5 * time.Minute
	}

	return p
}

// New opens a Postgres pool through the pgx stdlib driver and verifies the
// connection before handing it out.
func New(connStr string, limits PoolLimits) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	limits = limits.withDefaults()

	db.SetMaxOpenConns(limits.MaxOpen)
	db.SetMaxIdleConns(limits.MaxIdle)
	db.SetConnMaxLifetime(limits.MaxLifetime)

	return db, nil
}
