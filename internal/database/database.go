package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"chocolate-catalog/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Service wraps the database handle shared by the repositories.
type Service interface {
	// DB returns the underlying connection pool.
	DB() *sql.DB

	// Health reports the state of the pool. It never fails the caller; an
	// unreachable database is reported in the returned map.
	Health() map[string]string

	// Close terminates the pool.
	Close() error
}

type service struct {
	db *sql.DB
}

// New opens a pooled database handle for the given configuration. The pool
// is lazy: an unreachable database surfaces on first use, not here.
func New(cfg config.DatabaseConfig) (Service, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.Schema,
	)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &service{db: db}, nil
}

func (s *service) DB() *sql.DB {
	return s.db
}

func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = err.Error()
		return stats
	}

	dbStats := s.db.Stats()
	stats["status"] = "up"
	stats["open_connections"] = fmt.Sprintf("%d", dbStats.OpenConnections)
	stats["in_use"] = fmt.Sprintf("%d", dbStats.InUse)
	stats["idle"] = fmt.Sprintf("%d", dbStats.Idle)

	return stats
}

func (s *service) Close() error {
	return s.db.Close()
}
