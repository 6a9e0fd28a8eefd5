package postgres

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository struct {
	db *sql.DB
}

// NewRepository opens the connection pool, verifies it and ensures the schema
// exists.
func NewRepository(connString string) (*Repository, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := initDB(db); err != nil {
		return nil, err
	}

	zap.L().Info("Connected to PostgreSQL successfully")
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}
