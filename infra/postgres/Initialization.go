package postgres

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

const (
	createRoomsTable = `
		CREATE TABLE IF NOT EXISTS rooms (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			room_name VARCHAR(100) NOT NULL,
			max_players INT NOT NULL,
			current_players INT DEFAULT 1,
			status VARCHAR(20) NOT NULL DEFAULT 'waiting', -- 'waiting', 'full', 'in_progress', 'closed'
			is_private BOOLEAN DEFAULT FALSE,
			host_id UUID NOT NULL,
			host_name VARCHAR(100) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			started_at TIMESTAMP WITH TIME ZONE
		);`

	createIndexes = `
		CREATE INDEX IF NOT EXISTS idx_rooms_status ON rooms(status);
		CREATE INDEX IF NOT EXISTS idx_rooms_is_private ON rooms(is_private);
		CREATE INDEX IF NOT EXISTS idx_rooms_created_at ON rooms(created_at);`
)

// initDB creates the rooms table and its indexes.
func initDB(db *sql.DB) error {
	if _, err := db.Exec(createRoomsTable); err != nil {
		return fmt.Errorf("failed to create 'rooms' table: %w", err)
	}

	if _, err := db.Exec(createIndexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	zap.L().Info("Database initialized successfully")
	return nil
}
