package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"lobby-service/domain"

	"go.uber.org/zap"
)

// StartGame transitions a waiting room to in_progress. Only the host may do
// this.
func (r *Repository) StartGame(ctx context.Context, roomID, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var hostID, status string
	err = tx.QueryRowContext(ctx,
		`SELECT host_id, status FROM rooms WHERE id = $1 FOR UPDATE`,
		roomID,
	).Scan(&hostID, &status)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: room not found", domain.ErrNotFound)
		}
		return fmt.Errorf("failed to query room: %w", err)
	}

	if hostID != userID {
		return fmt.Errorf("%w: only the host can start the game", domain.ErrForbidden)
	}
	if status != domain.RoomStatusWaiting && status != domain.RoomStatusFull {
		return fmt.Errorf("%w: room is not waiting to start", domain.ErrConflict)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE rooms SET status = $1, started_at = CURRENT_TIMESTAMP WHERE id = $2`,
		domain.RoomStatusInProgress, roomID,
	)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	zap.L().Info("Game started", zap.String("room_id", roomID))
	return nil
}
