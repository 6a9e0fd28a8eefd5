package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"lobby-service/domain"

	"go.uber.org/zap"
)

// CloseRoom marks a room closed. Only the host may do this.
func (r *Repository) CloseRoom(ctx context.Context, roomID, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var hostID string
	err = tx.QueryRowContext(ctx,
		`SELECT host_id FROM rooms WHERE id = $1 FOR UPDATE`,
		roomID,
	).Scan(&hostID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: room not found", domain.ErrNotFound)
		}
		return fmt.Errorf("failed to query room: %w", err)
	}

	if hostID != userID {
		return fmt.Errorf("%w: only the host can close the room", domain.ErrForbidden)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE rooms SET status = $1 WHERE id = $2`,
		domain.RoomStatusClosed, roomID,
	)
	if err != nil {
		return fmt.Errorf("failed to close room: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	zap.L().Info("Room closed", zap.String("room_id", roomID))
	return nil
}
