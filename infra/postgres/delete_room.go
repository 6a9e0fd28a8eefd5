package postgres

import (
	"context"
	"fmt"
	"lobby-service/domain"

	"go.uber.org/zap"
)

func (r *Repository) DeleteRoom(ctx context.Context, roomID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, roomID)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: room not found", domain.ErrNotFound)
	}

	zap.L().Info("Room deleted", zap.String("room_id", roomID))
	return nil
}
