package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"lobby-service/domain"
	"strings"

	"go.uber.org/zap"
)

// UpdateRoom applies a partial update and returns the resulting record. Nil
// fields are left untouched.
func (r *Repository) UpdateRoom(ctx context.Context, roomID string, upd domain.RoomUpdate) (domain.Room, error) {
	setClauses := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)

	add := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.CurrentPlayers != nil {
		add("current_players", *upd.CurrentPlayers)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.HostID != nil {
		add("host_id", *upd.HostID)
	}
	if upd.HostName != nil {
		add("host_name", *upd.HostName)
	}

	if len(setClauses) == 0 {
		return r.GetRoom(ctx, roomID)
	}

	args = append(args, roomID)
	query := fmt.Sprintf(`
		UPDATE rooms SET %s WHERE id = $%d
		RETURNING id, room_name, max_players, current_players, status, is_private, host_id, host_name, created_at`,
		strings.Join(setClauses, ", "), len(args),
	)

	var room domain.Room
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&room.ID, &room.RoomName, &room.MaxPlayers, &room.CurrentPlayers,
		&room.Status, &room.IsPrivate, &room.HostID, &room.HostName, &room.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Room{}, fmt.Errorf("%w: room not found", domain.ErrNotFound)
		}
		return domain.Room{}, fmt.Errorf("failed to update room: %w", err)
	}

	zap.L().Debug("Room updated", zap.String("room_id", roomID))
	return room, nil
}
