package postgres

import (
	"context"
	"fmt"
	"lobby-service/domain"

	"go.uber.org/zap"
)

func (r *Repository) CreateRoom(ctx context.Context, roomName string, maxPlayers int, isPrivate bool, hostID, hostName string) (domain.Room, error) {
	if roomName == "" {
		return domain.Room{}, fmt.Errorf("%w: room name is required", domain.ErrInvalidInput)
	}
	if maxPlayers < 2 || maxPlayers > 12 {
		return domain.Room{}, fmt.Errorf("%w: invalid number of players", domain.ErrInvalidInput)
	}

	query := `
		INSERT INTO rooms (room_name, max_players, current_players, status, is_private, host_id, host_name)
		VALUES ($1, $2, 1, 'waiting', $3, $4, $5)
		RETURNING id, room_name, max_players, current_players, status, is_private, host_id, host_name, created_at
	`
	var room domain.Room
	err := r.db.QueryRowContext(ctx, query, roomName, maxPlayers, isPrivate, hostID, hostName).Scan(
		&room.ID, &room.RoomName, &room.MaxPlayers, &room.CurrentPlayers,
		&room.Status, &room.IsPrivate, &room.HostID, &room.HostName, &room.CreatedAt,
	)
	if err != nil {
		return domain.Room{}, fmt.Errorf("failed to create room: %w", err)
	}

	zap.L().Info("Room created", zap.String("room_id", room.ID), zap.String("room_name", roomName))
	return room, nil
}
