package repository

import (
	"context"
	"errors"

	"cinemax-api/internal/data/entity"
	"cinemax-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id int64) (*entity.Room, error)
	FindAll(ctx context.Context) ([]*entity.Room, error)
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (name, capacity, type)
		VALUES ($1, $2, $3)
		RETURNING id, active, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, room.Name, room.Capacity, room.Type).
		Scan(&room.ID, &room.Active, &room.CreatedAt, &room.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("name", room.Name),
		)
		return wrap(err, "create room %s", room.Name)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id int64) (*entity.Room, error) {
	query := `
		SELECT id, name, capacity, type, active, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.Type,
		&room.Active,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.Int64("room_id", id),
		)
		return nil, wrap(err, "find room by ID %d", id)
	}

	return &room, nil
}

// FindAll lists active rooms by name.
func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `
		SELECT id, name, capacity, type, active, created_at, updated_at
		FROM rooms
		WHERE active = TRUE
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find rooms", zap.Error(err))
		return nil, wrap(err, "find rooms")
	}
	defer rows.Close()

	rooms := []*entity.Room{}
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Capacity,
			&room.Type,
			&room.Active,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, wrap(err, "scan room row")
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, wrap(err, "iterate room rows")
	}

	return rooms, nil
}
