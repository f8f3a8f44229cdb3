package repository

import (
	"cinemax-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie   MovieRepository
	Room    RoomRepository
	Session SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:   NewMovieRepository(db, log),
		Room:    NewRoomRepository(db, log),
		Session: NewSessionRepository(db, log),
	}
}
