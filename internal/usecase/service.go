package usecase

import (
	"cinemax-api/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie   MovieService
	Session SessionService
	Room    RoomService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie:   NewMovieService(repo.Movie, log),
		Session: NewSessionService(repo, log),
		Room:    NewRoomService(repo.Room, log),
	}
}
