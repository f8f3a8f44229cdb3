package adaptor

import (
	"cinemax-api/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Movie   *MovieHandler
	Session *SessionHandler
	Room    *RoomHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:   NewMovieHandler(service.Movie, log),
		Session: NewSessionHandler(service.Session, log),
		Room:    NewRoomHandler(service.Room, log),
	}
}
