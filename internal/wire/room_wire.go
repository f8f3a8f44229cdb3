package wire

import (
	"cinemax-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoom(r chi.Router, roomHandler *adaptor.RoomHandler) {
	r.Route("/api/rooms", func(r chi.Router) {
		r.Get("/", roomHandler.GetRooms)
		r.Post("/", roomHandler.CreateRoom)
		r.Get("/{id}", roomHandler.GetRoomByID)
	})
}
