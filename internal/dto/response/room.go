package response

import (
	"time"

	"cinemax-api/internal/data/entity"
)

type RoomResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Type      string    `json:"type"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:        room.ID,
		Name:      room.Name,
		Capacity:  room.Capacity,
		Type:      string(room.Type),
		Active:    room.Active,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}

func RoomsToResponse(rooms []*entity.Room) []RoomResponse {
	result := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		result[i] = RoomToResponse(room)
	}
	return result
}
