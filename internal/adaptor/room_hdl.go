package adaptor

import (
	"net/http"

	"cinemax-api/internal/dto/request"
	"cinemax-api/internal/usecase"
	"cinemax-api/pkg/utils"

	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

func (h *RoomHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetRooms(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get rooms")
		return
	}

	utils.ResponseList(w, "Rooms retrieved successfully", rooms, len(rooms))
}

func (h *RoomHandler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Room")
	if !ok {
		return
	}

	room, err := h.service.GetRoomByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get room by ID")
		return
	}

	utils.ResponseSuccess(w, "Room retrieved successfully", room)
}

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.RoomRequest
	if !decodeBody(w, r, h.log, &req) {
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "Room created successfully", room)
}
