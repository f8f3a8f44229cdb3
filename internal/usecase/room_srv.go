package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cinemax-api/internal/data/entity"
	"cinemax-api/internal/data/repository"
	"cinemax-api/internal/dto/request"
	"cinemax-api/internal/dto/response"

	"go.uber.org/zap"
)

type RoomService interface {
	GetRooms(ctx context.Context) ([]response.RoomResponse, error)
	GetRoomByID(ctx context.Context, id int64) (*response.RoomResponse, error)
	CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error)
}

type roomService struct {
	rooms repository.RoomRepository
	log   *zap.Logger
}

func NewRoomService(rooms repository.RoomRepository, log *zap.Logger) RoomService {
	return &roomService{
		rooms: rooms,
		log:   log.With(zap.String("service", "room")),
	}
}

func (s *roomService) GetRooms(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.rooms.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get rooms", zap.Error(err))
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	return response.RoomsToResponse(rooms), nil
}

func (s *roomService) GetRoomByID(ctx context.Context, id int64) (*response.RoomResponse, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room by id: %w", err)
	}
	if room == nil {
		return nil, notFound("room %d not found", id)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate(req); err != nil {
		s.log.Warn("Create room validation failed", zap.Error(err))
		return nil, err
	}

	room := &entity.Room{
		Name:     req.Name,
		Capacity: req.Capacity,
		Type:     entity.RoomType2D,
	}
	if req.Type != "" {
		room.Type = entity.RoomType(req.Type)
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		switch {
		case errors.Is(err, repository.ErrUniqueViolation):
			return nil, conflict("room %q already exists", room.Name)
		case errors.Is(err, repository.ErrCheckViolation):
			return nil, invalid("room rejected by database constraints")
		}
		s.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("name", room.Name),
		)
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.Int64("room_id", room.ID),
		zap.String("name", room.Name),
		zap.Int("capacity", room.Capacity),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}
