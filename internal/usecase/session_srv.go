package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"cinemax-api/internal/data/entity"
	"cinemax-api/internal/data/repository"
	"cinemax-api/internal/dto/request"
	"cinemax-api/internal/dto/response"
	"cinemax-api/pkg/utils"

	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

type SessionService interface {
	GetSessions(ctx context.Context, query request.SessionQuery) ([]response.SessionResponse, error)
	GetSessionByID(ctx context.Context, id int64) (*response.SessionResponse, error)
	CreateSession(ctx context.Context, req *request.SessionRequest) (*response.SessionResponse, error)
}

type sessionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSessionService(repo *repository.Repository, log *zap.Logger) SessionService {
	return &sessionService{
		repo: repo,
		log:  log.With(zap.String("service", "session")),
	}
}

func (s *sessionService) GetSessions(ctx context.Context, query request.SessionQuery) ([]response.SessionResponse, error) {
	filter := entity.SessionFilter{}

	if raw := strings.TrimSpace(query.MovieID); raw != "" {
		movieID, err := utils.ParseID(raw)
		if err != nil {
			return nil, invalid("movieId must be a positive integer")
		}
		filter.MovieID = &movieID
	}

	if raw := strings.TrimSpace(query.Date); raw != "" {
		date, err := time.Parse(response.DateLayout, raw)
		if err != nil {
			return nil, invalid("date must be formatted as YYYY-MM-DD")
		}
		filter.Date = &date
	}

	details, err := s.repo.Session.FindAllDetails(ctx, filter)
	if err != nil {
		s.log.Error("Failed to get sessions", zap.Error(err))
		return nil, fmt.Errorf("get sessions: %w", err)
	}

	s.log.Info("Sessions retrieved", zap.Int("count", len(details)))

	return response.SessionsToResponse(details), nil
}

func (s *sessionService) GetSessionByID(ctx context.Context, id int64) (*response.SessionResponse, error) {
	detail, err := s.repo.Session.FindDetailByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session by id: %w", err)
	}
	if detail == nil {
		return nil, notFound("session %d not found", id)
	}

	resp := response.SessionToResponse(detail)
	return &resp, nil
}

// CreateSession schedules a screening. Both the movie and the room must exist and be active;
// the seat count starts at the room's capacity.
func (s *sessionService) CreateSession(ctx context.Context, req *request.SessionRequest) (*response.SessionResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create session validation failed", zap.Error(err))
		return nil, err
	}

	sessionDate, err := time.Parse(response.DateLayout, req.SessionDate)
	if err != nil {
		return nil, invalid("invalid session date %q", req.SessionDate)
	}

	sessionTime, err := toPgTime(req.SessionTime)
	if err != nil {
		return nil, invalid("invalid session time %q", req.SessionTime)
	}

	movie, err := s.repo.Movie.FindByID(ctx, req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, notFound("movie %d not found", req.MovieID)
	}
	if !movie.Active {
		return nil, invalid("movie %d is not active", req.MovieID)
	}

	room, err := s.repo.Room.FindByID(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, notFound("room %d not found", req.RoomID)
	}
	if !room.Active {
		return nil, invalid("room %d is not active", req.RoomID)
	}

	session := &entity.Session{
		MovieID:        movie.ID,
		RoomID:         room.ID,
		SessionDate:    sessionDate,
		SessionTime:    sessionTime,
		Price:          math.Round(*req.Price*100) / 100,
		AvailableSeats: room.Capacity,
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		switch {
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return nil, notFound("movie %d or room %d no longer exists", req.MovieID, req.RoomID)
		case errors.Is(err, repository.ErrCheckViolation):
			return nil, invalid("session rejected by database constraints")
		}
		s.log.Error("Failed to create session",
			zap.Error(err),
			zap.Int64("movie_id", req.MovieID),
			zap.Int64("room_id", req.RoomID),
		)
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("Session created",
		zap.Int64("session_id", session.ID),
		zap.Int64("movie_id", movie.ID),
		zap.Int64("room_id", room.ID),
		zap.Int("available_seats", session.AvailableSeats),
	)

	resp := response.SessionToResponse(&entity.SessionDetail{
		Session: *session,
		Movie:   *movie,
		Room:    *room,
	})
	return &resp, nil
}

func toPgTime(value string) (pgtype.Time, error) {
	t, err := utils.ParseClock(value)
	if err != nil {
		return pgtype.Time{}, err
	}

	seconds := int64(t.Hour()*3600 + t.Minute()*60 + t.Second())
	return pgtype.Time{Microseconds: seconds * 1_000_000, Valid: true}, nil
}
