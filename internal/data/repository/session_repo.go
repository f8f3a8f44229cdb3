package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cinemax-api/internal/data/entity"
	"cinemax-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindDetailByID(ctx context.Context, id int64) (*entity.SessionDetail, error)
	FindAllDetails(ctx context.Context, filter entity.SessionFilter) ([]*entity.SessionDetail, error)
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

// sessionDetailSelect joins every session with its movie and room in one round trip.
const sessionDetailSelect = `
	SELECT s.id, s.movie_id, s.room_id, s.session_date, s.session_time, s.price,
	       s.available_seats, s.active, s.created_at, s.updated_at,
	       m.id, m.title, m.description, m.year, m.genre, m.duration, m.age_rating, m.poster,
	       m.director, m.release_date, m.active, m.created_at, m.updated_at,
	       r.id, r.name, r.capacity, r.type, r.active, r.created_at, r.updated_at
	FROM sessions s
	JOIN movies m ON m.id = s.movie_id
	JOIN rooms r ON r.id = s.room_id
`

func scanSessionDetail(row pgx.Row, d *entity.SessionDetail) error {
	return row.Scan(
		&d.ID,
		&d.MovieID,
		&d.RoomID,
		&d.SessionDate,
		&d.SessionTime,
		&d.Price,
		&d.AvailableSeats,
		&d.Session.Active,
		&d.Session.CreatedAt,
		&d.Session.UpdatedAt,
		&d.Movie.ID,
		&d.Movie.Title,
		&d.Movie.Description,
		&d.Movie.Year,
		&d.Movie.Genre,
		&d.Movie.Duration,
		&d.Movie.AgeRating,
		&d.Movie.Poster,
		&d.Movie.Director,
		&d.Movie.ReleaseDate,
		&d.Movie.Active,
		&d.Movie.CreatedAt,
		&d.Movie.UpdatedAt,
		&d.Room.ID,
		&d.Room.Name,
		&d.Room.Capacity,
		&d.Room.Type,
		&d.Room.Active,
		&d.Room.CreatedAt,
		&d.Room.UpdatedAt,
	)
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	query := `
		INSERT INTO sessions (movie_id, room_id, session_date, session_time, price, available_seats)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, active, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		session.MovieID,
		session.RoomID,
		session.SessionDate,
		session.SessionTime,
		session.Price,
		session.AvailableSeats,
	).Scan(&session.ID, &session.Active, &session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create session",
			zap.Error(err),
			zap.Int64("movie_id", session.MovieID),
			zap.Int64("room_id", session.RoomID),
			zap.Time("session_date", session.SessionDate),
		)
		return wrap(err, "create session for movie %d room %d", session.MovieID, session.RoomID)
	}

	return nil
}

func (r *sessionRepository) FindDetailByID(ctx context.Context, id int64) (*entity.SessionDetail, error) {
	query := sessionDetailSelect + ` WHERE s.id = $1`

	var detail entity.SessionDetail
	err := scanSessionDetail(r.db.QueryRow(ctx, query, id), &detail)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find session by ID",
			zap.Error(err),
			zap.Int64("session_id", id),
		)
		return nil, wrap(err, "find session by ID %d", id)
	}

	return &detail, nil
}

// FindAllDetails lists active sessions in screening order.
func (r *sessionRepository) FindAllDetails(ctx context.Context, filter entity.SessionFilter) ([]*entity.SessionDetail, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(sessionDetailSelect)
	queryBuilder.WriteString(" WHERE s.active = TRUE")

	args := []interface{}{}
	argCount := 1

	if filter.MovieID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.movie_id = $%d", argCount))
		args = append(args, *filter.MovieID)
		argCount++
	}

	if filter.Date != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.session_date = $%d", argCount))
		args = append(args, *filter.Date)
		argCount++
	}

	queryBuilder.WriteString(" ORDER BY s.session_date ASC, s.session_time ASC, s.id ASC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find sessions", zap.Error(err))
		return nil, wrap(err, "find sessions")
	}
	defer rows.Close()

	details := []*entity.SessionDetail{}
	for rows.Next() {
		var detail entity.SessionDetail
		if err := scanSessionDetail(rows, &detail); err != nil {
			r.log.Error("Failed to scan session row", zap.Error(err))
			return nil, wrap(err, "scan session row")
		}
		details = append(details, &detail)
	}

	if err := rows.Err(); err != nil {
		return nil, wrap(err, "iterate session rows")
	}

	r.log.Debug("Sessions found", zap.Int("count", len(details)))
	return details, nil
}
