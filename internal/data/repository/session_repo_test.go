package repository

import (
	"context"
	"testing"
	"time"

	"cinemax-api/internal/data/entity"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var sessionDetailColumnNames = []string{
	"id", "movie_id", "room_id", "session_date", "session_time", "price",
	"available_seats", "active", "created_at", "updated_at",
	"m_id", "title", "description", "year", "genre", "duration", "age_rating", "poster",
	"director", "release_date", "m_active", "m_created_at", "m_updated_at",
	"r_id", "name", "capacity", "type", "r_active", "r_created_at", "r_updated_at",
}

func clock(h, m int) pgtype.Time {
	return pgtype.Time{Microseconds: int64(h)*3600_000_000 + int64(m)*60_000_000, Valid: true}
}

func sessionDetailRow(id int64, date time.Time, at pgtype.Time) []any {
	now := time.Now()
	return []any{
		id, int64(1), int64(2), date, at, 25.5, 120, true, now, now,
		int64(1), "Dune", "Spice", 2021, "Sci-Fi", 155, entity.AgeRating14, "p", nil, nil, true, now, now,
		int64(2), "Sala 2", 120, entity.RoomType3D, true, now, now,
	}
}

func newSessionRepo(t *testing.T) (SessionRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewSessionRepository(mock, zap.NewNop()), mock
}

func TestSessionRepository_Create(t *testing.T) {
	repo, mock := newSessionRepo(t)
	now := time.Now()
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO sessions`).
		WithArgs(int64(1), int64(2), date, clock(18, 0), 25.5, 120).
		WillReturnRows(pgxmock.NewRows([]string{"id", "active", "created_at", "updated_at"}).
			AddRow(int64(10), true, now, now))

	session := &entity.Session{
		MovieID:        1,
		RoomID:         2,
		SessionDate:    date,
		SessionTime:    clock(18, 0),
		Price:          25.5,
		AvailableSeats: 120,
	}
	require.NoError(t, repo.Create(context.Background(), session))
	assert.Equal(t, int64(10), session.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindDetailByID(t *testing.T) {
	repo, mock := newSessionRepo(t)
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`JOIN rooms r ON r.id = s.room_id\s+WHERE s.id = \$1`).
		WithArgs(int64(10)).
		WillReturnRows(pgxmock.NewRows(sessionDetailColumnNames).
			AddRow(sessionDetailRow(10, date, clock(18, 0))...))

	detail, err := repo.FindDetailByID(context.Background(), 10)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, int64(10), detail.ID)
	assert.Equal(t, "Dune", detail.Movie.Title)
	assert.Equal(t, "Sala 2", detail.Room.Name)
	assert.Equal(t, 120, detail.AvailableSeats)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindDetailByID_NoRows(t *testing.T) {
	repo, mock := newSessionRepo(t)

	mock.ExpectQuery(`WHERE s.id = \$1`).
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows(sessionDetailColumnNames))

	detail, err := repo.FindDetailByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestSessionRepository_FindAllDetails_Filters(t *testing.T) {
	repo, mock := newSessionRepo(t)
	movieID := int64(1)
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`WHERE s.active = TRUE AND s.movie_id = \$1 AND s.session_date = \$2 ORDER BY s.session_date ASC, s.session_time ASC, s.id ASC`).
		WithArgs(movieID, date).
		WillReturnRows(pgxmock.NewRows(sessionDetailColumnNames).
			AddRow(sessionDetailRow(11, date, clock(10, 0))...).
			AddRow(sessionDetailRow(12, date, clock(18, 0))...))

	details, err := repo.FindAllDetails(context.Background(), entity.SessionFilter{MovieID: &movieID, Date: &date})
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, int64(11), details[0].ID)
	assert.Equal(t, int64(12), details[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
