package entity

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type Session struct {
	Base
	MovieID        int64       `db:"movie_id"`
	RoomID         int64       `db:"room_id"`
	SessionDate    time.Time   `db:"session_date"`
	SessionTime    pgtype.Time `db:"session_time"`
	Price          float64     `db:"price"`
	AvailableSeats int         `db:"available_seats"`
	Active         bool        `db:"active"`
}

// SessionDetail is a session joined with the movie and room it points at.
type SessionDetail struct {
	Session
	Movie Movie
	Room  Room
}

type SessionFilter struct {
	MovieID *int64
	Date    *time.Time
}
