package response

import (
	"fmt"
	"time"

	"cinemax-api/internal/data/entity"

	"github.com/jackc/pgx/v5/pgtype"
)

const DateLayout = "2006-01-02"

type SessionResponse struct {
	ID             int64         `json:"id"`
	MovieID        int64         `json:"movieId"`
	RoomID         int64         `json:"roomId"`
	SessionDate    string        `json:"sessionDate"`
	SessionTime    string        `json:"sessionTime"`
	Price          float64       `json:"price"`
	AvailableSeats int           `json:"availableSeats"`
	Active         bool          `json:"active"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	Movie          MovieResponse `json:"movie"`
	Room           RoomResponse  `json:"room"`
}

func SessionToResponse(detail *entity.SessionDetail) SessionResponse {
	return SessionResponse{
		ID:             detail.ID,
		MovieID:        detail.MovieID,
		RoomID:         detail.RoomID,
		SessionDate:    detail.SessionDate.Format(DateLayout),
		SessionTime:    FormatClock(detail.SessionTime),
		Price:          detail.Price,
		AvailableSeats: detail.AvailableSeats,
		Active:         detail.Session.Active,
		CreatedAt:      detail.Session.CreatedAt,
		UpdatedAt:      detail.Session.UpdatedAt,
		Movie:          MovieToResponse(&detail.Movie),
		Room:           RoomToResponse(&detail.Room),
	}
}

func SessionsToResponse(details []*entity.SessionDetail) []SessionResponse {
	result := make([]SessionResponse, len(details))
	for i, detail := range details {
		result[i] = SessionToResponse(detail)
	}
	return result
}

// FormatClock renders a TIME column as HH:MM, or HH:MM:SS when seconds are set.
func FormatClock(t pgtype.Time) string {
	if !t.Valid {
		return ""
	}

	total := t.Microseconds / 1_000_000
	hours, minutes, seconds := total/3600, total%3600/60, total%60
	if seconds != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
