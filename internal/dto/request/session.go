package request

type SessionRequest struct {
	MovieID     int64    `json:"movieId" validate:"required,gt=0"`
	RoomID      int64    `json:"roomId" validate:"required,gt=0"`
	SessionDate string   `json:"sessionDate" validate:"required,datetime=2006-01-02"`
	SessionTime string   `json:"sessionTime" validate:"required,clock"`
	Price       *float64 `json:"price" validate:"required,gte=0,lte=99999999.99"`
}

// SessionQuery holds the raw query string filters of GET /api/sessions.
type SessionQuery struct {
	MovieID string
	Date    string
}
