package request

type MovieRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	Year        int     `json:"year" validate:"required,gt=0,lte=9999"`
	Genre       string  `json:"genre" validate:"required,max=100"`
	Duration    int     `json:"duration" validate:"required,gt=0,lte=999"`
	AgeRating   string  `json:"ageRating" validate:"required,oneof=L 10 12 14 16 18"`
	Poster      string  `json:"poster" validate:"required,max=500"`
	Director    *string `json:"director,omitempty" validate:"omitempty,max=150"`
	ReleaseDate *string `json:"releaseDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// MovieQuery holds the raw query string filters of GET /api/movies.
type MovieQuery struct {
	Genre           string
	IncludeInactive string
}
