package response

import (
	"time"

	"cinemax-api/internal/data/entity"
)

type MovieResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Year        int       `json:"year"`
	Genre       string    `json:"genre"`
	Duration    int       `json:"duration"`
	AgeRating   string    `json:"ageRating"`
	Poster      string    `json:"poster"`
	Director    *string   `json:"director,omitempty"`
	ReleaseDate *string   `json:"releaseDate,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	var releaseDate *string
	if movie.ReleaseDate != nil {
		formatted := movie.ReleaseDate.Format(DateLayout)
		releaseDate = &formatted
	}

	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Year:        movie.Year,
		Genre:       movie.Genre,
		Duration:    movie.Duration,
		AgeRating:   string(movie.AgeRating),
		Poster:      movie.Poster,
		Director:    movie.Director,
		ReleaseDate: releaseDate,
		Active:      movie.Active,
		CreatedAt:   movie.CreatedAt,
		UpdatedAt:   movie.UpdatedAt,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	result := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		result[i] = MovieToResponse(movie)
	}
	return result
}
