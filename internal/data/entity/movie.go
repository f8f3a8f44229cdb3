package entity

import (
	"time"
)

type AgeRating string

const (
	AgeRatingGeneral AgeRating = "L"
	AgeRating10      AgeRating = "10"
	AgeRating12      AgeRating = "12"
	AgeRating14      AgeRating = "14"
	AgeRating16      AgeRating = "16"
	AgeRating18      AgeRating = "18"
)

type Movie struct {
	Base
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Year        int        `db:"year"`
	Genre       string     `db:"genre"`
	Duration    int        `db:"duration"` // minutes
	AgeRating   AgeRating  `db:"age_rating"`
	Poster      string     `db:"poster"`
	Director    *string    `db:"director"`
	ReleaseDate *time.Time `db:"release_date"`
	Active      bool       `db:"active"`
}

type MovieFilter struct {
	Genre           *string
	IncludeInactive bool
}
