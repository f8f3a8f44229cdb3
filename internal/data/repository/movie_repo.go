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

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindAll(ctx context.Context, filter entity.MovieFilter) ([]*entity.Movie, error)
	Delete(ctx context.Context, id int64) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, title, description, year, genre, duration, age_rating, poster,
	director, release_date, active, created_at, updated_at`

func scanMovie(row pgx.Row, movie *entity.Movie) error {
	return row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Year,
		&movie.Genre,
		&movie.Duration,
		&movie.AgeRating,
		&movie.Poster,
		&movie.Director,
		&movie.ReleaseDate,
		&movie.Active,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
}

// Create inserts the movie and fills in the generated id, active flag and timestamps.
func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, description, year, genre, duration, age_rating, poster,
		                    director, release_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, active, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Description,
		movie.Year,
		movie.Genre,
		movie.Duration,
		movie.AgeRating,
		movie.Poster,
		movie.Director,
		movie.ReleaseDate,
	).Scan(&movie.ID, &movie.Active, &movie.CreatedAt, &movie.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return wrap(err, "failed to create movie")
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	var movie entity.Movie
	err := scanMovie(r.db.QueryRow(ctx, query, id), &movie)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, wrap(err, "failed to find movie %d", id)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, filter entity.MovieFilter) ([]*entity.Movie, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + movieColumns + ` FROM movies WHERE 1 = 1`)

	args := []interface{}{}
	argCount := 1

	if !filter.IncludeInactive {
		queryBuilder.WriteString(" AND active = TRUE")
	}

	if filter.Genre != nil && *filter.Genre != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND genre = $%d", argCount))
		args = append(args, *filter.Genre)
		argCount++
	}

	queryBuilder.WriteString(" ORDER BY year DESC, id DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all movies",
			zap.Error(err),
			zap.Stringp("genre", filter.Genre),
		)
		return nil, wrap(err, "failed to find movies")
	}
	defer rows.Close()

	movies := []*entity.Movie{}
	for rows.Next() {
		var movie entity.Movie
		if err := scanMovie(rows, &movie); err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, wrap(err, "failed to scan movie")
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, wrap(err, "failed to iterate rows")
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.Stringp("genre", filter.Genre),
		zap.Bool("include_inactive", filter.IncludeInactive),
	)

	return movies, nil
}

// Delete removes the row for good. Sessions reference movies with ON DELETE RESTRICT, so a
// movie that still has sessions fails with ErrForeignKeyViolation.
func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return wrap(err, "failed to delete movie %d", id)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete movie %d: %w", id, ErrNoRowsAffected)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}
