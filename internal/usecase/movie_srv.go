package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cinemax-api/internal/data/entity"
	"cinemax-api/internal/data/repository"
	"cinemax-api/internal/dto/request"
	"cinemax-api/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, query request.MovieQuery) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, id int64) error
}

type movieService struct {
	movies repository.MovieRepository
	log    *zap.Logger
}

func NewMovieService(movies repository.MovieRepository, log *zap.Logger) MovieService {
	return &movieService{
		movies: movies,
		log:    log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, query request.MovieQuery) ([]response.MovieResponse, error) {
	filter := entity.MovieFilter{}

	if genre := strings.TrimSpace(query.Genre); genre != "" {
		filter.Genre = &genre
	}

	if query.IncludeInactive != "" {
		include, err := strconv.ParseBool(query.IncludeInactive)
		if err != nil {
			return nil, invalid("includeInactive must be true or false")
		}
		filter.IncludeInactive = include
	}

	movies, err := s.movies.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Stringp("genre", filter.Genre),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	s.log.Info("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.Stringp("genre", filter.Genre),
	)

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error) {
	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, notFound("movie %d not found", id)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	trimMovieRequest(req)
	if err := validate(req); err != nil {
		s.log.Warn("Create movie validation failed", zap.Error(err))
		return nil, err
	}

	movie := &entity.Movie{
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
		Genre:       req.Genre,
		Duration:    req.Duration,
		AgeRating:   entity.AgeRating(req.AgeRating),
		Poster:      req.Poster,
		Director:    req.Director,
	}

	if req.ReleaseDate != nil {
		releaseDate, err := time.Parse(response.DateLayout, *req.ReleaseDate)
		if err != nil {
			return nil, invalid("invalid release date %q", *req.ReleaseDate)
		}
		movie.ReleaseDate = &releaseDate
	}

	if err := s.movies.Create(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrCheckViolation) {
			return nil, invalid("movie rejected by database constraints")
		}
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// trimMovieRequest strips surrounding whitespace so blank text fails "required".
func trimMovieRequest(req *request.MovieRequest) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Genre = strings.TrimSpace(req.Genre)
	req.Poster = strings.TrimSpace(req.Poster)
	if req.Director != nil {
		director := strings.TrimSpace(*req.Director)
		req.Director = &director
	}
}

func (s *movieService) DeleteMovie(ctx context.Context, id int64) error {
	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return notFound("movie %d not found", id)
	}

	if err := s.movies.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return conflict("movie %d still has sessions and cannot be deleted", id)
		case errors.Is(err, repository.ErrNoRowsAffected):
			// removed by someone else in between
			return notFound("movie %d not found", id)
		}
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted",
		zap.Int64("movie_id", id),
		zap.String("title", movie.Title),
	)

	return nil
}
