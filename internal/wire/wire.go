package wire

import (
	"context"
	"net/http"

	"cinemax-api/internal/adaptor"
	"cinemax-api/internal/data/repository"
	"cinemax-api/internal/usecase"
	"cinemax-api/pkg/middleware"
	"cinemax-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Pinger is what /health needs from the database.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App holds the wired router.
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers on top of the repositories and mounts every route.
func Wiring(repo *repository.Repository, db Pinger, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, db, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	db Pinger,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	wireMovie(r, handler.Movie)
	wireSession(r, handler.Session)
	wireRoom(r, handler.Room)
	wireSystem(r, db, config, logger)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusMethodNotAllowed, utils.Response{Message: "Method not allowed"})
	})

	return r
}
