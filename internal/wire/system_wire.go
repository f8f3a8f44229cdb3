package wire

import (
	"context"
	"net/http"
	"time"

	"cinemax-api/pkg/utils"
	"cinemax-api/web"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const apiVersion = "1.0.0"

var endpoints = map[string]string{
	"movies":   "/api/movies",
	"sessions": "/api/sessions",
	"rooms":    "/api/rooms",
	"health":   "/health",
	"metrics":  "/metrics",
}

func wireSystem(r chi.Router, db Pinger, config *utils.Config, log *zap.Logger) {
	info := func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, config.App.Name, map[string]any{
			"version":   apiVersion,
			"endpoints": endpoints,
		})
	}

	r.Get("/api", info)

	if config.App.ServeFrontend {
		static := http.FileServerFS(web.Static())
		r.Handle("/", static)
		r.Handle("/css/*", static)
		r.Handle("/js/*", static)
	} else {
		r.Get("/", info)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.Warn("Health check failed", zap.Error(err))
			utils.ResponseUnavailable(w, "Database unreachable")
			return
		}

		utils.ResponseSuccess(w, "OK", map[string]string{"database": "up"})
	})

	r.Handle("/metrics", promhttp.Handler())
}
