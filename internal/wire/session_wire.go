package wire

import (
	"cinemax-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSession(r chi.Router, sessionHandler *adaptor.SessionHandler) {
	r.Route("/api/sessions", func(r chi.Router) {
		r.Get("/", sessionHandler.GetSessions)
		r.Post("/", sessionHandler.CreateSession)
		r.Get("/{id}", sessionHandler.GetSessionByID)
	})
}
