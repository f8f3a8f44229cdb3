package adaptor

import (
	"net/http"

	"cinemax-api/internal/dto/request"
	"cinemax-api/internal/usecase"
	"cinemax-api/pkg/utils"

	"go.uber.org/zap"
)

type SessionHandler struct {
	service usecase.SessionService
	log     *zap.Logger
}

func NewSessionHandler(service usecase.SessionService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log.With(zap.String("handler", "session")),
	}
}

// GetSessions handles GET /api/sessions?movieId=&date=
func (h *SessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sessions, err := h.service.GetSessions(r.Context(), request.SessionQuery{
		MovieID: query.Get("movieId"),
		Date:    query.Get("date"),
	})
	if err != nil {
		handleServiceError(w, h.log, err, "get sessions")
		return
	}

	utils.ResponseList(w, "Sessions retrieved successfully", sessions, len(sessions))
}

// GetSessionByID handles GET /api/sessions/{id}
func (h *SessionHandler) GetSessionByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Session")
	if !ok {
		return
	}

	session, err := h.service.GetSessionByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get session by ID")
		return
	}

	utils.ResponseSuccess(w, "Session retrieved successfully", session)
}

// CreateSession handles POST /api/sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req request.SessionRequest
	if !decodeBody(w, r, h.log, &req) {
		return
	}

	session, err := h.service.CreateSession(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create session")
		return
	}

	utils.ResponseCreated(w, "Session created successfully", session)
}
