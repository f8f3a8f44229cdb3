package adaptor

import (
	"errors"
	"net/http"

	"cinemax-api/internal/usecase"
	"cinemax-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// handleServiceError maps service errors onto the response envelope. Client errors are
// logged at Warn, everything else at Error; database details never reach the client.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err), zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, usecase.ErrValidation):
		log.Warn("Invalid input for "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err), zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err), zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrUnavailable):
		log.Error(operation+" failed - database unavailable", zap.Error(err), zap.String("operation", operation))
		utils.ResponseUnavailable(w, "Service temporarily unavailable, retry later")

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// decodeBody reports malformed JSON and unknown fields as 400 and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, log *zap.Logger, dst any) bool {
	if err := utils.DecodeJSON(r, dst); err != nil {
		log.Warn("Invalid request body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body: "+err.Error(), nil)
		return false
	}
	return true
}

// pathID reads the {id} URL parameter, answering 400 when it is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, name+" ID must be a positive integer", nil)
		return 0, false
	}
	return id, true
}
