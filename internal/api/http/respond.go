package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"rentmarket-backend/internal/domain"
	"rentmarket-backend/internal/logger"
	"rentmarket-backend/internal/security"
	"rentmarket-backend/internal/service"

	"github.com/gorilla/mux"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. All four
// categories are expected outcomes presented to the end user, never crashes.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"message": "The given data was invalid.",
			"errors":  ve.Fields,
		})
	case errors.Is(err, domain.ErrForbidden):
		// Deliberately generic: no detail about why access was denied.
		writeJSON(w, http.StatusForbidden, map[string]string{"message": "forbidden"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
	case errors.Is(err, domain.ErrInvalidState):
		writeJSON(w, http.StatusConflict, map[string]string{"message": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid email or password"})
	case errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return false
	}
	return true
}

func pathID(r *http.Request) int32 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	return int32(id)
}

func parsePage(s string) int32 {
	page, err := strconv.ParseInt(s, 10, 32)
	if err != nil || page < 1 {
		return 1
	}
	return int32(page)
}
