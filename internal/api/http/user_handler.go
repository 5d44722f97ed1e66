package http

import (
	"net/http"

	"rentmarket-backend/internal/service"
)

type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, profile, err := h.users.GetProfile(r.Context(), ActorIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":    user,
		"profile": profile,
	})
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var input service.ProfileInput
	if !decodeBody(w, r, &input) {
		return
	}
	profile, err := h.users.UpdateProfile(r.Context(), ActorIDFromContext(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}
