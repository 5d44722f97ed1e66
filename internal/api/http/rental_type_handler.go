package http

import (
	"net/http"

	"rentmarket-backend/internal/service"
)

type RentalTypeHandler struct {
	types service.RentalTypeService
}

func NewRentalTypeHandler(types service.RentalTypeService) *RentalTypeHandler {
	return &RentalTypeHandler{types: types}
}

func (h *RentalTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.types.ListActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"rental_types": types})
}
