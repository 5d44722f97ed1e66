package http

import (
	"net/http"

	"rentmarket-backend/internal/domain"
	"rentmarket-backend/internal/repository"
	"rentmarket-backend/internal/service"
)

type RentalItemHandler struct {
	items service.RentalItemService
}

func NewRentalItemHandler(items service.RentalItemService) *RentalItemHandler {
	return &RentalItemHandler{items: items}
}

func (h *RentalItemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.ItemFilter{
		RentalType: q.Get("type"),
		Search:     q.Get("search"),
	}
	page := parsePage(q.Get("page"))

	items, total, err := h.items.ListAvailable(r.Context(), filter, page)
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.RentalItem{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"total": total,
		"page":  page,
	})
}

func (h *RentalItemHandler) Show(w http.ResponseWriter, r *http.Request) {
	detail, err := h.items.Get(r.Context(), ActorIDFromContext(r.Context()), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *RentalItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.RentalItemInput
	if !decodeBody(w, r, &input) {
		return
	}
	item, err := h.items.Create(r.Context(), ActorIDFromContext(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *RentalItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.RentalItemInput
	if !decodeBody(w, r, &input) {
		return
	}
	item, err := h.items.Update(r.Context(), ActorIDFromContext(r.Context()), pathID(r), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *RentalItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.items.Delete(r.Context(), ActorIDFromContext(r.Context()), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RentalItemHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r.URL.Query().Get("page"))
	items, total, err := h.items.ListMine(r.Context(), ActorIDFromContext(r.Context()), page)
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.RentalItem{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"total": total,
		"page":  page,
	})
}
