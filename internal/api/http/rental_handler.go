package http

import (
	"net/http"

	"rentmarket-backend/internal/domain"
	"rentmarket-backend/internal/service"
)

type RentalRequestHandler struct {
	requests service.RentalRequestService
}

func NewRentalRequestHandler(requests service.RentalRequestService) *RentalRequestHandler {
	return &RentalRequestHandler{requests: requests}
}

type submitRequestPayload struct {
	RentalItemID int32  `json:"rental_item_id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Message      string `json:"message"`
}

type respondPayload struct {
	Status          string `json:"status"`
	ResponseMessage string `json:"response_message"`
}

// Index returns both sides of the caller's inbox. Each list pages
// independently via its own query parameter.
func (h *RentalRequestHandler) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	inbox, err := h.requests.ListForUser(r.Context(), ActorIDFromContext(r.Context()),
		parsePage(q.Get("my_requests")), parsePage(q.Get("received_requests")))
	if err != nil {
		writeError(w, err)
		return
	}
	if inbox.MyRequests == nil {
		inbox.MyRequests = []domain.RentalRequest{}
	}
	if inbox.ReceivedRequests == nil {
		inbox.ReceivedRequests = []domain.RentalRequest{}
	}
	writeJSON(w, http.StatusOK, inbox)
}

func (h *RentalRequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var payload submitRequestPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	req, err := h.requests.Submit(r.Context(), ActorIDFromContext(r.Context()),
		payload.RentalItemID, payload.StartDate, payload.EndDate, payload.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *RentalRequestHandler) Show(w http.ResponseWriter, r *http.Request) {
	detail, err := h.requests.View(r.Context(), ActorIDFromContext(r.Context()), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *RentalRequestHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var payload respondPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	req, err := h.requests.Respond(r.Context(), ActorIDFromContext(r.Context()), pathID(r),
		domain.RequestStatus(payload.Status), payload.ResponseMessage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
