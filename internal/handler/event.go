package handler

import (
	"net/http"

	"github.com/scamp925/level-up-server/internal/model"
	"github.com/scamp925/level-up-server/internal/service"
)

// EventHandler handles event HTTP requests
type EventHandler struct {
	svc *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// List handles GET /events?game={game_id}
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.List(r.Context(), r.URL.Query().Get("game"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, model.NewEventResources(events))
}

// Get handles GET /events/{id}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, model.NewEventResource(event))
}

// Create handles POST /events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	event, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, model.NewEventResource(event))
}

// Update handles PUT /events/{id}
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateEventRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if _, err := h.svc.Update(r.Context(), r.PathValue("id"), &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteNoContent(w)
}

// Delete handles DELETE /events/{id}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteNoContent(w)
}

// Signup handles POST /events/{id}/signup
func (h *EventHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.GamerUIDRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if _, err := h.svc.Signup(r.Context(), r.PathValue("id"), &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, model.MessageResource{Message: model.SignupMessage})
}

// Leave handles DELETE /events/{id}/leave
func (h *EventHandler) Leave(w http.ResponseWriter, r *http.Request) {
	var req model.GamerUIDRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.svc.Leave(r.Context(), r.PathValue("id"), &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteNoContent(w)
}

// Attendees handles GET /events/{id}/attendees
func (h *EventHandler) Attendees(w http.ResponseWriter, r *http.Request) {
	gamers, err := h.svc.Attendees(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, model.NewGamerResources(gamers))
}
