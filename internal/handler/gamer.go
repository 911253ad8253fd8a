package handler

import (
	"net/http"

	"github.com/scamp925/level-up-server/internal/model"
	"github.com/scamp925/level-up-server/internal/service"
)

// GamerHandler handles gamer registration requests
type GamerHandler struct {
	svc *service.GamerService
}

// NewGamerHandler creates a new gamer handler
func NewGamerHandler(svc *service.GamerService) *GamerHandler {
	return &GamerHandler{svc: svc}
}

// Register handles POST /register
func (h *GamerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterGamerRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	gamer, err := h.svc.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, model.NewCheckUserResource(gamer))
}

// CheckUser handles POST /checkuser
func (h *GamerHandler) CheckUser(w http.ResponseWriter, r *http.Request) {
	var req model.GamerUIDRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	gamer, err := h.svc.CheckUser(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, model.NewCheckUserResource(gamer))
}
