package handler

import (
	"net/http"

	"github.com/scamp925/level-up-server/internal/model"
	"github.com/scamp925/level-up-server/internal/service"
)

// GameTypeHandler handles game type HTTP requests
type GameTypeHandler struct {
	svc *service.GameTypeService
}

// NewGameTypeHandler creates a new game type handler
func NewGameTypeHandler(svc *service.GameTypeService) *GameTypeHandler {
	return &GameTypeHandler{svc: svc}
}

// List handles GET /gametypes
func (h *GameTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, model.NewGameTypeResources(types))
}

// Get handles GET /gametypes/{id}
func (h *GameTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	gt, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, model.NewGameTypeResource(gt))
}
