package handler

import (
	"net/http"

	"github.com/scamp925/level-up-server/internal/model"
	"github.com/scamp925/level-up-server/internal/service"
)

// GameHandler handles game HTTP requests
type GameHandler struct {
	svc *service.GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(svc *service.GameService) *GameHandler {
	return &GameHandler{svc: svc}
}

// List handles GET /games?type={game_type_id}
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.svc.List(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, model.NewGameResources(games))
}

// Get handles GET /games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	game, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, model.NewGameResource(game))
}

// Create handles POST /games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateGameRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	game, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, model.NewGameResource(game))
}
