package handler

import "net/http"

// Route binds one method and path pattern to a handler
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Handlers bundles every resource handler served by the API
type Handlers struct {
	Health    *HealthHandler
	GameTypes *GameTypeHandler
	Gamers    *GamerHandler
	Games     *GameHandler
	Events    *EventHandler
}

// Routes returns the API route table
func Routes(h Handlers) []Route {
	return []Route{
		{http.MethodGet, "/health", h.Health.Check},

		{http.MethodGet, "/gametypes", h.GameTypes.List},
		{http.MethodGet, "/gametypes/{id}", h.GameTypes.Get},

		{http.MethodPost, "/register", h.Gamers.Register},
		{http.MethodPost, "/checkuser", h.Gamers.CheckUser},

		{http.MethodGet, "/games", h.Games.List},
		{http.MethodPost, "/games", h.Games.Create},
		{http.MethodGet, "/games/{id}", h.Games.Get},

		{http.MethodGet, "/events", h.Events.List},
		{http.MethodPost, "/events", h.Events.Create},
		{http.MethodGet, "/events/{id}", h.Events.Get},
		{http.MethodPut, "/events/{id}", h.Events.Update},
		{http.MethodDelete, "/events/{id}", h.Events.Delete},
		{http.MethodPost, "/events/{id}/signup", h.Events.Signup},
		{http.MethodDelete, "/events/{id}/leave", h.Events.Leave},
		{http.MethodGet, "/events/{id}/attendees", h.Events.Attendees},
	}
}

// Register adds every route to mux using method-qualified patterns
func Register(mux *http.ServeMux, routes []Route) {
	for _, rt := range routes {
		mux.HandleFunc(rt.Method+" "+rt.Pattern, rt.Handler)
	}
}
