package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/scamp925/level-up-server/internal/middleware"
	"github.com/scamp925/level-up-server/internal/model"
	"github.com/scamp925/level-up-server/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	// Payload problems raised by Validate pass through unchanged
	var problem *model.ProblemDetails
	if errors.As(err, &problem) {
		return problem
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrEventNotFound):
		return model.NewNotFoundError("Event")
	case errors.Is(err, service.ErrGameNotFound):
		return model.NewNotFoundError("Game")
	case errors.Is(err, service.ErrGamerNotFound):
		return model.NewNotFoundError("Gamer")
	case errors.Is(err, service.ErrGameTypeNotFound):
		return model.NewNotFoundError("Game type")
	case errors.Is(err, service.ErrAttendanceNotFound):
		pd := model.NewNotFoundError("Attendance")
		pd.Detail = err.Error()
		pd.Message = err.Error()
		return pd

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrAlreadySignedUp),
		errors.Is(err, service.ErrGamerExists):
		return model.NewConflictError(err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// writeServiceError maps err and writes it. 5xx errors are logged with the
// request id; the client only sees the generic problem.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	pd := MapServiceError(err)
	if pd.Status >= http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("error", err.Error()),
		)
	}
	WriteError(w, pd)
}
