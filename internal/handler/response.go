package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/scamp925/level-up-server/internal/model"
)

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	err.WriteJSON(w)
}

// DecodeJSON decodes a single JSON object from the request body into v.
// Unknown fields and trailing data are rejected.
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// WriteNoContent writes a 204 No Content response
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// decodeRequest decodes the body into v, writing a 400 on failure.
// It reports whether the handler should continue.
func decodeRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := DecodeJSON(r, v); err != nil {
		detail := "invalid request body"
		if !errors.Is(err, io.EOF) {
			detail = "invalid request body: " + err.Error()
		}
		WriteError(w, model.NewBadRequestError(detail))
		return false
	}
	return true
}
