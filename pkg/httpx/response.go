package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the shape of every error response: {"error": "<message>"}.
type ErrorBody struct {
	Error string `json:"error" example:"Title is required"`
}

// MessageBody is the shape of plain acknowledgement responses.
type MessageBody struct {
	Message string `json:"message" example:"Election deleted"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error": msg} with the given status code.
func WriteError(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, ErrorBody{Error: msg})
}

// WriteMessage writes {"message": msg} with the given status code.
func WriteMessage(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, MessageBody{Message: msg})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Every response here is either user specific or carries a token.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
