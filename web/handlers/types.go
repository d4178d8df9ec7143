// Package handlers provides the HTTP and WebSocket handlers for the Studi
// API, along with the middleware stack and JSON response helpers.
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the standard error body for the API.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// TokenResponse is the response format for POST /api/auth/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// LoginRequest is the JSON login body accepted by POST /api/auth/token.
// Form-encoded bodies with the same field names are also accepted.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers already sent; nothing to do but log.
		log.Printf("failed to encode JSON response: %v", err)
	}
}

// respondError writes an error response with the given status code and
// detail message.
func respondError(w http.ResponseWriter, statusCode int, detail string) {
	respondJSON(w, statusCode, ErrorResponse{Detail: detail})
}
