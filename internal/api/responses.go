// Package api defines the shared response envelopes used by HTTP handlers.
package api

// ErrorResponse is the common error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a signed JWT after a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
