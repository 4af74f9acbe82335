// Package dto defines request/response payloads for the HTTP API.
package dto

// SuccessResponse is the generic acknowledgement payload.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// IDResponse carries an identifier for created resources.
type IDResponse struct {
	ID string `json:"id"`
}
