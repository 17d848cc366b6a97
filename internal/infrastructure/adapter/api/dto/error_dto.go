package dto

// ErrorResponse is the body of every failed request.
// Detail carries the client-facing message; Code is the numeric error code.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   int    `json:"code,omitempty"`
}
