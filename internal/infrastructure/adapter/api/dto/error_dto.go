package dto

// ErrorResponse is the standardized error body for all endpoints
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
