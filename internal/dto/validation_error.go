package dto

// ValidationError is one entry of the 400 response body.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
