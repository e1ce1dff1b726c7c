package domain

// ValidationError is raised before any row is written when a create request
// is missing required fields or references. The Code surfaces verbatim in
// API error bodies.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func badRequest(message string) *ValidationError {
	return &ValidationError{Code: "BAD_REQUEST", Message: message}
}
