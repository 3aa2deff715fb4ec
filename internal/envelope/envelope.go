// Package envelope defines the uniform response wrapper every endpoint
// returns. Expected business failures travel inside the envelope's error
// variant; only transport or infrastructure defects surface outside it.
package envelope

// Envelope status values
const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

// Response is the uniform success/error wrapper.
type Response struct {
	Data    any    `json:"data,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Success builds the success variant carrying data.
func Success(message string, data any) Response {
	return Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

// Error builds the error variant. It never carries data.
func Error(message string) Response {
	return Response{
		Status:  StatusError,
		Message: message,
	}
}

// IsError reports whether the envelope carries a business error.
func (r Response) IsError() bool {
	return r.Status == StatusError
}
