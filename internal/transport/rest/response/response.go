package response

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Error codes exposed to clients.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeRateLimited  = "RATE_LIMITED"
	CodeInternal     = "INTERNAL_ERROR"
)

type contextKey string

const requestIDKey contextKey = "requestId"

// WithRequestID stamps the per-request id onto the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the per-request id, or "" outside a request.
func RequestID(ctx context.Context) string {
	if v := ctx.Value(requestIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// Meta carries per-response metadata
type Meta struct {
	RequestID string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorBody is the error half of the envelope
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Envelope is the uniform response wrapper for every endpoint
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    Meta        `json:"meta"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// JSON writes a success envelope.
func JSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	write(w, status, Envelope{
		Success: true,
		Data:    data,
		Meta:    meta(r),
	})
}

// Error writes a failure envelope.
func Error(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	ErrorDetails(w, r, status, code, message, nil)
}

// ErrorDetails writes a failure envelope with structured details.
func ErrorDetails(w http.ResponseWriter, r *http.Request, status int, code, message string, details interface{}) {
	write(w, status, Envelope{
		Success: false,
		Meta:    meta(r),
		Error:   &ErrorBody{Code: code, Message: message, Details: details},
	})
}

func meta(r *http.Request) Meta {
	return Meta{RequestID: RequestID(r.Context()), Timestamp: time.Now().UTC()}
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}
