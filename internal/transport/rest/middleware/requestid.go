package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"kisanmitra/internal/transport/rest/response"
)

// RequestID attaches a uuid to each request, echoed in the response header
// and the envelope meta.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)

		ctx := response.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
