package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"drivenotes/internal/httputil"
)

// RequestID assigns every request a uuid, stored in the context and
// echoed in the X-Request-Id response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set("X-Request-Id", id)
			next.ServeHTTP(w, httputil.WithRequestID(r, id))
		})
	}
}
