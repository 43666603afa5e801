package httputil

import (
	"context"
	"net/http"
)

// Context key type to avoid collisions
type contextKey string

const (
	tokenKey     contextKey = "accessToken"
	userKey      contextKey = "userEmail"
	requestIDKey contextKey = "requestID"
)

// WithToken attaches the bearer access token to the request context.
func WithToken(r *http.Request, token string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), tokenKey, token))
}

// GetToken retrieves the bearer access token, empty if absent.
func GetToken(r *http.Request) string {
	token, _ := r.Context().Value(tokenKey).(string)
	return token
}

// WithUserEmail attaches the verified user identity to the context.
func WithUserEmail(r *http.Request, email string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userKey, email))
}

// GetUserEmail retrieves the verified user identity, empty if absent.
func GetUserEmail(r *http.Request) string {
	email, _ := r.Context().Value(userKey).(string)
	return email
}

// WithRequestID attaches the request id to the context.
func WithRequestID(r *http.Request, id string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), requestIDKey, id))
}

// GetRequestID retrieves the request id, empty if absent.
func GetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}
