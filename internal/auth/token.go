package auth

import (
	"net/http"
	"strings"

	"drivenotes/internal/domain"
)

// ParseBearer extracts the bearer access token from the Authorization
// header. A missing or malformed header is the sole authentication
// failure surfaced by this service; the token itself is opaque and only
// the storage provider can reject it.
func ParseBearer(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", &domain.UnauthorizedError{Message: "missing Authorization header"}
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", &domain.UnauthorizedError{Message: "expected Bearer token"}
	}
	return token, nil
}
