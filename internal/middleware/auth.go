package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"drivenotes/internal/auth"
	"drivenotes/internal/httputil"
)

// skipAuth lists paths served without a bearer token.
var skipAuth = []string{
	"/health",
}

// Auth extracts the Drive access token from the Authorization header and
// stores it in the request context. A missing token is rejected here;
// a bad token is only discovered when the provider rejects it.
//
// When the client also sends an X-Id-Token header and a verifier is
// configured, the ID token is verified and the user identity attached to
// the context for logging. An invalid ID token is rejected outright; an
// absent one is fine.
func Auth(verifier auth.IDTokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, path := range skipAuth {
				if strings.HasPrefix(r.URL.Path, path) {
					next.ServeHTTP(w, r)
					return
				}
			}

			token, err := auth.ParseBearer(r)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, err.Error())
				return
			}
			r = httputil.WithToken(r, token)

			if idToken := r.Header.Get("X-Id-Token"); idToken != "" && verifier != nil {
				claims, err := verifier.VerifyIDToken(idToken)
				if err != nil {
					logger.Warn("ID token rejected",
						"path", r.URL.Path,
						"request_id", httputil.GetRequestID(r),
					)
					httputil.RespondError(w, http.StatusUnauthorized, "invalid ID token")
					return
				}
				r = httputil.WithUserEmail(r, claims.Email)
			}

			next.ServeHTTP(w, r)
		})
	}
}
