package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"drivenotes/internal/domain"
	"drivenotes/internal/httputil"
)

// handleError maps domain errors onto HTTP responses. Anything that does
// not implement HTTPError is an unexpected failure and logged as such.
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	logger.Error("unexpected error",
		"error", err,
		"path", r.URL.Path,
		"method", r.Method,
		"request_id", httputil.GetRequestID(r),
	)
	httputil.RespondError(w, http.StatusInternalServerError, "operation failed")
}
