package drive

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"drivenotes/internal/domain"
)

// mapError translates a provider API error into the domain taxonomy.
// 401 means the bearer token was rejected, 404 that the id no longer
// resolves; everything else is an opaque remote failure.
func mapError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized:
			return &domain.UnauthorizedError{Message: "access token rejected by storage provider"}
		case http.StatusNotFound:
			return &domain.NotFoundError{Message: fmt.Sprintf("%s: file not found", op)}
		}
	}
	return &domain.RemoteError{Message: fmt.Sprintf("%s: %v", op, err)}
}
