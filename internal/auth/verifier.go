package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"drivenotes/internal/domain"
	"drivenotes/internal/domain/models"
)

// IDTokenVerifier validates OpenID Connect ID tokens. The ID token is an
// optional companion to the access token, used only to attach a user
// identity to logs.
type IDTokenVerifier interface {
	VerifyIDToken(tokenString string) (*models.GoogleClaims, error)
	Close() error
}

// GoogleVerifier verifies Google-issued ID tokens against Google's JWKS.
type GoogleVerifier struct {
	jwks   keyfunc.Keyfunc
	logger *slog.Logger
}

// NewGoogleVerifier creates an ID token verifier. Keys are fetched from
// the JWKS endpoint and refreshed per HTTP cache headers by keyfunc.
func NewGoogleVerifier(jwksURL string, logger *slog.Logger) (IDTokenVerifier, error) {
	if jwksURL == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}

	jwks, err := keyfunc.NewDefaultCtx(context.Background(), []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("create JWKS client: %w", err)
	}

	logger.Info("ID token verifier initialized", "jwks_url", jwksURL)

	return &GoogleVerifier{jwks: jwks, logger: logger}, nil
}

// VerifyIDToken parses and validates an ID token and returns its claims.
func (v *GoogleVerifier) VerifyIDToken(tokenString string) (*models.GoogleClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.GoogleClaims{}, v.jwks.Keyfunc)
	if err != nil || !token.Valid {
		return nil, &domain.UnauthorizedError{Message: "invalid ID token"}
	}

	// only asymmetric algorithms; rejects algorithm confusion
	switch token.Method.Alg() {
	case "RS256", "ES256":
	default:
		v.logger.Warn("ID token uses unexpected algorithm", "algorithm", token.Method.Alg())
		return nil, &domain.UnauthorizedError{Message: "invalid ID token"}
	}

	claims, ok := token.Claims.(*models.GoogleClaims)
	if !ok || claims.Subject == "" {
		return nil, &domain.UnauthorizedError{Message: "invalid ID token"}
	}

	return claims, nil
}

// Close releases verifier resources. keyfunc manages its own refresh
// lifecycle, so this is a no-op kept for shutdown symmetry.
func (v *GoogleVerifier) Close() error {
	return nil
}
