package models

import "github.com/golang-jwt/jwt/v5"

// GoogleClaims are the claims of a Google-issued OpenID Connect ID token.
// The ID token is optional and only used to attach an identity to request
// logs; Drive access is authorized by the bearer access token alone.
type GoogleClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name,omitempty"`
}
