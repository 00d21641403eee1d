package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenClaims is the slice of the storefront JWT this service
// reads. Token issuance and refresh live in the storefront's auth
// service; here the subject only keys the synced cart and saved
// designs.
type AccessTokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}
