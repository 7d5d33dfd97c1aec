package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed access token for the given user.
	// The email travels in the username claim.
	Issue(userID int64, email string) (string, error)

	// Verify checks the signature and expiry of a token string.
	// It returns domainerrors.ErrTokenExpired for an expired but otherwise valid token
	// and domainerrors.ErrTokenSignatureInvalid for any other failure.
	Verify(tokenString string) (*Claims, error)
}
