// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"userauth/config"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/domain/service"
	"userauth/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Secret key for signing access tokens.
	ttl    time.Duration // Time-to-live for access tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// A missing secret is a startup error.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.JWT.ExpiresIn
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs {userId, username, iat, exp} with HS256.
func (s *jwtService) Issue(userID int64, email string) (string, error) {
	issuedAt := s.now()
	claims := &service.Claims{
		UserID:   userID,
		Username: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses the token and maps every failure onto the two token errors.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		// v5 checks the signature before the claims, so an expired error
		// implies the signature was valid.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenSignatureInvalid.WrapMessage(err.Error())
	}

	if !token.Valid {
		return nil, domainerrors.ErrTokenSignatureInvalid
	}

	return claims, nil
}
