// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"petclinic/config"
	"petclinic/internal/domain/entity"
	domainerrors "petclinic/internal/domain/errors"
	"petclinic/internal/domain/service"
	"petclinic/internal/errors"
)

// accessClaims is the JWT payload of an access token. The signature covers
// the subject, its roles and the validity window; nothing else decides
// token validity.
type accessClaims struct {
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte        // Secret key for signing access tokens, loaded once at startup.
	accessTTL time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		accessTTL: cfg.AccessTokenTTL(),
	}, nil
}

// Issue creates a signed access token for a verified identity.
func (s *jwtService) Issue(identity *entity.Identity) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Email: identity.Email,
		Roles: identity.Roles.ToStrings(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Decode verifies a token string and maps every failure mode onto the
// domain token errors. The HMAC comparison inside jwt/v5 is constant-time.
func (s *jwtService) Decode(tokenString string) (*entity.Identity, error) {
	claims := &accessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, s.mapTokenError(err, tokenString)
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenSignatureInvalid.WrapMessage("token did not validate")
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("subject is not a valid uuid")
	}

	return &entity.Identity{
		UserID: subject,
		Email:  claims.Email,
		Roles:  entity.RolesFromStrings(claims.Roles),
	}, nil
}

// AccessTokenDuration returns the configured lifetime of issued tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// mapTokenError translates jwt/v5 sentinel errors into the domain taxonomy.
// An expired token is always reported as expired, even when its signature
// also fails to verify, so callers observe a single failure mode for stale
// tokens.
func (s *jwtService) mapTokenError(err error, tokenString string) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired.WrapMessage("access token expired")
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		if s.isExpiredIgnoringSignature(tokenString) {
			return domainerrors.ErrTokenExpired.WrapMessage("access token expired")
		}

		return domainerrors.ErrTokenSignatureInvalid.WrapMessage("signature verification failed")
	default:
		return domainerrors.ErrTokenMalformed.WrapMessage("failed to parse token structure")
	}
}

// isExpiredIgnoringSignature inspects the unverified claims of a token whose
// signature already failed. The claims are only used to decide between the
// expired and invalid-signature outcomes, never to grant anything.
func (s *jwtService) isExpiredIgnoringSignature(tokenString string) bool {
	claims := &accessClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return false
	}

	return claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time)
}
