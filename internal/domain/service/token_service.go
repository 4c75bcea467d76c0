package service

import (
	"time"

	"petclinic/internal/domain/entity"
)

// TokenService is the codec for the stateless access token: a signed,
// self-expiring proof of identity. Validity is decided solely by signature
// integrity and expiry; there is no server-side session or revocation store.
type TokenService interface {
	// Issue creates a signed access token carrying the subject and its roles.
	Issue(identity *entity.Identity) (string, error)

	// Decode verifies a token string and returns the identity it proves.
	// It fails with the domain token errors: malformed structure, expired,
	// or signature mismatch.
	Decode(tokenString string) (*entity.Identity, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
