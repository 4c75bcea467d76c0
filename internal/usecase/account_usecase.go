package usecase

import (
	"context"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase defines the cascading account removal operations. Both
// remove a user account and everything it transitively owns (owner profile,
// pets, visits, role associations) in one transaction.
type AccountUsecase interface {
	// DeleteAccount removes the account with the given user ID.
	DeleteAccount(ctx context.Context, identity *entity.Identity, userID uuid.UUID) error

	// DeleteOwnerWithUser removes the account linked to the given owner
	// profile. Same cascade as DeleteAccount, keyed by owner ID.
	DeleteOwnerWithUser(ctx context.Context, identity *entity.Identity, ownerID uuid.UUID) error
}
