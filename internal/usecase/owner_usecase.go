package usecase

import (
	"context"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOwnerInput defines the data for an admin-created owner profile.
// UserID optionally links the profile to an existing account.
type CreateOwnerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	UserID  *uuid.UUID
}

// UpdateOwnerInput carries a partial owner update; nil fields are untouched.
type UpdateOwnerInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// OwnerUsecase defines the interface for owner-profile operations.
type OwnerUsecase interface {
	// GetMyOwner returns the owner profile linked to the caller's account.
	GetMyOwner(ctx context.Context, identity *entity.Identity) (*entity.Owner, error)

	// UpdateMyOwner updates the caller's own profile.
	UpdateMyOwner(ctx context.Context, identity *entity.Identity, input *UpdateOwnerInput) (*entity.Owner, error)

	// ListOwners returns every owner profile.
	ListOwners(ctx context.Context, identity *entity.Identity) ([]*entity.Owner, error)

	// GetOwner returns a single owner profile by ID.
	GetOwner(ctx context.Context, identity *entity.Identity, ownerID uuid.UUID) (*entity.Owner, error)

	// GetOwnerByUserEmail returns the owner linked to the account with the
	// given login email.
	GetOwnerByUserEmail(ctx context.Context, identity *entity.Identity, email string) (*entity.Owner, error)

	// CreateOwner creates an owner profile, optionally linked to a user.
	CreateOwner(ctx context.Context, identity *entity.Identity, input *CreateOwnerInput) (*entity.Owner, error)

	// UpdateOwner updates an owner profile by ID.
	UpdateOwner(ctx context.Context, identity *entity.Identity, ownerID uuid.UUID, input *UpdateOwnerInput) (*entity.Owner, error)
}
