// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOwnerNotFound is returned when an owner profile is not found.
var ErrOwnerNotFound = errors.New("owner not found")

// OwnerRepository defines the standard operations for owner-profile persistence.
type OwnerRepository interface {
	// FindByID retrieves a single owner by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error)

	// FindByUserID retrieves the owner profile linked to a user account.
	// An admin account legitimately has none; callers must treat
	// ErrOwnerNotFound as a normal outcome.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Owner, error)

	// FindByUserEmail retrieves the owner linked to the account with the email.
	FindByUserEmail(ctx context.Context, email string) (*entity.Owner, error)

	// FindAll retrieves every owner profile.
	FindAll(ctx context.Context) ([]*entity.Owner, error)

	// Create persists a new owner profile.
	Create(ctx context.Context, owner *entity.Owner) error

	// Update modifies an existing owner profile.
	Update(ctx context.Context, owner *entity.Owner) error

	// Delete removes the owner record.
	Delete(ctx context.Context, id uuid.UUID) error
}
