// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVisitNotFound is returned when a visit is not found.
var ErrVisitNotFound = errors.New("visit not found")

// VisitRepository defines the standard operations for visit persistence.
type VisitRepository interface {
	// FindByID retrieves a single visit by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error)

	// FindByPetID retrieves all visits recorded for a pet.
	FindByPetID(ctx context.Context, petID uuid.UUID) ([]*entity.Visit, error)

	// FindByOwnerID retrieves all visits for every pet of an owner.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Visit, error)

	// FindAll retrieves every visit.
	FindAll(ctx context.Context) ([]*entity.Visit, error)

	// Create persists a new visit.
	Create(ctx context.Context, visit *entity.Visit) error

	// Update modifies an existing visit.
	Update(ctx context.Context, visit *entity.Visit) error

	// Delete removes a single visit record.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByPetID removes every visit of a pet. Used by the cascading
	// account eraser; a visit cannot outlive its pet.
	DeleteByPetID(ctx context.Context, petID uuid.UUID) error
}
