// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPetNotFound is returned when a pet is not found.
var ErrPetNotFound = errors.New("pet not found")

// PetRepository defines the standard operations for pet persistence.
type PetRepository interface {
	// FindByID retrieves a single pet by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error)

	// FindByOwnerID retrieves all pets belonging to an owner.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pet, error)

	// FindAll retrieves every pet.
	FindAll(ctx context.Context) ([]*entity.Pet, error)

	// Create persists a new pet.
	Create(ctx context.Context, pet *entity.Pet) error

	// Update modifies an existing pet.
	Update(ctx context.Context, pet *entity.Pet) error

	// Delete removes the pet record.
	Delete(ctx context.Context, id uuid.UUID) error
}
