// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVetNotFound is returned when a vet is not found.
var ErrVetNotFound = errors.New("vet not found")

// VetRepository defines the standard operations for vet persistence.
type VetRepository interface {
	// FindByID retrieves a single vet by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vet, error)

	// FindAll retrieves every vet.
	FindAll(ctx context.Context) ([]*entity.Vet, error)

	// Create persists a new vet.
	Create(ctx context.Context, vet *entity.Vet) error

	// Update modifies an existing vet.
	Update(ctx context.Context, vet *entity.Vet) error

	// Delete removes the vet record.
	Delete(ctx context.Context, id uuid.UUID) error
}
