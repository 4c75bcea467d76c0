package usecase

import (
	"context"
	"time"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePetInput defines the data required to register a pet under an owner.
type CreatePetInput struct {
	Name      string
	Breed     string
	BirthDate time.Time
}

// UpdatePetInput carries a partial pet update; nil fields are untouched.
type UpdatePetInput struct {
	Name      *string
	Breed     *string
	BirthDate *time.Time
}

// PetUsecase defines the interface for pet operations.
type PetUsecase interface {
	// ListPets returns every pet in the clinic.
	ListPets(ctx context.Context, identity *entity.Identity) ([]*entity.Pet, error)

	// ListMyPets returns the pets of the caller's own owner profile.
	ListMyPets(ctx context.Context, identity *entity.Identity) ([]*entity.Pet, error)

	// ListPetsByOwner returns the pets belonging to the given owner.
	ListPetsByOwner(ctx context.Context, identity *entity.Identity, ownerID uuid.UUID) ([]*entity.Pet, error)

	// GetPet returns a single pet by ID.
	GetPet(ctx context.Context, identity *entity.Identity, petID uuid.UUID) (*entity.Pet, error)

	// CreatePet registers a new pet under the given owner.
	CreatePet(ctx context.Context, identity *entity.Identity, ownerID uuid.UUID, input *CreatePetInput) (*entity.Pet, error)

	// UpdatePet updates a pet's mutable fields.
	UpdatePet(ctx context.Context, identity *entity.Identity, petID uuid.UUID, input *UpdatePetInput) (*entity.Pet, error)

	// DeletePet removes a pet together with its visits.
	DeletePet(ctx context.Context, identity *entity.Identity, petID uuid.UUID) error
}
