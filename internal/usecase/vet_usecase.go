package usecase

import (
	"context"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateVetInput defines the data required to register a vet.
type CreateVetInput struct {
	Name           string
	Email          string
	Phone          string
	Specialization string
}

// UpdateVetInput carries a partial vet update; nil fields are untouched.
type UpdateVetInput struct {
	Name           *string
	Email          *string
	Phone          *string
	Specialization *string
}

// VetUsecase defines the interface for vet operations.
type VetUsecase interface {
	// ListVets returns every vet. Available to any authenticated caller.
	ListVets(ctx context.Context, identity *entity.Identity) ([]*entity.Vet, error)

	// GetVet returns a single vet by ID.
	GetVet(ctx context.Context, identity *entity.Identity, vetID uuid.UUID) (*entity.Vet, error)

	// CreateVet registers a new vet.
	CreateVet(ctx context.Context, identity *entity.Identity, input *CreateVetInput) (*entity.Vet, error)

	// UpdateVet updates a vet's mutable fields.
	UpdateVet(ctx context.Context, identity *entity.Identity, vetID uuid.UUID, input *UpdateVetInput) (*entity.Vet, error)

	// DeleteVet removes a vet record.
	DeleteVet(ctx context.Context, identity *entity.Identity, vetID uuid.UUID) error
}
