package usecase

import (
	"context"
	"time"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateVisitInput defines the data required to book a visit.
// New visits always start in the UPCOMING state.
type CreateVisitInput struct {
	PetID       uuid.UUID
	VetID       uuid.UUID
	VisitDate   time.Time
	Description string
}

// UpdateVisitInput carries a partial visit update; nil fields are untouched.
// A Status change must follow the visit state machine.
type UpdateVisitInput struct {
	VetID       *uuid.UUID
	VisitDate   *time.Time
	Description *string
	Status      *entity.VisitStatus
}

// VisitUsecase defines the interface for visit operations.
type VisitUsecase interface {
	// ListVisits returns every visit in the clinic.
	ListVisits(ctx context.Context, identity *entity.Identity) ([]*entity.Visit, error)

	// ListMyVisits returns every visit of the caller's own pets.
	ListMyVisits(ctx context.Context, identity *entity.Identity) ([]*entity.Visit, error)

	// ListVisitsByPet returns the visits recorded for the given pet.
	ListVisitsByPet(ctx context.Context, identity *entity.Identity, petID uuid.UUID) ([]*entity.Visit, error)

	// GetVisit returns a single visit by ID.
	GetVisit(ctx context.Context, identity *entity.Identity, visitID uuid.UUID) (*entity.Visit, error)

	// CreateVisit books a new visit for a pet with a vet.
	CreateVisit(ctx context.Context, identity *entity.Identity, input *CreateVisitInput) (*entity.Visit, error)

	// UpdateVisit updates a visit's mutable fields.
	UpdateVisit(ctx context.Context, identity *entity.Identity, visitID uuid.UUID, input *UpdateVisitInput) (*entity.Visit, error)

	// DeleteVisit removes a single visit record.
	DeleteVisit(ctx context.Context, identity *entity.Identity, visitID uuid.UUID) error
}
