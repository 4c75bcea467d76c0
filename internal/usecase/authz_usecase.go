package usecase

import (
	"context"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthzUsecase is the single authorization decision point. Every resource
// operation asks it before acting; a denial is always the generic forbidden
// error so callers cannot probe which rule fired.
type AuthzUsecase interface {
	// Authorize decides whether identity may perform action on the resource.
	// It returns nil to allow, ErrForbidden to deny.
	Authorize(ctx context.Context, identity *entity.Identity, action entity.Action, resource entity.ResourceType, resourceID uuid.UUID) error

	// OwnsTransitively reports whether the resource traces back to the
	// identity's owner profile through the ownership chain
	// (owner -> pet -> visit). A missing resource is reported as an error,
	// never as ownership.
	OwnsTransitively(ctx context.Context, identity *entity.Identity, resource entity.ResourceType, resourceID uuid.UUID) (bool, error)
}
