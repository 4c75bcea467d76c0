package impl

import (
	"context"
	"log/slog"

	deliverycontext "petclinic/internal/delivery/context"
	"petclinic/internal/domain/entity"
	domainerrors "petclinic/internal/domain/errors"
	"petclinic/internal/domain/repository"
	"petclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reservedAction is an (action, resource) pair only superadmins may perform.
type reservedAction struct {
	action   entity.Action
	resource entity.ResourceType
}

// reservedActions are withheld from admins. Everything else an admin may do.
var reservedActions = map[reservedAction]struct{}{
	{entity.ActionDeleteCascade, entity.ResourceUser}:  {},
	{entity.ActionDeleteCascade, entity.ResourceOwner}: {},
	{entity.ActionDelete, entity.ResourceVet}:          {},
	{entity.ActionDelete, entity.ResourceVisit}:        {},
}

// authzService implements the AuthzUsecase interface. It is the single place
// authorization decisions are made; resource services never re-derive rules.
type authzService struct {
	ownerRepo repository.OwnerRepository
	petRepo   repository.PetRepository
	visitRepo repository.VisitRepository
	logger    *slog.Logger
}

// AuthzServiceParams holds dependencies for authzService, injected by Fx.
type AuthzServiceParams struct {
	fx.In

	OwnerRepo repository.OwnerRepository
	PetRepo   repository.PetRepository
	VisitRepo repository.VisitRepository
	Logger    *slog.Logger
}

// NewAuthzService is the constructor for authzService.
func NewAuthzService(params AuthzServiceParams) usecase.AuthzUsecase {
	return &authzService{
		ownerRepo: params.OwnerRepo,
		petRepo:   params.PetRepo,
		visitRepo: params.VisitRepo,
		logger:    params.Logger,
	}
}

func (srv *authzService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authorize evaluates the rules first-match. Every denial is the same
// generic forbidden error; the caller learns nothing about which rule fired.
func (srv *authzService) Authorize(ctx context.Context, identity *entity.Identity, action entity.Action, resource entity.ResourceType, resourceID uuid.UUID) error {
	if identity == nil {
		return domainerrors.ErrForbidden.WrapMessage("no identity")
	}

	// Rule 1: superadmin may do anything.
	if identity.Roles.Contains(entity.RoleSuperAdmin) {
		return nil
	}

	// Rule 2: admin may do anything outside the reserved set.
	if identity.Roles.Contains(entity.RoleAdmin) {
		if _, reserved := reservedActions[reservedAction{action, resource}]; reserved {
			srv.log(ctx).Warn("Authorization denied",
				slog.Any("userID", identity.UserID),
				slog.String("action", string(action)),
				slog.String("resource", string(resource)),
			)

			return domainerrors.ErrForbidden.WrapMessage("access denied")
		}

		return nil
	}

	// Rule 3: a regular user may read, create and update what they
	// transitively own. Delete is never granted.
	if identity.Roles.Contains(entity.RoleUser) {
		switch action {
		case entity.ActionRead, entity.ActionCreate, entity.ActionUpdate:
			owns, err := srv.OwnsTransitively(ctx, identity, resource, resourceID)
			if err != nil || !owns {
				// Resolver failure and missing resource both deny;
				// absence is not leaked to unprivileged callers.
				return domainerrors.ErrForbidden.WrapMessage("access denied")
			}

			return nil
		}
	}

	// Rule 4: deny.
	return domainerrors.ErrForbidden.WrapMessage("access denied")
}

// OwnsTransitively walks the ownership chain down to the caller's owner
// profile. Any lookup failure means no ownership (fail closed).
func (srv *authzService) OwnsTransitively(ctx context.Context, identity *entity.Identity, resource entity.ResourceType, resourceID uuid.UUID) (bool, error) {
	switch resource {
	case entity.ResourceOwner:
		owner, err := srv.ownerRepo.FindByID(ctx, resourceID)
		if err != nil {
			if errors.Is(err, repository.ErrOwnerNotFound) {
				return false, domainerrors.ErrNotFound.WrapMessage("owner not found")
			}

			return false, errors.Wrap(err, "failed to resolve owner ownership")
		}

		return owner.UserID == identity.UserID, nil

	case entity.ResourcePet:
		pet, err := srv.petRepo.FindByID(ctx, resourceID)
		if err != nil {
			if errors.Is(err, repository.ErrPetNotFound) {
				return false, domainerrors.ErrNotFound.WrapMessage("pet not found")
			}

			return false, errors.Wrap(err, "failed to resolve pet ownership")
		}

		return srv.OwnsTransitively(ctx, identity, entity.ResourceOwner, pet.OwnerID)

	case entity.ResourceVisit:
		visit, err := srv.visitRepo.FindByID(ctx, resourceID)
		if err != nil {
			if errors.Is(err, repository.ErrVisitNotFound) {
				return false, domainerrors.ErrNotFound.WrapMessage("visit not found")
			}

			return false, errors.Wrap(err, "failed to resolve visit ownership")
		}

		return srv.OwnsTransitively(ctx, identity, entity.ResourcePet, visit.PetID)

	default:
		// Vets and users have no ownership chain.
		return false, nil
	}
}
