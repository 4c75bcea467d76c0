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

// visitService implements the VisitUsecase interface.
type visitService struct {
	visitRepo repository.VisitRepository
	petRepo   repository.PetRepository
	vetRepo   repository.VetRepository
	ownerRepo repository.OwnerRepository
	authz     usecase.AuthzUsecase
	logger    *slog.Logger
}

// VisitServiceParams holds dependencies for visitService, injected by Fx.
type VisitServiceParams struct {
	fx.In

	VisitRepo repository.VisitRepository
	PetRepo   repository.PetRepository
	VetRepo   repository.VetRepository
	OwnerRepo repository.OwnerRepository
	Authz     usecase.AuthzUsecase
	Logger    *slog.Logger
}

// NewVisitService is the constructor for visitService.
func NewVisitService(params VisitServiceParams) usecase.VisitUsecase {
	return &visitService{
		visitRepo: params.VisitRepo,
		petRepo:   params.PetRepo,
		vetRepo:   params.VetRepo,
		ownerRepo: params.OwnerRepo,
		authz:     params.Authz,
		logger:    params.Logger,
	}
}

func (srv *visitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListVisits returns every visit in the clinic.
func (srv *visitService) ListVisits(ctx context.Context, identity *entity.Identity) ([]*entity.Visit, error) {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionRead, entity.ResourceVisit, uuid.Nil); err != nil {
		return nil, err
	}

	visits, err := srv.visitRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits")
	}

	return visits, nil
}

// ListMyVisits returns every visit of the caller's own pets.
func (srv *visitService) ListMyVisits(ctx context.Context, identity *entity.Identity) ([]*entity.Visit, error) {
	owner, err := srv.ownerRepo.FindByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("no owner profile for this account")
		}

		return nil, errors.Wrap(err, "failed to load own owner profile")
	}

	visits, err := srv.visitRepo.FindByOwnerID(ctx, owner.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own visits")
	}

	return visits, nil
}

// ListVisitsByPet returns the visits recorded for the given pet.
func (srv *visitService) ListVisitsByPet(ctx context.Context, identity *entity.Identity, petID uuid.UUID) ([]*entity.Visit, error) {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionRead, entity.ResourcePet, petID); err != nil {
		return nil, err
	}

	visits, err := srv.visitRepo.FindByPetID(ctx, petID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits by pet")
	}

	return visits, nil
}

// GetVisit returns a single visit by ID.
func (srv *visitService) GetVisit(ctx context.Context, identity *entity.Identity, visitID uuid.UUID) (*entity.Visit, error) {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionRead, entity.ResourceVisit, visitID); err != nil {
		return nil, err
	}

	visit, err := srv.visitRepo.FindByID(ctx, visitID)
	if err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("visit not found")
		}

		return nil, errors.Wrap(err, "failed to load visit")
	}

	return visit, nil
}

// CreateVisit books a new visit. The pet must be accessible to the caller
// and both the pet and the vet must exist. New visits start UPCOMING.
func (srv *visitService) CreateVisit(ctx context.Context, identity *entity.Identity, input *usecase.CreateVisitInput) (*entity.Visit, error) {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionCreate, entity.ResourcePet, input.PetID); err != nil {
		return nil, err
	}

	if _, err := srv.petRepo.FindByID(ctx, input.PetID); err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("pet not found")
		}

		return nil, errors.Wrap(err, "failed to load pet for visit creation")
	}
	if _, err := srv.vetRepo.FindByID(ctx, input.VetID); err != nil {
		if errors.Is(err, repository.ErrVetNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("vet not found")
		}

		return nil, errors.Wrap(err, "failed to load vet for visit creation")
	}

	newVisit := &entity.Visit{
		PetID:       input.PetID,
		VetID:       input.VetID,
		VisitDate:   input.VisitDate,
		Description: input.Description,
		Status:      entity.VisitStatusUpcoming,
	}
	if err := srv.visitRepo.Create(ctx, newVisit); err != nil {
		srv.log(ctx).Warn("Failed to create visit", slog.Any("petID", input.PetID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create visit")
	}

	return newVisit, nil
}

// UpdateVisit updates a visit. Vet, date and description are reassignable
// only while the visit is UPCOMING; a status change must follow the state
// machine.
func (srv *visitService) UpdateVisit(ctx context.Context, identity *entity.Identity, visitID uuid.UUID, input *usecase.UpdateVisitInput) (*entity.Visit, error) {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionUpdate, entity.ResourceVisit, visitID); err != nil {
		return nil, err
	}

	visit, err := srv.visitRepo.FindByID(ctx, visitID)
	if err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("visit not found")
		}

		return nil, errors.Wrap(err, "failed to load visit for update")
	}

	reassigning := input.VetID != nil || input.VisitDate != nil || input.Description != nil
	if reassigning && visit.Status.IsTerminal() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("completed or cancelled visits cannot be changed")
	}

	if input.VetID != nil {
		if _, err := srv.vetRepo.FindByID(ctx, *input.VetID); err != nil {
			if errors.Is(err, repository.ErrVetNotFound) {
				return nil, domainerrors.ErrNotFound.WrapMessage("vet not found")
			}

			return nil, errors.Wrap(err, "failed to load vet for visit update")
		}
		visit.VetID = *input.VetID
	}
	if input.VisitDate != nil {
		visit.VisitDate = *input.VisitDate
	}
	if input.Description != nil {
		visit.Description = *input.Description
	}
	if input.Status != nil {
		if err := visit.TransitionTo(*input.Status); err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid visit status transition")
		}
	}

	if err := srv.visitRepo.Update(ctx, visit); err != nil {
		return nil, errors.Wrap(err, "failed to update visit")
	}

	return visit, nil
}

// DeleteVisit removes a single visit record.
func (srv *visitService) DeleteVisit(ctx context.Context, identity *entity.Identity, visitID uuid.UUID) error {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionDelete, entity.ResourceVisit, visitID); err != nil {
		return err
	}

	if _, err := srv.visitRepo.FindByID(ctx, visitID); err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("visit not found")
		}

		return errors.Wrap(err, "failed to load visit for deletion")
	}

	if err := srv.visitRepo.Delete(ctx, visitID); err != nil {
		srv.log(ctx).Error("Failed to delete visit", slog.Any("visitID", visitID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete visit")
	}

	srv.log(ctx).Info("Visit deleted", slog.Any("visitID", visitID))

	return nil
}
