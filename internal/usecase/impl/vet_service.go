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

// vetService implements the VetUsecase interface.
type vetService struct {
	vetRepo repository.VetRepository
	authz   usecase.AuthzUsecase
	logger  *slog.Logger
}

// VetServiceParams holds dependencies for vetService, injected by Fx.
type VetServiceParams struct {
	fx.In

	VetRepo repository.VetRepository
	Authz   usecase.AuthzUsecase
	Logger  *slog.Logger
}

// NewVetService is the constructor for vetService.
func NewVetService(params VetServiceParams) usecase.VetUsecase {
	return &vetService{
		vetRepo: params.VetRepo,
		authz:   params.Authz,
		logger:  params.Logger,
	}
}

func (srv *vetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListVets returns every vet. The directory is visible to any
// authenticated caller.
func (srv *vetService) ListVets(ctx context.Context, _ *entity.Identity) ([]*entity.Vet, error) {
	vets, err := srv.vetRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vets")
	}

	return vets, nil
}

// GetVet returns a single vet by ID.
func (srv *vetService) GetVet(ctx context.Context, _ *entity.Identity, vetID uuid.UUID) (*entity.Vet, error) {
	vet, err := srv.vetRepo.FindByID(ctx, vetID)
	if err != nil {
		if errors.Is(err, repository.ErrVetNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("vet not found")
		}

		return nil, errors.Wrap(err, "failed to load vet")
	}

	return vet, nil
}

// CreateVet registers a new vet.
func (srv *vetService) CreateVet(ctx context.Context, identity *entity.Identity, input *usecase.CreateVetInput) (*entity.Vet, error) {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionCreate, entity.ResourceVet, uuid.Nil); err != nil {
		return nil, err
	}

	newVet := &entity.Vet{
		Name:           input.Name,
		Email:          normalizeEmail(input.Email),
		Phone:          input.Phone,
		Specialization: input.Specialization,
	}
	if err := srv.vetRepo.Create(ctx, newVet); err != nil {
		srv.log(ctx).Warn("Failed to create vet", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create vet")
	}

	return newVet, nil
}

// UpdateVet updates a vet's mutable fields.
func (srv *vetService) UpdateVet(ctx context.Context, identity *entity.Identity, vetID uuid.UUID, input *usecase.UpdateVetInput) (*entity.Vet, error) {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionUpdate, entity.ResourceVet, vetID); err != nil {
		return nil, err
	}

	vet, err := srv.vetRepo.FindByID(ctx, vetID)
	if err != nil {
		if errors.Is(err, repository.ErrVetNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("vet not found")
		}

		return nil, errors.Wrap(err, "failed to load vet for update")
	}

	if input.Name != nil {
		vet.Name = *input.Name
	}
	if input.Email != nil {
		vet.Email = normalizeEmail(*input.Email)
	}
	if input.Phone != nil {
		vet.Phone = *input.Phone
	}
	if input.Specialization != nil {
		vet.Specialization = *input.Specialization
	}

	if err := srv.vetRepo.Update(ctx, vet); err != nil {
		return nil, errors.Wrap(err, "failed to update vet")
	}

	return vet, nil
}

// DeleteVet removes a vet record.
func (srv *vetService) DeleteVet(ctx context.Context, identity *entity.Identity, vetID uuid.UUID) error {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionDelete, entity.ResourceVet, vetID); err != nil {
		return err
	}

	if _, err := srv.vetRepo.FindByID(ctx, vetID); err != nil {
		if errors.Is(err, repository.ErrVetNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("vet not found")
		}

		return errors.Wrap(err, "failed to load vet for deletion")
	}

	if err := srv.vetRepo.Delete(ctx, vetID); err != nil {
		srv.log(ctx).Error("Failed to delete vet", slog.Any("vetID", vetID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete vet")
	}

	srv.log(ctx).Info("Vet deleted", slog.Any("vetID", vetID))

	return nil
}
