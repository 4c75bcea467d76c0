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

// petService implements the PetUsecase interface.
type petService struct {
	txManager repository.TransactionManager
	petRepo   repository.PetRepository
	ownerRepo repository.OwnerRepository
	authz     usecase.AuthzUsecase
	logger    *slog.Logger
}

// PetServiceParams holds dependencies for petService, injected by Fx.
type PetServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PetRepo   repository.PetRepository
	OwnerRepo repository.OwnerRepository
	Authz     usecase.AuthzUsecase
	Logger    *slog.Logger
}

// NewPetService is the constructor for petService.
func NewPetService(params PetServiceParams) usecase.PetUsecase {
	return &petService{
		txManager: params.TxManager,
		petRepo:   params.PetRepo,
		ownerRepo: params.OwnerRepo,
		authz:     params.Authz,
		logger:    params.Logger,
	}
}

func (srv *petService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPets returns every pet in the clinic.
func (srv *petService) ListPets(ctx context.Context, identity *entity.Identity) ([]*entity.Pet, error) {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionRead, entity.ResourcePet, uuid.Nil); err != nil {
		return nil, err
	}

	pets, err := srv.petRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pets")
	}

	return pets, nil
}

// ListMyPets returns the pets of the caller's own owner profile.
func (srv *petService) ListMyPets(ctx context.Context, identity *entity.Identity) ([]*entity.Pet, error) {
	owner, err := srv.ownerRepo.FindByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("no owner profile for this account")
		}

		return nil, errors.Wrap(err, "failed to load own owner profile")
	}

	pets, err := srv.petRepo.FindByOwnerID(ctx, owner.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own pets")
	}

	return pets, nil
}

// ListPetsByOwner returns the pets belonging to the given owner.
func (srv *petService) ListPetsByOwner(ctx context.Context, identity *entity.Identity, ownerID uuid.UUID) ([]*entity.Pet, error) {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionRead, entity.ResourceOwner, ownerID); err != nil {
		return nil, err
	}

	pets, err := srv.petRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pets by owner")
	}

	return pets, nil
}

// GetPet returns a single pet by ID.
func (srv *petService) GetPet(ctx context.Context, identity *entity.Identity, petID uuid.UUID) (*entity.Pet, error) {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionRead, entity.ResourcePet, petID); err != nil {
		return nil, err
	}

	pet, err := srv.petRepo.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("pet not found")
		}

		return nil, errors.Wrap(err, "failed to load pet")
	}

	return pet, nil
}

// CreatePet registers a new pet under the given owner. A regular user may
// only create pets under their own profile.
func (srv *petService) CreatePet(ctx context.Context, identity *entity.Identity, ownerID uuid.UUID, input *usecase.CreatePetInput) (*entity.Pet, error) {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionCreate, entity.ResourceOwner, ownerID); err != nil {
		return nil, err
	}

	if _, err := srv.ownerRepo.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("owner not found")
		}

		return nil, errors.Wrap(err, "failed to load owner for pet creation")
	}

	newPet := &entity.Pet{
		OwnerID:   ownerID,
		Name:      input.Name,
		Breed:     input.Breed,
		BirthDate: input.BirthDate,
	}
	if err := srv.petRepo.Create(ctx, newPet); err != nil {
		srv.log(ctx).Warn("Failed to create pet", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create pet")
	}

	return newPet, nil
}

// UpdatePet updates a pet's mutable fields. Ownership never moves.
func (srv *petService) UpdatePet(ctx context.Context, identity *entity.Identity, petID uuid.UUID, input *usecase.UpdatePetInput) (*entity.Pet, error) {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionUpdate, entity.ResourcePet, petID); err != nil {
		return nil, err
	}

	pet, err := srv.petRepo.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("pet not found")
		}

		return nil, errors.Wrap(err, "failed to load pet for update")
	}

	if input.Name != nil {
		pet.Name = *input.Name
	}
	if input.Breed != nil {
		pet.Breed = *input.Breed
	}
	if input.BirthDate != nil {
		pet.BirthDate = *input.BirthDate
	}

	if err := srv.petRepo.Update(ctx, pet); err != nil {
		return nil, errors.Wrap(err, "failed to update pet")
	}

	return pet, nil
}

// DeletePet removes a pet together with its visits in one transaction.
func (srv *petService) DeletePet(ctx context.Context, identity *entity.Identity, petID uuid.UUID) error {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionDelete, entity.ResourcePet, petID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		petRepo := repoFactory.PetRepo()
		visitRepo := repoFactory.VisitRepo()

		if _, err := petRepo.FindByID(ctx, petID); err != nil {
			if errors.Is(err, repository.ErrPetNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("pet not found")
			}

			return errors.Wrap(err, "failed to load pet for deletion")
		}

		// Visits go first; a visit cannot outlive its pet.
		if err := visitRepo.DeleteByPetID(ctx, petID); err != nil {
			return errors.Wrap(err, "failed to delete pet visits")
		}

		return petRepo.Delete(ctx, petID)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete pet", slog.Any("petID", petID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Pet deleted", slog.Any("petID", petID))

	return nil
}
