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

// ownerService implements the OwnerUsecase interface.
type ownerService struct {
	txManager repository.TransactionManager
	ownerRepo repository.OwnerRepository
	userRepo  repository.UserRepository
	authz     usecase.AuthzUsecase
	logger    *slog.Logger
}

// OwnerServiceParams holds dependencies for ownerService, injected by Fx.
type OwnerServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OwnerRepo repository.OwnerRepository
	UserRepo  repository.UserRepository
	Authz     usecase.AuthzUsecase
	Logger    *slog.Logger
}

// NewOwnerService is the constructor for ownerService.
func NewOwnerService(params OwnerServiceParams) usecase.OwnerUsecase {
	return &ownerService{
		txManager: params.TxManager,
		ownerRepo: params.OwnerRepo,
		userRepo:  params.UserRepo,
		authz:     params.Authz,
		logger:    params.Logger,
	}
}

func (srv *ownerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMyOwner returns the caller's own profile; no authorization round-trip
// is needed because the lookup is keyed by the caller's user ID.
func (srv *ownerService) GetMyOwner(ctx context.Context, identity *entity.Identity) (*entity.Owner, error) {
	owner, err := srv.ownerRepo.FindByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("no owner profile for this account")
		}

		return nil, errors.Wrap(err, "failed to load own owner profile")
	}

	return owner, nil
}

// UpdateMyOwner updates the caller's own profile. The contact email is not
// self-serviceable; only an admin may change it through UpdateOwner.
func (srv *ownerService) UpdateMyOwner(ctx context.Context, identity *entity.Identity, input *usecase.UpdateOwnerInput) (*entity.Owner, error) {
	owner, err := srv.GetMyOwner(ctx, identity)
	if err != nil {
		return nil, err
	}

	return srv.applyOwnerUpdate(ctx, owner, &usecase.UpdateOwnerInput{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
	})
}

// ListOwners returns every owner profile.
func (srv *ownerService) ListOwners(ctx context.Context, identity *entity.Identity) ([]*entity.Owner, error) {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionRead, entity.ResourceOwner, uuid.Nil); err != nil {
		return nil, err
	}

	owners, err := srv.ownerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owners")
	}

	return owners, nil
}

// GetOwner returns a single owner profile by ID.
func (srv *ownerService) GetOwner(ctx context.Context, identity *entity.Identity, ownerID uuid.UUID) (*entity.Owner, error) {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionRead, entity.ResourceOwner, ownerID); err != nil {
		return nil, err
	}

	owner, err := srv.ownerRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("owner not found")
		}

		return nil, errors.Wrap(err, "failed to load owner")
	}

	return owner, nil
}

// GetOwnerByUserEmail returns the owner linked to the account with the email.
func (srv *ownerService) GetOwnerByUserEmail(ctx context.Context, identity *entity.Identity, email string) (*entity.Owner, error) {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionRead, entity.ResourceOwner, uuid.Nil); err != nil {
		return nil, err
	}

	owner, err := srv.ownerRepo.FindByUserEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("owner not found")
		}

		return nil, errors.Wrap(err, "failed to load owner by user email")
	}

	return owner, nil
}

// CreateOwner creates an owner profile, optionally linked to an existing
// account. A duplicate link is rejected.
func (srv *ownerService) CreateOwner(ctx context.Context, identity *entity.Identity, input *usecase.CreateOwnerInput) (*entity.Owner, error) {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionCreate, entity.ResourceOwner, uuid.Nil); err != nil {
		return nil, err
	}

	newOwner := &entity.Owner{
		Name:    input.Name,
		Email:   normalizeEmail(input.Email),
		Phone:   input.Phone,
		Address: input.Address,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		ownerRepo := repoFactory.OwnerRepo()

		if input.UserID == nil {
			return domainerrors.ErrValidationFailed.WrapMessage("owner profile requires a user link")
		}

		if _, err := userRepo.FindByID(ctx, *input.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("linked user not found")
			}

			return errors.Wrap(err, "failed to load user for owner link")
		}

		if _, err := ownerRepo.FindByUserID(ctx, *input.UserID); err == nil {
			return domainerrors.ErrOwnerAlreadyLinked.WrapMessage("user already has an owner profile")
		} else if !errors.Is(err, repository.ErrOwnerNotFound) {
			return errors.Wrap(err, "failed to check existing owner link")
		}

		newOwner.UserID = *input.UserID

		return ownerRepo.Create(ctx, newOwner)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create owner", slog.Any("error", err))

		return nil, err
	}

	return newOwner, nil
}

// UpdateOwner updates an owner profile by ID.
func (srv *ownerService) UpdateOwner(ctx context.Context, identity *entity.Identity, ownerID uuid.UUID, input *usecase.UpdateOwnerInput) (*entity.Owner, error) {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionUpdate, entity.ResourceOwner, ownerID); err != nil {
		return nil, err
	}

	owner, err := srv.ownerRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("owner not found")
		}

		return nil, errors.Wrap(err, "failed to load owner for update")
	}

	return srv.applyOwnerUpdate(ctx, owner, input)
}

func (srv *ownerService) applyOwnerUpdate(ctx context.Context, owner *entity.Owner, input *usecase.UpdateOwnerInput) (*entity.Owner, error) {
	if input.Name != nil {
		owner.Name = *input.Name
	}
	if input.Email != nil {
		owner.Email = normalizeEmail(*input.Email)
	}
	if input.Phone != nil {
		owner.Phone = *input.Phone
	}
	if input.Address != nil {
		owner.Address = *input.Address
	}

	if err := srv.ownerRepo.Update(ctx, owner); err != nil {
		srv.log(ctx).Error("Failed to update owner", slog.Any("ownerID", owner.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update owner")
	}

	return owner, nil
}
