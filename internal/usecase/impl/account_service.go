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

// accountService implements the AccountUsecase interface: the cascading
// removal of an account and everything it transitively owns.
type accountService struct {
	txManager repository.TransactionManager
	ownerRepo repository.OwnerRepository
	authz     usecase.AuthzUsecase
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OwnerRepo repository.OwnerRepository
	Authz     usecase.AuthzUsecase
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		ownerRepo: params.OwnerRepo,
		authz:     params.Authz,
		logger:    params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DeleteAccount removes the account with the given user ID and everything
// it transitively owns, in one transaction.
func (srv *accountService) DeleteAccount(ctx context.Context, identity *entity.Identity, userID uuid.UUID) error {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionDeleteCascade, entity.ResourceUser, userID); err != nil {
		return err
	}

	return srv.eraseAccount(ctx, userID)
}

// DeleteOwnerWithUser removes the account linked to the given owner profile.
func (srv *accountService) DeleteOwnerWithUser(ctx context.Context, identity *entity.Identity, ownerID uuid.UUID) error {
	if err := srv.authz.Authorize(ctx, identity, entity.ActionDeleteCascade, entity.ResourceOwner, ownerID); err != nil {
		return err
	}

	owner, err := srv.ownerRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("owner not found")
		}

		return errors.Wrap(err, "failed to load owner for cascading delete")
	}

	return srv.eraseAccount(ctx, owner.UserID)
}

// eraseAccount performs the cascade inside a single transaction, bottom-up:
// each pet's visits, then the pet, then the owner profile, then the role
// associations, then the user. Any failure rolls the whole cascade back.
func (srv *accountService) eraseAccount(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Starting cascading account delete", slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		ownerRepo := repoFactory.OwnerRepo()
		petRepo := repoFactory.PetRepo()
		visitRepo := repoFactory.VisitRepo()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Already gone; repeating the delete is a plain not-found.
				return domainerrors.ErrNotFound.WrapMessage("account not found")
			}

			return errors.Wrap(err, "failed to load user for cascading delete")
		}

		owner, err := ownerRepo.FindByUserID(ctx, userID)
		if err != nil && !errors.Is(err, repository.ErrOwnerNotFound) {
			return errors.Wrap(err, "failed to load owner for cascading delete")
		}

		// Admin accounts legitimately have no owner profile.
		if owner != nil {
			pets, err := petRepo.FindByOwnerID(ctx, owner.ID)
			if err != nil {
				return errors.Wrap(err, "failed to list pets for cascading delete")
			}

			for _, pet := range pets {
				if err := visitRepo.DeleteByPetID(ctx, pet.ID); err != nil {
					return errors.Wrap(err, "failed to delete pet visits during cascade")
				}
				if err := petRepo.Delete(ctx, pet.ID); err != nil {
					return errors.Wrap(err, "failed to delete pet during cascade")
				}
			}

			if err := ownerRepo.Delete(ctx, owner.ID); err != nil {
				return errors.Wrap(err, "failed to delete owner during cascade")
			}
		}

		if err := userRepo.DeleteRoleAssociations(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete role associations during cascade")
		}

		return userRepo.Delete(ctx, userID)
	})
	if err != nil {
		srv.log(ctx).Warn("Cascading account delete failed", slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Cascading account delete completed", slog.Any("userID", userID))

	return nil
}
