package postgres

import (
	"context"

	"petclinic/internal/domain/entity"
	domainerrors "petclinic/internal/domain/errors"
	"petclinic/internal/domain/repository"
	"petclinic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ownerRepository implements the domain.OwnerRepository interface using GORM.
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository is the constructor for ownerRepository.
func NewOwnerRepository(db *gorm.DB) repository.OwnerRepository {
	return &ownerRepository{db: db}
}

// FindByID retrieves a single owner by their unique ID.
func (repo *ownerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error) {
	var ownerM model.OwnerModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&ownerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by id")
	}

	return toOwnerDomain(&ownerM), nil
}

// FindByUserID retrieves the owner profile linked to a user account.
func (repo *ownerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Owner, error) {
	var ownerM model.OwnerModel
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&ownerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by user id")
	}

	return toOwnerDomain(&ownerM), nil
}

// FindByUserEmail retrieves the owner linked to the account with the email.
func (repo *ownerRepository) FindByUserEmail(ctx context.Context, email string) (*entity.Owner, error) {
	var ownerM model.OwnerModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN users ON users.id = owners.user_id").
		Where("users.email = ?", email).
		First(&ownerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by user email")
	}

	return toOwnerDomain(&ownerM), nil
}

// FindAll retrieves every owner profile.
func (repo *ownerRepository) FindAll(ctx context.Context) ([]*entity.Owner, error) {
	var ownerMs []model.OwnerModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&ownerMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list owners")
	}

	owners := make([]*entity.Owner, 0, len(ownerMs))
	for i := range ownerMs {
		owners = append(owners, toOwnerDomain(&ownerMs[i]))
	}

	return owners, nil
}

// Create persists a new owner profile.
func (repo *ownerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	ownerM := fromOwnerDomain(owner)

	if err := repo.db.WithContext(ctx).Create(ownerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOwnerAlreadyLinked.WrapMessage("user already has an owner profile")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("linked user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create owner")
	}

	owner.ID = ownerM.ID
	owner.CreatedAt = ownerM.CreatedAt
	owner.UpdatedAt = ownerM.UpdatedAt

	return nil
}

// Update modifies an existing owner profile. The user link is immutable.
func (repo *ownerRepository) Update(ctx context.Context, owner *entity.Owner) error {
	err := repo.db.WithContext(ctx).
		Model(&model.OwnerModel{ID: owner.ID}).
		Updates(map[string]any{
			"name":    owner.Name,
			"email":   owner.Email,
			"phone":   owner.Phone,
			"address": owner.Address,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update owner")
	}

	return nil
}

// Delete removes the owner record.
func (repo *ownerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OwnerModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete owner")
	}

	return nil
}

// toOwnerDomain converts a GORM OwnerModel to a domain Owner entity.
func toOwnerDomain(data *model.OwnerModel) *entity.Owner {
	if data == nil {
		return nil
	}

	return &entity.Owner{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromOwnerDomain converts a domain Owner entity to a GORM OwnerModel.
func fromOwnerDomain(data *entity.Owner) *model.OwnerModel {
	if data == nil {
		return nil
	}

	return &model.OwnerModel{
		ID:      data.ID,
		UserID:  data.UserID,
		Name:    data.Name,
		Email:   data.Email,
		Phone:   data.Phone,
		Address: data.Address,
	}
}
