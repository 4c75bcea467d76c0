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

// vetRepository implements the domain.VetRepository interface using GORM.
type vetRepository struct {
	db *gorm.DB
}

// NewVetRepository is the constructor for vetRepository.
func NewVetRepository(db *gorm.DB) repository.VetRepository {
	return &vetRepository{db: db}
}

// FindByID retrieves a single vet by their unique ID.
func (repo *vetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vet, error) {
	var vetM model.VetModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&vetM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVetNotFound
		}

		return nil, errors.Wrap(err, "failed to find vet by id")
	}

	return toVetDomain(&vetM), nil
}

// FindAll retrieves every vet.
func (repo *vetRepository) FindAll(ctx context.Context) ([]*entity.Vet, error) {
	var vetMs []model.VetModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&vetMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vets")
	}

	vets := make([]*entity.Vet, 0, len(vetMs))
	for i := range vetMs {
		vets = append(vets, toVetDomain(&vetMs[i]))
	}

	return vets, nil
}

// Create persists a new vet.
func (repo *vetRepository) Create(ctx context.Context, vet *entity.Vet) error {
	vetM := fromVetDomain(vet)

	if err := repo.db.WithContext(ctx).Create(vetM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required vet information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vet")
	}

	vet.ID = vetM.ID
	vet.CreatedAt = vetM.CreatedAt
	vet.UpdatedAt = vetM.UpdatedAt

	return nil
}

// Update modifies an existing vet.
func (repo *vetRepository) Update(ctx context.Context, vet *entity.Vet) error {
	err := repo.db.WithContext(ctx).
		Model(&model.VetModel{ID: vet.ID}).
		Updates(map[string]any{
			"name":           vet.Name,
			"email":          vet.Email,
			"phone":          vet.Phone,
			"specialization": vet.Specialization,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update vet")
	}

	return nil
}

// Delete removes the vet record.
func (repo *vetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VetModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete vet")
	}

	return nil
}

// toVetDomain converts a GORM VetModel to a domain Vet entity.
func toVetDomain(data *model.VetModel) *entity.Vet {
	if data == nil {
		return nil
	}

	return &entity.Vet{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		Specialization: data.Specialization,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromVetDomain converts a domain Vet entity to a GORM VetModel.
func fromVetDomain(data *entity.Vet) *model.VetModel {
	if data == nil {
		return nil
	}

	return &model.VetModel{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		Specialization: data.Specialization,
	}
}
