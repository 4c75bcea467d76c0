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

// visitRepository implements the domain.VisitRepository interface using GORM.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{db: db}
}

// FindByID retrieves a single visit by its unique ID.
func (repo *visitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	var visitM model.VisitModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&visitM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find visit by id")
	}

	return toVisitDomain(&visitM), nil
}

// FindByPetID retrieves all visits recorded for a pet.
func (repo *visitRepository) FindByPetID(ctx context.Context, petID uuid.UUID) ([]*entity.Visit, error) {
	var visitMs []model.VisitModel
	err := repo.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("visit_date").
		Find(&visitMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits by pet")
	}

	return toVisitDomains(visitMs), nil
}

// FindByOwnerID retrieves all visits for every pet of an owner.
func (repo *visitRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Visit, error) {
	var visitMs []model.VisitModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN pets ON pets.id = visits.pet_id").
		Where("pets.owner_id = ?", ownerID).
		Order("visits.visit_date").
		Find(&visitMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits by owner")
	}

	return toVisitDomains(visitMs), nil
}

// FindAll retrieves every visit.
func (repo *visitRepository) FindAll(ctx context.Context) ([]*entity.Visit, error) {
	var visitMs []model.VisitModel
	if err := repo.db.WithContext(ctx).Order("visit_date").Find(&visitMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list visits")
	}

	return toVisitDomains(visitMs), nil
}

// Create persists a new visit.
func (repo *visitRepository) Create(ctx context.Context, visit *entity.Visit) error {
	visitM := fromVisitDomain(visit)

	if err := repo.db.WithContext(ctx).Create(visitM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("pet or vet does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required visit information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visit")
	}

	visit.ID = visitM.ID
	visit.CreatedAt = visitM.CreatedAt
	visit.UpdatedAt = visitM.UpdatedAt

	return nil
}

// Update modifies an existing visit.
func (repo *visitRepository) Update(ctx context.Context, visit *entity.Visit) error {
	err := repo.db.WithContext(ctx).
		Model(&model.VisitModel{ID: visit.ID}).
		Updates(map[string]any{
			"vet_id":      visit.VetID,
			"visit_date":  visit.VisitDate,
			"description": visit.Description,
			"status":      string(visit.Status),
		}).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("vet does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update visit")
	}

	return nil
}

// Delete removes a single visit record.
func (repo *visitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VisitModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete visit")
	}

	return nil
}

// DeleteByPetID removes every visit of a pet.
func (repo *visitRepository) DeleteByPetID(ctx context.Context, petID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Delete(&model.VisitModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete visits by pet")
	}

	return nil
}

// toVisitDomain converts a GORM VisitModel to a domain Visit entity.
func toVisitDomain(data *model.VisitModel) *entity.Visit {
	if data == nil {
		return nil
	}

	return &entity.Visit{
		ID:          data.ID,
		PetID:       data.PetID,
		VetID:       data.VetID,
		VisitDate:   data.VisitDate,
		Description: data.Description,
		Status:      entity.VisitStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toVisitDomains(data []model.VisitModel) []*entity.Visit {
	visits := make([]*entity.Visit, 0, len(data))
	for i := range data {
		visits = append(visits, toVisitDomain(&data[i]))
	}

	return visits
}

// fromVisitDomain converts a domain Visit entity to a GORM VisitModel.
func fromVisitDomain(data *entity.Visit) *model.VisitModel {
	if data == nil {
		return nil
	}

	return &model.VisitModel{
		ID:          data.ID,
		PetID:       data.PetID,
		VetID:       data.VetID,
		VisitDate:   data.VisitDate,
		Description: data.Description,
		Status:      string(data.Status),
	}
}
