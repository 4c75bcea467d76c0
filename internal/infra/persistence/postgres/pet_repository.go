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

// petRepository implements the domain.PetRepository interface using GORM.
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(db *gorm.DB) repository.PetRepository {
	return &petRepository{db: db}
}

// FindByID retrieves a single pet by its unique ID.
func (repo *petRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	var petM model.PetModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&petM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet by id")
	}

	return toPetDomain(&petM), nil
}

// FindByOwnerID retrieves all pets belonging to an owner.
func (repo *petRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pet, error) {
	var petMs []model.PetModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at").
		Find(&petMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pets by owner")
	}

	return toPetDomains(petMs), nil
}

// FindAll retrieves every pet.
func (repo *petRepository) FindAll(ctx context.Context) ([]*entity.Pet, error) {
	var petMs []model.PetModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&petMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pets")
	}

	return toPetDomains(petMs), nil
}

// Create persists a new pet.
func (repo *petRepository) Create(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	if err := repo.db.WithContext(ctx).Create(petM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required pet information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pet")
	}

	pet.ID = petM.ID
	pet.CreatedAt = petM.CreatedAt
	pet.UpdatedAt = petM.UpdatedAt

	return nil
}

// Update modifies an existing pet. Ownership does not move between owners.
func (repo *petRepository) Update(ctx context.Context, pet *entity.Pet) error {
	err := repo.db.WithContext(ctx).
		Model(&model.PetModel{ID: pet.ID}).
		Updates(map[string]any{
			"name":       pet.Name,
			"breed":      pet.Breed,
			"birth_date": pet.BirthDate,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update pet")
	}

	return nil
}

// Delete removes the pet record.
func (repo *petRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PetModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete pet")
	}

	return nil
}

// toPetDomain converts a GORM PetModel to a domain Pet entity.
func toPetDomain(data *model.PetModel) *entity.Pet {
	if data == nil {
		return nil
	}

	return &entity.Pet{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Breed:     data.Breed,
		BirthDate: data.BirthDate,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toPetDomains(data []model.PetModel) []*entity.Pet {
	pets := make([]*entity.Pet, 0, len(data))
	for i := range data {
		pets = append(pets, toPetDomain(&data[i]))
	}

	return pets
}

// fromPetDomain converts a domain Pet entity to a GORM PetModel.
func fromPetDomain(data *entity.Pet) *model.PetModel {
	if data == nil {
		return nil
	}

	return &model.PetModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Breed:     data.Breed,
		BirthDate: data.BirthDate,
	}
}
