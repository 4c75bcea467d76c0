package handler

import (
	"time"

	"petclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// Response DTOs keep the wire shape independent of the domain entities and
// make sure the password hash never leaves the service.

// UserResponse is the outward shape of a user account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

// OwnerResponse is the outward shape of an owner profile.
type OwnerResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PetResponse is the outward shape of a pet.
type PetResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed"`
	BirthDate time.Time `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VisitResponse is the outward shape of a visit.
type VisitResponse struct {
	ID          uuid.UUID `json:"id"`
	PetID       uuid.UUID `json:"pet_id"`
	VetID       uuid.UUID `json:"vet_id"`
	VisitDate   time.Time `json:"visit_date"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VetResponse is the outward shape of a vet.
type VetResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Specialization string    `json:"specialization"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Roles:     user.Roles.ToStrings(),
		CreatedAt: user.CreatedAt,
	}
}

func toOwnerResponse(owner *entity.Owner) *OwnerResponse {
	return &OwnerResponse{
		ID:        owner.ID,
		UserID:    owner.UserID,
		Name:      owner.Name,
		Email:     owner.Email,
		Phone:     owner.Phone,
		Address:   owner.Address,
		CreatedAt: owner.CreatedAt,
		UpdatedAt: owner.UpdatedAt,
	}
}

func toOwnerResponses(owners []*entity.Owner) []*OwnerResponse {
	result := make([]*OwnerResponse, len(owners))
	for i, owner := range owners {
		result[i] = toOwnerResponse(owner)
	}

	return result
}

func toPetResponse(pet *entity.Pet) *PetResponse {
	return &PetResponse{
		ID:        pet.ID,
		OwnerID:   pet.OwnerID,
		Name:      pet.Name,
		Breed:     pet.Breed,
		BirthDate: pet.BirthDate,
		CreatedAt: pet.CreatedAt,
		UpdatedAt: pet.UpdatedAt,
	}
}

func toPetResponses(pets []*entity.Pet) []*PetResponse {
	result := make([]*PetResponse, len(pets))
	for i, pet := range pets {
		result[i] = toPetResponse(pet)
	}

	return result
}

func toVisitResponse(visit *entity.Visit) *VisitResponse {
	return &VisitResponse{
		ID:          visit.ID,
		PetID:       visit.PetID,
		VetID:       visit.VetID,
		VisitDate:   visit.VisitDate,
		Description: visit.Description,
		Status:      string(visit.Status),
		CreatedAt:   visit.CreatedAt,
		UpdatedAt:   visit.UpdatedAt,
	}
}

func toVisitResponses(visits []*entity.Visit) []*VisitResponse {
	result := make([]*VisitResponse, len(visits))
	for i, visit := range visits {
		result[i] = toVisitResponse(visit)
	}

	return result
}

func toVetResponse(vet *entity.Vet) *VetResponse {
	return &VetResponse{
		ID:             vet.ID,
		Name:           vet.Name,
		Email:          vet.Email,
		Phone:          vet.Phone,
		Specialization: vet.Specialization,
		CreatedAt:      vet.CreatedAt,
		UpdatedAt:      vet.UpdatedAt,
	}
}

func toVetResponses(vets []*entity.Vet) []*VetResponse {
	result := make([]*VetResponse, len(vets))
	for i, vet := range vets {
		result[i] = toVetResponse(vet)
	}

	return result
}
