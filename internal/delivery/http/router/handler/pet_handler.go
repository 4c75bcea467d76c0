package handler

import (
	"log/slog"
	"net/http"
	"time"

	"petclinic/internal/delivery/http/middleware"
	"petclinic/internal/delivery/http/response"
	"petclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PetHandlerParams holds dependencies for PetHandler, injected by Fx.
type PetHandlerParams struct {
	fx.In

	PetUC  usecase.PetUsecase
	Logger *slog.Logger
}

// PetHandler holds dependencies for pet-related handlers.
type PetHandler struct {
	petUC  usecase.PetUsecase
	logger *slog.Logger
}

// NewPetHandler is the constructor for PetHandler.
func NewPetHandler(params PetHandlerParams) *PetHandler {
	return &PetHandler{
		petUC:  params.PetUC,
		logger: params.Logger,
	}
}

// CreatePetRequest represents the request body for registering a pet.
type CreatePetRequest struct {
	Name      string    `json:"name" validate:"required,max=100"`
	Breed     string    `json:"breed" validate:"omitempty,max=100"`
	BirthDate time.Time `json:"birth_date" validate:"omitempty"`
}

// UpdatePetRequest represents a partial pet update.
type UpdatePetRequest struct {
	Name      *string    `json:"name" validate:"omitempty,max=100"`
	Breed     *string    `json:"breed" validate:"omitempty,max=100"`
	BirthDate *time.Time `json:"birth_date"`
}

// ListPets returns every pet in the clinic.
func (h *PetHandler) ListPets(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	pets, err := h.petUC.ListPets(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPetResponses(pets), "Pets retrieved successfully")
}

// ListMyPets returns the caller's own pets.
func (h *PetHandler) ListMyPets(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	pets, err := h.petUC.ListMyPets(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPetResponses(pets), "Pets retrieved successfully")
}

// ListPetsByOwner returns the pets belonging to the given owner.
func (h *PetHandler) ListPetsByOwner(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	ownerID, err := uuid.Parse(c.Param("ownerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	pets, err := h.petUC.ListPetsByOwner(c.Request().Context(), identity, ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPetResponses(pets), "Pets retrieved successfully")
}

// GetPet returns a single pet by ID.
func (h *PetHandler) GetPet(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pet ID")
	}

	pet, err := h.petUC.GetPet(c.Request().Context(), identity, petID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPetResponse(pet), "Pet retrieved successfully")
}

// CreatePet registers a new pet under the given owner.
func (h *PetHandler) CreatePet(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	ownerID, err := uuid.Parse(c.Param("ownerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	var req CreatePetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pet input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	pet, err := h.petUC.CreatePet(c.Request().Context(), identity, ownerID, &usecase.CreatePetInput{
		Name:      req.Name,
		Breed:     req.Breed,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPetResponse(pet), "Pet created successfully")
}

// UpdatePet updates a pet's mutable fields.
func (h *PetHandler) UpdatePet(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pet ID")
	}

	var req UpdatePetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pet update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	pet, err := h.petUC.UpdatePet(c.Request().Context(), identity, petID, &usecase.UpdatePetInput{
		Name:      req.Name,
		Breed:     req.Breed,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPetResponse(pet), "Pet updated successfully")
}

// DeletePet removes a pet together with its visits.
func (h *PetHandler) DeletePet(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pet ID")
	}

	if err := h.petUC.DeletePet(c.Request().Context(), identity, petID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Pet deleted"}, "Pet deleted successfully")
}
