package handler

import (
	"log/slog"
	"net/http"
	"time"

	"petclinic/internal/delivery/http/middleware"
	"petclinic/internal/delivery/http/response"
	"petclinic/internal/domain/entity"
	"petclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VisitHandlerParams holds dependencies for VisitHandler, injected by Fx.
type VisitHandlerParams struct {
	fx.In

	VisitUC usecase.VisitUsecase
	Logger  *slog.Logger
}

// VisitHandler holds dependencies for visit-related handlers.
type VisitHandler struct {
	visitUC usecase.VisitUsecase
	logger  *slog.Logger
}

// NewVisitHandler is the constructor for VisitHandler.
func NewVisitHandler(params VisitHandlerParams) *VisitHandler {
	return &VisitHandler{
		visitUC: params.VisitUC,
		logger:  params.Logger,
	}
}

// CreateVisitRequest represents the request body for booking a visit.
type CreateVisitRequest struct {
	PetID       uuid.UUID `json:"pet_id" validate:"required"`
	VetID       uuid.UUID `json:"vet_id" validate:"required"`
	VisitDate   time.Time `json:"visit_date" validate:"required"`
	Description string    `json:"description" validate:"omitempty,max=1000"`
}

// UpdateVisitRequest represents a partial visit update.
type UpdateVisitRequest struct {
	VetID       *uuid.UUID `json:"vet_id"`
	VisitDate   *time.Time `json:"visit_date"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	Status      *string    `json:"status" validate:"omitempty,oneof=UPCOMING COMPLETED CANCELLED"`
}

// ListVisits returns every visit in the clinic.
func (h *VisitHandler) ListVisits(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	visits, err := h.visitUC.ListVisits(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVisitResponses(visits), "Visits retrieved successfully")
}

// ListMyVisits returns the visits booked for the caller's own pets.
func (h *VisitHandler) ListMyVisits(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	visits, err := h.visitUC.ListMyVisits(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVisitResponses(visits), "Visits retrieved successfully")
}

// ListVisitsByPet returns the visits of a single pet.
func (h *VisitHandler) ListVisitsByPet(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	petID, err := uuid.Parse(c.Param("petId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pet ID")
	}

	visits, err := h.visitUC.ListVisitsByPet(c.Request().Context(), identity, petID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVisitResponses(visits), "Visits retrieved successfully")
}

// GetVisit returns a single visit by ID.
func (h *VisitHandler) GetVisit(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid visit ID")
	}

	visit, err := h.visitUC.GetVisit(c.Request().Context(), identity, visitID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVisitResponse(visit), "Visit retrieved successfully")
}

// CreateVisit books a new visit.
func (h *VisitHandler) CreateVisit(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	var req CreateVisitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visit input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	visit, err := h.visitUC.CreateVisit(c.Request().Context(), identity, &usecase.CreateVisitInput{
		PetID:       req.PetID,
		VetID:       req.VetID,
		VisitDate:   req.VisitDate,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toVisitResponse(visit), "Visit created successfully")
}

// UpdateVisit updates a visit; a status change must follow the state machine.
func (h *VisitHandler) UpdateVisit(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid visit ID")
	}

	var req UpdateVisitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visit update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateVisitInput{
		VetID:       req.VetID,
		VisitDate:   req.VisitDate,
		Description: req.Description,
	}
	if req.Status != nil {
		status := entity.VisitStatus(*req.Status)
		input.Status = &status
	}

	visit, err := h.visitUC.UpdateVisit(c.Request().Context(), identity, visitID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVisitResponse(visit), "Visit updated successfully")
}

// DeleteVisit removes a visit record.
func (h *VisitHandler) DeleteVisit(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid visit ID")
	}

	if err := h.visitUC.DeleteVisit(c.Request().Context(), identity, visitID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Visit deleted"}, "Visit deleted successfully")
}
