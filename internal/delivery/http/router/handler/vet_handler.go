package handler

import (
	"log/slog"
	"net/http"

	"petclinic/internal/delivery/http/middleware"
	"petclinic/internal/delivery/http/response"
	"petclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VetHandlerParams holds dependencies for VetHandler, injected by Fx.
type VetHandlerParams struct {
	fx.In

	VetUC  usecase.VetUsecase
	Logger *slog.Logger
}

// VetHandler holds dependencies for vet-related handlers.
type VetHandler struct {
	vetUC  usecase.VetUsecase
	logger *slog.Logger
}

// NewVetHandler is the constructor for VetHandler.
func NewVetHandler(params VetHandlerParams) *VetHandler {
	return &VetHandler{
		vetUC:  params.VetUC,
		logger: params.Logger,
	}
}

// CreateVetRequest represents the request body for registering a vet.
type CreateVetRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"omitempty,max=32"`
	Specialization string `json:"specialization" validate:"omitempty,max=100"`
}

// UpdateVetRequest represents a partial vet update.
type UpdateVetRequest struct {
	Name           *string `json:"name" validate:"omitempty,max=100"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone" validate:"omitempty,max=32"`
	Specialization *string `json:"specialization" validate:"omitempty,max=100"`
}

// ListVets returns the vet directory.
func (h *VetHandler) ListVets(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	vets, err := h.vetUC.ListVets(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVetResponses(vets), "Vets retrieved successfully")
}

// GetVet returns a single vet by ID.
func (h *VetHandler) GetVet(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	vetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vet ID")
	}

	vet, err := h.vetUC.GetVet(c.Request().Context(), identity, vetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVetResponse(vet), "Vet retrieved successfully")
}

// CreateVet registers a new vet.
func (h *VetHandler) CreateVet(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	var req CreateVetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vet input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	vet, err := h.vetUC.CreateVet(c.Request().Context(), identity, &usecase.CreateVetInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Specialization: req.Specialization,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toVetResponse(vet), "Vet created successfully")
}

// UpdateVet updates a vet's mutable fields.
func (h *VetHandler) UpdateVet(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	vetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vet ID")
	}

	var req UpdateVetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vet update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	vet, err := h.vetUC.UpdateVet(c.Request().Context(), identity, vetID, &usecase.UpdateVetInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Specialization: req.Specialization,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVetResponse(vet), "Vet updated successfully")
}

// DeleteVet removes a vet record.
func (h *VetHandler) DeleteVet(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	vetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vet ID")
	}

	if err := h.vetUC.DeleteVet(c.Request().Context(), identity, vetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Vet deleted"}, "Vet deleted successfully")
}
