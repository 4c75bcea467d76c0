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

// OwnerHandlerParams holds dependencies for OwnerHandler, injected by Fx.
type OwnerHandlerParams struct {
	fx.In

	OwnerUC   usecase.OwnerUsecase
	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// OwnerHandler holds dependencies for owner-profile handlers.
type OwnerHandler struct {
	ownerUC   usecase.OwnerUsecase
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewOwnerHandler is the constructor for OwnerHandler.
func NewOwnerHandler(params OwnerHandlerParams) *OwnerHandler {
	return &OwnerHandler{
		ownerUC:   params.OwnerUC,
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// CreateOwnerRequest represents the request body for an admin-created owner.
type CreateOwnerRequest struct {
	Name    string     `json:"name" validate:"required,max=100"`
	Email   string     `json:"email" validate:"required,email"`
	Phone   string     `json:"phone" validate:"omitempty,max=32"`
	Address string     `json:"address" validate:"omitempty,max=255"`
	UserID  *uuid.UUID `json:"user_id" validate:"required"`
}

// UpdateOwnerRequest represents a partial owner update.
type UpdateOwnerRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=100"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=32"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}

// GetMyOwner returns the caller's own owner profile.
func (h *OwnerHandler) GetMyOwner(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	owner, err := h.ownerUC.GetMyOwner(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOwnerResponse(owner), "Owner profile retrieved successfully")
}

// UpdateMyOwner updates the caller's own owner profile.
func (h *OwnerHandler) UpdateMyOwner(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	var req UpdateOwnerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid owner update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	// The contact email is admin-managed and ignored on the self route.
	owner, err := h.ownerUC.UpdateMyOwner(c.Request().Context(), identity, &usecase.UpdateOwnerInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOwnerResponse(owner), "Owner profile updated successfully")
}

// ListOwners returns every owner profile.
func (h *OwnerHandler) ListOwners(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	owners, err := h.ownerUC.ListOwners(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOwnerResponses(owners), "Owners retrieved successfully")
}

// GetOwner returns a single owner profile by ID.
func (h *OwnerHandler) GetOwner(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	owner, err := h.ownerUC.GetOwner(c.Request().Context(), identity, ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOwnerResponse(owner), "Owner retrieved successfully")
}

// GetOwnerByUserEmail returns the owner linked to the account with the given
// login email.
func (h *OwnerHandler) GetOwnerByUserEmail(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	owner, err := h.ownerUC.GetOwnerByUserEmail(c.Request().Context(), identity, c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOwnerResponse(owner), "Owner retrieved successfully")
}

// CreateOwner creates an owner profile linked to an existing account.
func (h *OwnerHandler) CreateOwner(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	var req CreateOwnerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid owner input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	owner, err := h.ownerUC.CreateOwner(c.Request().Context(), identity, &usecase.CreateOwnerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		UserID:  req.UserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOwnerResponse(owner), "Owner created successfully")
}

// UpdateOwner updates an owner profile by ID.
func (h *OwnerHandler) UpdateOwner(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	var req UpdateOwnerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid owner update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	owner, err := h.ownerUC.UpdateOwner(c.Request().Context(), identity, ownerID, &usecase.UpdateOwnerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOwnerResponse(owner), "Owner updated successfully")
}

// DeleteOwnerWithUser removes the owner profile together with its linked
// account and everything the account transitively owns.
func (h *OwnerHandler) DeleteOwnerWithUser(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	if err := h.accountUC.DeleteOwnerWithUser(c.Request().Context(), identity, ownerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account deleted"}, "Owner and linked account deleted successfully")
}

// DeleteAccount removes a user account and everything it transitively owns.
func (h *OwnerHandler) DeleteAccount(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), identity, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account deleted"}, "Account deleted successfully")
}
