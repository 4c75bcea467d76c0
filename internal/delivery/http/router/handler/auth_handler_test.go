package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"petclinic/internal/delivery/http/middleware"
	"petclinic/internal/delivery/http/validator"
	"petclinic/internal/domain/entity"
	domainerrors "petclinic/internal/domain/errors"
	mockUC "petclinic/internal/mocks/usecase"
	"petclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestServer(t *testing.T) (*echo.Echo, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := &AuthHandler{authUC: authUC, logger: logger}
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)

	return e, authUC
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e, authUC := newAuthTestServer(t)

	userID := uuid.New()
	authUC.On("Register", mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.RegisterOutput{
			User: &entity.User{
				ID:           userID,
				Email:        "owner@example.com",
				Name:         "Alice",
				PasswordHash: "secret-hash",
				Roles:        entity.Roles{entity.RoleUser},
			},
			Owner: &entity.Owner{ID: uuid.New(), UserID: userID, Name: "Alice"},
		}, nil)

	rec := postJSON(e, "/auth/register",
		`{"name":"Alice","email":"owner@example.com","password":"Password123!"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "owner@example.com")
	// The stored hash must never serialize outward.
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestAuthHandler_Register_DuplicateEmailIsBadRequest(t *testing.T) {
	e, authUC := newAuthTestServer(t)

	authUC.On("Register", mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("register"))

	rec := postJSON(e, "/auth/register",
		`{"name":"Alice","email":"owner@example.com","password":"Password123!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE_EMAIL")
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e, authUC := newAuthTestServer(t)

	rec := postJSON(e, "/auth/register", `{"name":"Alice","email":"not-an-email","password":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	authUC.AssertNotCalled(t, "Register")
}

func TestAuthHandler_Login_ReturnsExpiry(t *testing.T) {
	e, authUC := newAuthTestServer(t)

	authUC.On("Login", mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{
			AccessToken: "signed.token.value",
			ExpiresIn:   24 * time.Hour,
			User: &entity.User{
				ID:    uuid.New(),
				Email: "owner@example.com",
				Roles: entity.Roles{entity.RoleUser},
			},
		}, nil)

	rec := postJSON(e, "/auth/login",
		`{"email":"owner@example.com","password":"Password123!"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"signed.token.value"`)
	assert.Contains(t, rec.Body.String(), `"expires_in":86400`)
}
