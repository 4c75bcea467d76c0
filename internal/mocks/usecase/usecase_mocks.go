// Package usecase provides hand-written testify mocks for the usecase
// interfaces needed by other usecase and delivery tests.
package usecase

import (
	"context"
	"testing"

	"petclinic/internal/domain/entity"
	appusecase "petclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase mocks usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *appusecase.RegisterInput) (*appusecase.RegisterOutput, error) {
	args := m.Called(ctx, input)

	output, _ := args.Get(0).(*appusecase.RegisterOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *appusecase.LoginInput) (*appusecase.LoginOutput, error) {
	args := m.Called(ctx, input)

	output, _ := args.Get(0).(*appusecase.LoginOutput)

	return output, args.Error(1)
}

// MockAuthzUsecase mocks usecase.AuthzUsecase.
type MockAuthzUsecase struct {
	mock.Mock
}

func NewMockAuthzUsecase(t *testing.T) *MockAuthzUsecase {
	m := &MockAuthzUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthzUsecase) Authorize(ctx context.Context, identity *entity.Identity, action entity.Action, resource entity.ResourceType, resourceID uuid.UUID) error {
	args := m.Called(ctx, identity, action, resource, resourceID)

	return args.Error(0)
}

func (m *MockAuthzUsecase) OwnsTransitively(ctx context.Context, identity *entity.Identity, resource entity.ResourceType, resourceID uuid.UUID) (bool, error) {
	args := m.Called(ctx, identity, resource, resourceID)

	return args.Bool(0), args.Error(1)
}
