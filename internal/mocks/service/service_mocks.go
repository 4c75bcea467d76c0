// Package service provides hand-written testify mocks for the domain
// service interfaces, used by the usecase tests.
package service

import (
	"testing"
	"time"

	"petclinic/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

func registerCleanup(t *testing.T, m *mock.Mock) {
	t.Helper()
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	registerCleanup(t, &m.Mock)

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	registerCleanup(t, &m.Mock)

	return m
}

func (m *MockTokenService) Issue(identity *entity.Identity) (string, error) {
	args := m.Called(identity)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Decode(tokenString string) (*entity.Identity, error) {
	args := m.Called(tokenString)
	if identity, ok := args.Get(0).(*entity.Identity); ok {
		return identity, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) AccessTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
