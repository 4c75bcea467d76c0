// Package repository provides hand-written testify mocks for the domain
// repository interfaces, used by the usecase tests.
package repository

import (
	"context"
	"testing"

	"petclinic/internal/domain/entity"
	"petclinic/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func registerCleanup(t *testing.T, m *mock.Mock) {
	t.Helper()
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	registerCleanup(t, &m.Mock)

	return m
}

// Execute either returns the stubbed error or, when the stub is a function,
// runs it so tests can drive the transactional callback with a mock factory.
func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if rf, ok := args.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return args.Error(0)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	registerCleanup(t, &m.Mock)

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()

	return args.Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) OwnerRepo() repository.OwnerRepository {
	args := m.Called()

	return args.Get(0).(repository.OwnerRepository)
}

func (m *MockRepositoryFactory) PetRepo() repository.PetRepository {
	args := m.Called()

	return args.Get(0).(repository.PetRepository)
}

func (m *MockRepositoryFactory) VisitRepo() repository.VisitRepository {
	args := m.Called()

	return args.Get(0).(repository.VisitRepository)
}

func (m *MockRepositoryFactory) VetRepo() repository.VetRepository {
	args := m.Called()

	return args.Get(0).(repository.VetRepository)
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	registerCleanup(t, &m.Mock)

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) DeleteRoleAssociations(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

// MockOwnerRepository mocks repository.OwnerRepository.
type MockOwnerRepository struct {
	mock.Mock
}

func NewMockOwnerRepository(t *testing.T) *MockOwnerRepository {
	m := &MockOwnerRepository{}
	registerCleanup(t, &m.Mock)

	return m
}

func (m *MockOwnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error) {
	args := m.Called(ctx, id)
	if owner, ok := args.Get(0).(*entity.Owner); ok {
		return owner, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOwnerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Owner, error) {
	args := m.Called(ctx, userID)
	if owner, ok := args.Get(0).(*entity.Owner); ok {
		return owner, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOwnerRepository) FindByUserEmail(ctx context.Context, email string) (*entity.Owner, error) {
	args := m.Called(ctx, email)
	if owner, ok := args.Get(0).(*entity.Owner); ok {
		return owner, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOwnerRepository) FindAll(ctx context.Context) ([]*entity.Owner, error) {
	args := m.Called(ctx)
	if owners, ok := args.Get(0).([]*entity.Owner); ok {
		return owners, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOwnerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	args := m.Called(ctx, owner)

	return args.Error(0)
}

func (m *MockOwnerRepository) Update(ctx context.Context, owner *entity.Owner) error {
	args := m.Called(ctx, owner)

	return args.Error(0)
}

func (m *MockOwnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockPetRepository mocks repository.PetRepository.
type MockPetRepository struct {
	mock.Mock
}

func NewMockPetRepository(t *testing.T) *MockPetRepository {
	m := &MockPetRepository{}
	registerCleanup(t, &m.Mock)

	return m
}

func (m *MockPetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	args := m.Called(ctx, id)
	if pet, ok := args.Get(0).(*entity.Pet); ok {
		return pet, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPetRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pet, error) {
	args := m.Called(ctx, ownerID)
	if pets, ok := args.Get(0).([]*entity.Pet); ok {
		return pets, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPetRepository) FindAll(ctx context.Context) ([]*entity.Pet, error) {
	args := m.Called(ctx)
	if pets, ok := args.Get(0).([]*entity.Pet); ok {
		return pets, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPetRepository) Create(ctx context.Context, pet *entity.Pet) error {
	args := m.Called(ctx, pet)

	return args.Error(0)
}

func (m *MockPetRepository) Update(ctx context.Context, pet *entity.Pet) error {
	args := m.Called(ctx, pet)

	return args.Error(0)
}

func (m *MockPetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockVisitRepository mocks repository.VisitRepository.
type MockVisitRepository struct {
	mock.Mock
}

func NewMockVisitRepository(t *testing.T) *MockVisitRepository {
	m := &MockVisitRepository{}
	registerCleanup(t, &m.Mock)

	return m
}

func (m *MockVisitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	args := m.Called(ctx, id)
	if visit, ok := args.Get(0).(*entity.Visit); ok {
		return visit, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVisitRepository) FindByPetID(ctx context.Context, petID uuid.UUID) ([]*entity.Visit, error) {
	args := m.Called(ctx, petID)
	if visits, ok := args.Get(0).([]*entity.Visit); ok {
		return visits, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVisitRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Visit, error) {
	args := m.Called(ctx, ownerID)
	if visits, ok := args.Get(0).([]*entity.Visit); ok {
		return visits, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVisitRepository) FindAll(ctx context.Context) ([]*entity.Visit, error) {
	args := m.Called(ctx)
	if visits, ok := args.Get(0).([]*entity.Visit); ok {
		return visits, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVisitRepository) Create(ctx context.Context, visit *entity.Visit) error {
	args := m.Called(ctx, visit)

	return args.Error(0)
}

func (m *MockVisitRepository) Update(ctx context.Context, visit *entity.Visit) error {
	args := m.Called(ctx, visit)

	return args.Error(0)
}

func (m *MockVisitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockVisitRepository) DeleteByPetID(ctx context.Context, petID uuid.UUID) error {
	args := m.Called(ctx, petID)

	return args.Error(0)
}

// MockVetRepository mocks repository.VetRepository.
type MockVetRepository struct {
	mock.Mock
}

func NewMockVetRepository(t *testing.T) *MockVetRepository {
	m := &MockVetRepository{}
	registerCleanup(t, &m.Mock)

	return m
}

func (m *MockVetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vet, error) {
	args := m.Called(ctx, id)
	if vet, ok := args.Get(0).(*entity.Vet); ok {
		return vet, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVetRepository) FindAll(ctx context.Context) ([]*entity.Vet, error) {
	args := m.Called(ctx)
	if vets, ok := args.Get(0).([]*entity.Vet); ok {
		return vets, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVetRepository) Create(ctx context.Context, vet *entity.Vet) error {
	args := m.Called(ctx, vet)

	return args.Error(0)
}

func (m *MockVetRepository) Update(ctx context.Context, vet *entity.Vet) error {
	args := m.Called(ctx, vet)

	return args.Error(0)
}

func (m *MockVetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
