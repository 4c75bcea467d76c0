package impl

import (
	"context"
	"testing"
	"time"

	"petclinic/internal/domain/entity"
	domainerrors "petclinic/internal/domain/errors"
	"petclinic/internal/domain/repository"
	mockRepo "petclinic/internal/mocks/repository"
	mockUC "petclinic/internal/mocks/usecase"
	"petclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type visitFixtures struct {
	service   usecase.VisitUsecase
	authz     *mockUC.MockAuthzUsecase
	visitRepo *mockRepo.MockVisitRepository
	petRepo   *mockRepo.MockPetRepository
	vetRepo   *mockRepo.MockVetRepository
	ownerRepo *mockRepo.MockOwnerRepository
}

func createTestVisitService(t *testing.T) visitFixtures {
	authz := mockUC.NewMockAuthzUsecase(t)
	visitRepo := mockRepo.NewMockVisitRepository(t)
	petRepo := mockRepo.NewMockPetRepository(t)
	vetRepo := mockRepo.NewMockVetRepository(t)
	ownerRepo := mockRepo.NewMockOwnerRepository(t)

	service := &visitService{
		visitRepo: visitRepo,
		petRepo:   petRepo,
		vetRepo:   vetRepo,
		ownerRepo: ownerRepo,
		authz:     authz,
		logger:    newDiscardLogger(),
	}

	return visitFixtures{
		service:   service,
		authz:     authz,
		visitRepo: visitRepo,
		petRepo:   petRepo,
		vetRepo:   vetRepo,
		ownerRepo: ownerRepo,
	}
}

func TestVisitService_CreateVisit_StartsUpcoming(t *testing.T) {
	fx := createTestVisitService(t)
	ctx := context.Background()
	identity := userIdentity(uuid.New())

	petID := uuid.New()
	vetID := uuid.New()
	input := &usecase.CreateVisitInput{
		PetID:       petID,
		VetID:       vetID,
		VisitDate:   time.Now().Add(24 * time.Hour),
		Description: "annual checkup",
	}

	fx.authz.On("Authorize", ctx, identity, entity.ActionCreate, entity.ResourcePet, petID).Return(nil)
	fx.petRepo.On("FindByID", ctx, petID).Return(&entity.Pet{ID: petID}, nil)
	fx.vetRepo.On("FindByID", ctx, vetID).Return(&entity.Vet{ID: vetID}, nil)
	fx.visitRepo.On("Create", ctx, mock.AnythingOfType("*entity.Visit")).
		Run(func(args mock.Arguments) {
			visit := args.Get(1).(*entity.Visit)
			visit.ID = uuid.New()
		}).
		Return(nil)

	visit, err := fx.service.CreateVisit(ctx, identity, input)

	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusUpcoming, visit.Status)
}

func TestVisitService_CreateVisit_UnknownVet(t *testing.T) {
	fx := createTestVisitService(t)
	ctx := context.Background()
	identity := adminIdentity()

	petID := uuid.New()
	vetID := uuid.New()

	fx.authz.On("Authorize", ctx, identity, entity.ActionCreate, entity.ResourcePet, petID).Return(nil)
	fx.petRepo.On("FindByID", ctx, petID).Return(&entity.Pet{ID: petID}, nil)
	fx.vetRepo.On("FindByID", ctx, vetID).Return(nil, repository.ErrVetNotFound)

	visit, err := fx.service.CreateVisit(ctx, identity, &usecase.CreateVisitInput{PetID: petID, VetID: vetID})

	assert.Nil(t, visit)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestVisitService_UpdateVisit_StatusTransition(t *testing.T) {
	fx := createTestVisitService(t)
	ctx := context.Background()
	identity := adminIdentity()

	visitID := uuid.New()
	completed := entity.VisitStatusCompleted

	fx.authz.On("Authorize", ctx, identity, entity.ActionUpdate, entity.ResourceVisit, visitID).Return(nil)
	fx.visitRepo.On("FindByID", ctx, visitID).
		Return(&entity.Visit{ID: visitID, Status: entity.VisitStatusUpcoming}, nil)
	fx.visitRepo.On("Update", ctx, mock.AnythingOfType("*entity.Visit")).Return(nil)

	visit, err := fx.service.UpdateVisit(ctx, identity, visitID, &usecase.UpdateVisitInput{Status: &completed})

	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusCompleted, visit.Status)
}

func TestVisitService_UpdateVisit_TerminalStatusRejected(t *testing.T) {
	fx := createTestVisitService(t)
	ctx := context.Background()
	identity := adminIdentity()

	visitID := uuid.New()
	upcoming := entity.VisitStatusUpcoming

	fx.authz.On("Authorize", ctx, identity, entity.ActionUpdate, entity.ResourceVisit, visitID).Return(nil)
	fx.visitRepo.On("FindByID", ctx, visitID).
		Return(&entity.Visit{ID: visitID, Status: entity.VisitStatusCancelled}, nil)

	visit, err := fx.service.UpdateVisit(ctx, identity, visitID, &usecase.UpdateVisitInput{Status: &upcoming})

	assert.Nil(t, visit)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestVisitService_UpdateVisit_TerminalReassignmentRejected(t *testing.T) {
	fx := createTestVisitService(t)
	ctx := context.Background()
	identity := adminIdentity()

	visitID := uuid.New()
	newDate := time.Now().Add(48 * time.Hour)

	fx.authz.On("Authorize", ctx, identity, entity.ActionUpdate, entity.ResourceVisit, visitID).Return(nil)
	fx.visitRepo.On("FindByID", ctx, visitID).
		Return(&entity.Visit{ID: visitID, Status: entity.VisitStatusCompleted}, nil)

	visit, err := fx.service.UpdateVisit(ctx, identity, visitID, &usecase.UpdateVisitInput{VisitDate: &newDate})

	assert.Nil(t, visit)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestVisitService_DeleteVisit_AuthorizationFirst(t *testing.T) {
	fx := createTestVisitService(t)
	ctx := context.Background()
	identity := adminIdentity()

	visitID := uuid.New()

	fx.authz.On("Authorize", ctx, identity, entity.ActionDelete, entity.ResourceVisit, visitID).
		Return(domainerrors.ErrForbidden.WrapMessage("access denied"))

	err := fx.service.DeleteVisit(ctx, identity, visitID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestVisitService_ListMyVisits(t *testing.T) {
	fx := createTestVisitService(t)
	ctx := context.Background()

	userID := uuid.New()
	ownerID := uuid.New()
	identity := userIdentity(userID)

	fx.ownerRepo.On("FindByUserID", ctx, userID).
		Return(&entity.Owner{ID: ownerID, UserID: userID}, nil)
	fx.visitRepo.On("FindByOwnerID", ctx, ownerID).
		Return([]*entity.Visit{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	visits, err := fx.service.ListMyVisits(ctx, identity)

	require.NoError(t, err)
	assert.Len(t, visits, 2)
}
