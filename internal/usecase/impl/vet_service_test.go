package impl

import (
	"context"
	"testing"

	"petclinic/internal/domain/entity"
	domainerrors "petclinic/internal/domain/errors"
	mockRepo "petclinic/internal/mocks/repository"
	mockUC "petclinic/internal/mocks/usecase"
	"petclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type vetFixtures struct {
	service usecase.VetUsecase
	authz   *mockUC.MockAuthzUsecase
	vetRepo *mockRepo.MockVetRepository
}

func createTestVetService(t *testing.T) vetFixtures {
	authz := mockUC.NewMockAuthzUsecase(t)
	vetRepo := mockRepo.NewMockVetRepository(t)

	service := &vetService{
		vetRepo: vetRepo,
		authz:   authz,
		logger:  newDiscardLogger(),
	}

	return vetFixtures{service: service, authz: authz, vetRepo: vetRepo}
}

func TestVetService_ListVets_VisibleToRegularUser(t *testing.T) {
	fx := createTestVetService(t)
	ctx := context.Background()

	// The directory skips the authorization round-trip entirely.
	fx.vetRepo.On("FindAll", ctx).Return([]*entity.Vet{
		{ID: uuid.New(), Name: "Dr. Lin", Specialization: "Surgery"},
	}, nil)

	vets, err := fx.service.ListVets(ctx, userIdentity(uuid.New()))

	require.NoError(t, err)
	assert.Len(t, vets, 1)
	fx.authz.AssertNotCalled(t, "Authorize")
}

func TestVetService_CreateVet_NormalizesEmail(t *testing.T) {
	fx := createTestVetService(t)
	ctx := context.Background()
	identity := adminIdentity()

	fx.authz.On("Authorize", ctx, identity, entity.ActionCreate, entity.ResourceVet, uuid.Nil).Return(nil)
	fx.vetRepo.On("Create", ctx, mock.AnythingOfType("*entity.Vet")).
		Run(func(args mock.Arguments) {
			vet := args.Get(1).(*entity.Vet)
			vet.ID = uuid.New()
		}).
		Return(nil)

	vet, err := fx.service.CreateVet(ctx, identity, &usecase.CreateVetInput{
		Name:           "Dr. Chen",
		Email:          "  Dr.Chen@Clinic.TW ",
		Specialization: "Dentistry",
	})

	require.NoError(t, err)
	assert.Equal(t, "dr.chen@clinic.tw", vet.Email)
}

func TestVetService_DeleteVet_DeniedForAdmin(t *testing.T) {
	fx := createTestVetService(t)
	ctx := context.Background()
	identity := adminIdentity()
	vetID := uuid.New()

	fx.authz.On("Authorize", ctx, identity, entity.ActionDelete, entity.ResourceVet, vetID).
		Return(domainerrors.ErrForbidden.WrapMessage("access denied"))

	err := fx.service.DeleteVet(ctx, identity, vetID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	fx.vetRepo.AssertNotCalled(t, "Delete")
}

func TestVetService_UpdateVet_PartialUpdate(t *testing.T) {
	fx := createTestVetService(t)
	ctx := context.Background()
	identity := superAdminIdentity()
	vetID := uuid.New()

	fx.authz.On("Authorize", ctx, identity, entity.ActionUpdate, entity.ResourceVet, vetID).Return(nil)
	fx.vetRepo.On("FindByID", ctx, vetID).Return(&entity.Vet{
		ID:             vetID,
		Name:           "Dr. Lin",
		Email:          "lin@clinic.tw",
		Specialization: "Surgery",
	}, nil)
	fx.vetRepo.On("Update", ctx, mock.AnythingOfType("*entity.Vet")).Return(nil)

	newSpec := "Cardiology"
	vet, err := fx.service.UpdateVet(ctx, identity, vetID, &usecase.UpdateVetInput{Specialization: &newSpec})

	require.NoError(t, err)
	assert.Equal(t, "Cardiology", vet.Specialization)
	assert.Equal(t, "Dr. Lin", vet.Name)
	assert.Equal(t, "lin@clinic.tw", vet.Email)
}
