package impl

import (
	"context"
	"testing"
	"time"

	"petclinic/internal/domain/entity"
	domainerrors "petclinic/internal/domain/errors"
	"petclinic/internal/domain/repository"
	mockRepo "petclinic/internal/mocks/repository"
	mockSvc "petclinic/internal/mocks/service"
	"petclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txUserRepo   *mockRepo.MockUserRepository
	txOwnerRepo  *mockRepo.MockOwnerRepository
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txOwnerRepo := mockRepo.NewMockOwnerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(txUserRepo).Maybe()
	factory.On("OwnerRepo").Return(txOwnerRepo).Maybe()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := &authService{
		txManager:    passthroughTx(t, factory),
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       newDiscardLogger(),
	}

	return authServiceFixtures{
		service:      service,
		txUserRepo:   txUserRepo,
		txOwnerRepo:  txOwnerRepo,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Test Owner",
		Email:    "  Owner@Example.COM ",
		Password: "Password123!",
		Phone:    "0912345678",
		Address:  "Taipei",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.txUserRepo.On("ExistsByEmail", ctx, "owner@example.com").Return(false, nil)
	fx.txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.txOwnerRepo.On("Create", ctx, mock.AnythingOfType("*entity.Owner")).
		Run(func(args mock.Arguments) {
			owner := args.Get(1).(*entity.Owner)
			owner.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "owner@example.com", output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, entity.Roles{entity.RoleUser}, output.User.Roles)
	require.NotNil(t, output.Owner)
	assert.Equal(t, output.User.ID, output.Owner.UserID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Test Owner",
		Email:    "owner@example.com",
		Password: "Password123!",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.txUserRepo.On("ExistsByEmail", ctx, "owner@example.com").Return(true, nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthService_Register_OwnerFailureRollsBack(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Test Owner",
		Email:    "owner@example.com",
		Password: "Password123!",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.txUserRepo.On("ExistsByEmail", ctx, "owner@example.com").Return(false, nil)
	fx.txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.txOwnerRepo.On("Create", ctx, mock.AnythingOfType("*entity.Owner")).
		Return(errors.New("insert failed"))

	output, err := fx.service.Register(ctx, input)

	// The transactional callback fails, so the whole registration fails.
	assert.Nil(t, output)
	assert.Error(t, err)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	storedUser := &entity.User{
		ID:           userID,
		Email:        "owner@example.com",
		PasswordHash: "hashed_password",
		Roles:        entity.Roles{entity.RoleUser},
	}

	fx.userRepo.On("FindByEmail", ctx, "owner@example.com").Return(storedUser, nil)
	fx.hasher.On("Check", "Password123!", "hashed_password").Return(true)
	fx.tokenService.On("Issue", mock.AnythingOfType("*entity.Identity")).
		Run(func(args mock.Arguments) {
			identity := args.Get(0).(*entity.Identity)
			assert.Equal(t, userID, identity.UserID)
			assert.Equal(t, entity.Roles{entity.RoleUser}, identity.Roles)
		}).
		Return("signed.token.value", nil)
	fx.tokenService.On("AccessTokenDuration").Return(24 * time.Hour)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Owner@Example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", output.AccessToken)
	assert.Equal(t, 24*time.Hour, output.ExpiresIn)
	assert.Equal(t, storedUser, output.User)
}

func TestAuthService_Login_UnknownAndWrongPasswordIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	fx.userRepo.On("FindByEmail", ctx, "owner@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "owner@example.com", PasswordHash: "hash"}, nil)
	fx.hasher.On("Check", "wrong", "hash").Return(false)

	_, wrongErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "owner@example.com",
		Password: "wrong",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))
}
