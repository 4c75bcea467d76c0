package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"petclinic/internal/domain/entity"
	"petclinic/internal/domain/repository"
	mockRepo "petclinic/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func userIdentity(userID uuid.UUID) *entity.Identity {
	return &entity.Identity{
		UserID: userID,
		Email:  "user@example.com",
		Roles:  entity.Roles{entity.RoleUser},
	}
}

func adminIdentity() *entity.Identity {
	return &entity.Identity{
		UserID: uuid.New(),
		Email:  "admin@example.com",
		Roles:  entity.Roles{entity.RoleUser, entity.RoleAdmin},
	}
}

func superAdminIdentity() *entity.Identity {
	return &entity.Identity{
		UserID: uuid.New(),
		Email:  "root@example.com",
		Roles:  entity.Roles{entity.RoleUser, entity.RoleAdmin, entity.RoleSuperAdmin},
	}
}

// passthroughTx wires a transaction manager mock that runs the callback
// against the given factory, committing or failing exactly as the callback
// does.
func passthroughTx(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.On("Execute", mock.Anything, mock.Anything).
		Return(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}
