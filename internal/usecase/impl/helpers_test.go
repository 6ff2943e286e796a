package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shelf/internal/domain/repository"
	mockRepo "shelf/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx makes the transaction manager run the callback against a mock factory
// prepared by setup, returning whatever the callback returns.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func ptr[T any](v T) *T {
	return &v
}
