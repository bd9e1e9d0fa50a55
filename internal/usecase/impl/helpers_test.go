package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"companion/internal/domain/repository"
	mockRepo "companion/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// repoMocks are the repositories handed out both directly and by the fake transaction.
type repoMocks struct {
	userRepo        *mockRepo.MockUserRepository
	pnjProfileRepo  *mockRepo.MockPNJProfileRepository
	bookingRepo     *mockRepo.MockBookingRepository
	transactionRepo *mockRepo.MockTransactionRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	return &repoMocks{
		userRepo:        mockRepo.NewMockUserRepository(t),
		pnjProfileRepo:  mockRepo.NewMockPNJProfileRepository(t),
		bookingRepo:     mockRepo.NewMockBookingRepository(t),
		transactionRepo: mockRepo.NewMockTransactionRepository(t),
	}
}

func (m *repoMocks) NewUserRepository() repository.UserRepository {
	return m.userRepo
}

func (m *repoMocks) NewPNJProfileRepository() repository.PNJProfileRepository {
	return m.pnjProfileRepo
}

func (m *repoMocks) NewBookingRepository() repository.BookingRepository {
	return m.bookingRepo
}

func (m *repoMocks) NewTransactionRepository() repository.TransactionRepository {
	return m.transactionRepo
}

// fakeTxManager runs fn against the mocks and counts calls.
// There is no rollback; tests assert on what fn returned.
type fakeTxManager struct {
	repos *repoMocks
	calls int
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	tm.calls++

	return fn(tm.repos)
}
