package lockbox

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/repository"
)

// MockVault is a testify double for custody.Vault
type MockVault struct {
	mock.Mock
}

func (m *MockVault) PayOut(ctx context.Context, recipient string, amount *uint256.Int) error {
	args := m.Called(ctx, recipient, amount)
	return args.Error(0)
}

func (m *MockVault) BalanceHeld(ctx context.Context) (*uint256.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*uint256.Int), args.Error(1)
}

func (m *MockVault) Deposit(ctx context.Context, amount *uint256.Int) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

// MockRepository is a testify double for repository.Lockbox
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetSnapshot(ctx context.Context, beneficiary string) (time.Duration, []domain.RewardEntry, error) {
	args := m.Called(ctx, beneficiary)
	entries, _ := args.Get(1).([]domain.RewardEntry)
	return args.Get(0).(time.Duration), entries, args.Error(2)
}

func (m *MockRepository) GetAllEntries(ctx context.Context) ([]domain.RewardEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]domain.RewardEntry)
	return entries, args.Error(1)
}

func (m *MockRepository) GetExpirationDuration(ctx context.Context) (time.Duration, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Duration), args.Error(1)
}

func (m *MockRepository) EnsureExpirationDuration(ctx context.Context, d time.Duration) (time.Duration, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(time.Duration), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.LockboxTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LockboxTx), args.Error(1)
}

// MockTx is a testify double for repository.LockboxTx
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) GetExpirationDuration(ctx context.Context) (time.Duration, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Duration), args.Error(1)
}

func (m *MockTx) GetEntriesForUpdate(ctx context.Context, beneficiary string) ([]domain.RewardEntry, error) {
	args := m.Called(ctx, beneficiary)
	entries, _ := args.Get(0).([]domain.RewardEntry)
	return entries, args.Error(1)
}

func (m *MockTx) GetAllEntriesForUpdate(ctx context.Context) ([]domain.RewardEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]domain.RewardEntry)
	return entries, args.Error(1)
}

func (m *MockTx) InsertEntry(ctx context.Context, entry domain.RewardEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTx) DeleteEntries(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockTx) SetExpirationDuration(ctx context.Context, d time.Duration) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
