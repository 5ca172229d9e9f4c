package handler

import (
	"context"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/event"
	"github.com/osse101/Lockbox_Go/internal/eventlog"
)

// MockLockboxService mocks lockbox.Service
type MockLockboxService struct {
	mock.Mock
}

func (m *MockLockboxService) ClaimableTotal(ctx context.Context, beneficiary string) (*uint256.Int, error) {
	args := m.Called(ctx, beneficiary)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*uint256.Int), args.Error(1)
}

func (m *MockLockboxService) ActiveEntries(ctx context.Context, beneficiary string) ([]domain.RewardEntry, error) {
	args := m.Called(ctx, beneficiary)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RewardEntry), args.Error(1)
}

func (m *MockLockboxService) ExpirationDuration(ctx context.Context) (time.Duration, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Duration), args.Error(1)
}

func (m *MockLockboxService) Grant(ctx context.Context, caller, beneficiary string, amount *uint256.Int, kind domain.RewardKind) (*domain.RewardEntry, error) {
	args := m.Called(ctx, caller, beneficiary, amount, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RewardEntry), args.Error(1)
}

func (m *MockLockboxService) Claim(ctx context.Context, caller string) (*uint256.Int, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*uint256.Int), args.Error(1)
}

func (m *MockLockboxService) Reclaim(ctx context.Context, caller string) (*uint256.Int, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*uint256.Int), args.Error(1)
}

func (m *MockLockboxService) SetExpirationDuration(ctx context.Context, caller string, d time.Duration) error {
	return m.Called(ctx, caller, d).Error(0)
}

func (m *MockLockboxService) Deposit(ctx context.Context, caller string, amount *uint256.Int) error {
	return m.Called(ctx, caller, amount).Error(0)
}

func (m *MockLockboxService) Audit(ctx context.Context) (*domain.AuditReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditReport), args.Error(1)
}

func (m *MockLockboxService) Administrator() string {
	return m.Called().String(0)
}

func (m *MockLockboxService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockJournal mocks eventlog.Service
type MockJournal struct {
	mock.Mock
}

func (m *MockJournal) Subscribe(bus event.Bus) error {
	return m.Called(bus).Error(0)
}

func (m *MockJournal) History(ctx context.Context, beneficiary string, limit int) ([]eventlog.Event, error) {
	args := m.Called(ctx, beneficiary, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]eventlog.Event), args.Error(1)
}

func (m *MockJournal) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}
