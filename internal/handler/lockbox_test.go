package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/eventlog"
	"github.com/osse101/Lockbox_Go/internal/identity"
)

const testAdmin = "admin"

func newRequest(t *testing.T, method, target string, body interface{}, caller string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	if caller != "" {
		req = req.WithContext(identity.WithCaller(req.Context(), caller))
	}
	return req
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHandleClaimable(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMocks     func(*MockLockboxService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			target: "/api/v1/rewards/claimable?beneficiary=alice",
			setupMocks: func(m *MockLockboxService) {
				m.On("ClaimableTotal", mock.Anything, "alice").Return(uint256.NewInt(15), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"amount":"15"`,
		},
		{
			name:   "Unknown beneficiary is zero",
			target: "/api/v1/rewards/claimable?beneficiary=nobody",
			setupMocks: func(m *MockLockboxService) {
				m.On("ClaimableTotal", mock.Anything, "nobody").Return(new(uint256.Int), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"amount":"0"`,
		},
		{
			name:           "Missing beneficiary",
			target:         "/api/v1/rewards/claimable",
			setupMocks:     func(m *MockLockboxService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   fmt.Sprintf(ErrMsgMissingQueryParam, QueryParamBeneficiary),
		},
		{
			name:   "Storage failure",
			target: "/api/v1/rewards/claimable?beneficiary=alice",
			setupMocks: func(m *MockLockboxService) {
				m.On("ClaimableTotal", mock.Anything, "alice").Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockLockboxService{}
			tt.setupMocks(svc)
			w := httptest.NewRecorder()

			NewLockboxHandler(svc).HandleClaimable(w, newRequest(t, http.MethodGet, tt.target, nil, ""))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.NotContains(t, w.Body.String(), "connection reset")
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleEntries(t *testing.T) {
	grantedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Lists entries in order", func(t *testing.T) {
		svc := &MockLockboxService{}
		svc.On("ActiveEntries", mock.Anything, "alice").Return([]domain.RewardEntry{
			{ID: uuid.New(), Beneficiary: "alice", Amount: uint256.NewInt(5), GrantedAt: grantedAt, Kind: 1},
			{ID: uuid.New(), Beneficiary: "alice", Amount: uint256.NewInt(7), GrantedAt: grantedAt.Add(time.Second), Kind: 2},
		}, nil)
		w := httptest.NewRecorder()

		NewLockboxHandler(svc).HandleEntries(w, newRequest(t, http.MethodGet, "/api/v1/rewards/entries?beneficiary=alice", nil, ""))

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[EntriesResponse](t, w)
		require.Len(t, resp.Entries, 2)
		assert.Equal(t, "5", resp.Entries[0].Amount)
		assert.Equal(t, int32(2), resp.Entries[1].Kind)
		assert.True(t, resp.Entries[0].GrantedAt.Equal(grantedAt))
	})

	t.Run("Empty list is an array", func(t *testing.T) {
		svc := &MockLockboxService{}
		svc.On("ActiveEntries", mock.Anything, "bob").Return([]domain.RewardEntry{}, nil)
		w := httptest.NewRecorder()

		NewLockboxHandler(svc).HandleEntries(w, newRequest(t, http.MethodGet, "/api/v1/rewards/entries?beneficiary=bob", nil, ""))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"entries":[]`)
	})
}

func TestHandleClaim(t *testing.T) {
	tests := []struct {
		name           string
		caller         string
		setupMocks     func(*MockLockboxService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			caller: "alice",
			setupMocks: func(m *MockLockboxService) {
				m.On("Claim", mock.Anything, "alice").Return(uint256.NewInt(15), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgClaimSuccess,
		},
		{
			name:   "Nothing to claim",
			caller: "alice",
			setupMocks: func(m *MockLockboxService) {
				m.On("Claim", mock.Anything, "alice").Return(new(uint256.Int), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgClaimNothing,
		},
		{
			name:           "No caller",
			setupMocks:     func(m *MockLockboxService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrMsgUnauthenticatedError,
		},
		{
			name:   "Custody short",
			caller: "alice",
			setupMocks: func(m *MockLockboxService) {
				m.On("Claim", mock.Anything, "alice").
					Return(nil, fmt.Errorf("payout failed: %w", domain.ErrInsufficientCustody))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgInsufficientCustodyError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockLockboxService{}
			tt.setupMocks(svc)
			w := httptest.NewRecorder()

			NewLockboxHandler(svc).HandleClaim(w, newRequest(t, http.MethodPost, "/api/v1/rewards/claim", nil, tt.caller))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGrant(t *testing.T) {
	grantedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		caller         string
		body           interface{}
		setupMocks     func(*MockLockboxService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			caller: testAdmin,
			body:   GrantRequest{Beneficiary: "alice", Amount: "1000000000000000000", Kind: 3},
			setupMocks: func(m *MockLockboxService) {
				amount, _ := domain.ParseAmount("1000000000000000000")
				m.On("Grant", mock.Anything, testAdmin, "alice", amount, domain.RewardKind(3)).
					Return(&domain.RewardEntry{ID: uuid.New(), Beneficiary: "alice", Amount: amount, GrantedAt: grantedAt, Kind: 3}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"amount":"1000000000000000000"`,
		},
		{
			name:   "Not administrator",
			caller: "mallory",
			body:   GrantRequest{Beneficiary: "alice", Amount: "5"},
			setupMocks: func(m *MockLockboxService) {
				m.On("Grant", mock.Anything, "mallory", "alice", uint256.NewInt(5), domain.RewardKind(0)).
					Return(nil, fmt.Errorf("grant: %w", domain.ErrNotAdministrator))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   ErrMsgNotAdministratorError,
		},
		{
			name:           "Zero amount",
			caller:         testAdmin,
			body:           GrantRequest{Beneficiary: "alice", Amount: "0"},
			setupMocks:     func(m *MockLockboxService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNonPositiveAmountError,
		},
		{
			name:           "Negative amount",
			caller:         testAdmin,
			body:           GrantRequest{Beneficiary: "alice", Amount: "-5"},
			setupMocks:     func(m *MockLockboxService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:           "Amount wider than 256 bits",
			caller:         testAdmin,
			body:           GrantRequest{Beneficiary: "alice", Amount: "999999999999999999999999999999999999999999999999999999999999999999999999999999"},
			setupMocks:     func(m *MockLockboxService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   ErrMsgAmountOverflowError,
		},
		{
			name:           "Missing beneficiary",
			caller:         testAdmin,
			body:           GrantRequest{Amount: "5"},
			setupMocks:     func(m *MockLockboxService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "beneficiary",
		},
		{
			name:           "Malformed JSON",
			caller:         testAdmin,
			body:           `{"beneficiary":`,
			setupMocks:     func(m *MockLockboxService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Unknown field",
			caller:         testAdmin,
			body:           `{"beneficiary":"alice","amount":"5","bonus":true}`,
			setupMocks:     func(m *MockLockboxService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "No caller",
			body:           GrantRequest{Beneficiary: "alice", Amount: "5"},
			setupMocks:     func(m *MockLockboxService) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockLockboxService{}
			tt.setupMocks(svc)
			w := httptest.NewRecorder()

			NewLockboxHandler(svc).HandleGrant(w, newRequest(t, http.MethodPost, "/api/v1/admin/grant", tt.body, tt.caller))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleReclaim(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockLockboxService{}
		svc.On("Reclaim", mock.Anything, testAdmin).Return(uint256.NewInt(42), nil)
		w := httptest.NewRecorder()

		NewLockboxHandler(svc).HandleReclaim(w, newRequest(t, http.MethodPost, "/api/v1/admin/reclaim", nil, testAdmin))

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[PayoutResponse](t, w)
		assert.Equal(t, MsgReclaimSuccess, resp.Message)
		assert.Equal(t, testAdmin, resp.Recipient)
		assert.Equal(t, "42", resp.Amount)
	})

	t.Run("Nothing expired", func(t *testing.T) {
		svc := &MockLockboxService{}
		svc.On("Reclaim", mock.Anything, testAdmin).Return(new(uint256.Int), nil)
		w := httptest.NewRecorder()

		NewLockboxHandler(svc).HandleReclaim(w, newRequest(t, http.MethodPost, "/api/v1/admin/reclaim", nil, testAdmin))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgReclaimNothing)
	})

	t.Run("Not administrator", func(t *testing.T) {
		svc := &MockLockboxService{}
		svc.On("Reclaim", mock.Anything, "alice").Return(nil, domain.ErrNotAdministrator)
		w := httptest.NewRecorder()

		NewLockboxHandler(svc).HandleReclaim(w, newRequest(t, http.MethodPost, "/api/v1/admin/reclaim", nil, "alice"))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandleSetExpiration(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*MockLockboxService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: SetExpirationRequest{Duration: "20s"},
			setupMocks: func(m *MockLockboxService) {
				m.On("SetExpirationDuration", mock.Anything, testAdmin, 20*time.Second).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"duration_ms":20000`,
		},
		{
			name: "Zero rejected by ledger",
			body: SetExpirationRequest{Duration: "0s"},
			setupMocks: func(m *MockLockboxService) {
				m.On("SetExpirationDuration", mock.Anything, testAdmin, time.Duration(0)).Return(domain.ErrInvalidDuration)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidDurationError,
		},
		{
			name:           "Unparseable",
			body:           SetExpirationRequest{Duration: "a while"},
			setupMocks:     func(m *MockLockboxService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockLockboxService{}
			tt.setupMocks(svc)
			w := httptest.NewRecorder()

			NewLockboxHandler(svc).HandleSetExpiration(w, newRequest(t, http.MethodPut, "/api/v1/admin/expiration", tt.body, testAdmin))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetExpiration(t *testing.T) {
	svc := &MockLockboxService{}
	svc.On("ExpirationDuration", mock.Anything).Return(10*time.Second, nil)
	w := httptest.NewRecorder()

	NewLockboxHandler(svc).HandleGetExpiration(w, newRequest(t, http.MethodGet, "/api/v1/policy/expiration", nil, ""))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[PolicyResponse](t, w)
	assert.Equal(t, "10s", resp.Duration)
	assert.Equal(t, int64(10000), resp.DurationMillis)
}

func TestHandleDeposit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockLockboxService{}
		svc.On("Deposit", mock.Anything, testAdmin, uint256.NewInt(100)).Return(nil)
		w := httptest.NewRecorder()

		NewLockboxHandler(svc).HandleDeposit(w, newRequest(t, http.MethodPost, "/api/v1/admin/custody/deposit", AmountRequest{Amount: "100"}, testAdmin))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgDepositSuccess)
		svc.AssertExpectations(t)
	})

	t.Run("Overflow", func(t *testing.T) {
		svc := &MockLockboxService{}
		svc.On("Deposit", mock.Anything, testAdmin, uint256.NewInt(1)).Return(domain.ErrAmountOverflow)
		w := httptest.NewRecorder()

		NewLockboxHandler(svc).HandleDeposit(w, newRequest(t, http.MethodPost, "/api/v1/admin/custody/deposit", AmountRequest{Amount: "1"}, testAdmin))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestHandleAudit(t *testing.T) {
	checked := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := &MockLockboxService{}
	svc.On("Audit", mock.Anything).Return(&domain.AuditReport{
		LedgerTotal:    uint256.NewInt(30),
		CustodyBalance: uint256.NewInt(30),
		EntryCount:     3,
		Consistent:     true,
		CheckedAt:      checked,
	}, nil)
	w := httptest.NewRecorder()

	NewLockboxHandler(svc).HandleAudit(w, newRequest(t, http.MethodGet, "/api/v1/audit", nil, ""))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[AuditResponse](t, w)
	assert.Equal(t, "30", resp.LedgerTotal)
	assert.Equal(t, "30", resp.CustodyBalance)
	assert.Equal(t, 3, resp.EntryCount)
	assert.True(t, resp.Consistent)
}

func TestHandleHistory(t *testing.T) {
	alice := "alice"

	t.Run("Default limit", func(t *testing.T) {
		journal := &MockJournal{}
		journal.On("History", mock.Anything, alice, domain.DefaultHistoryLimit).Return([]eventlog.Event{
			{ID: 2, EventType: domain.EventTypeRewardClaimed, Beneficiary: &alice, Payload: map[string]interface{}{"amount": "5"}},
		}, nil)
		w := httptest.NewRecorder()

		HandleHistory(journal).ServeHTTP(w, newRequest(t, http.MethodGet, "/api/v1/rewards/history?beneficiary=alice", nil, ""))

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[HistoryResponse](t, w)
		require.Len(t, resp.Events, 1)
		assert.Equal(t, domain.EventTypeRewardClaimed, resp.Events[0].EventType)
		journal.AssertExpectations(t)
	})

	t.Run("Explicit limit", func(t *testing.T) {
		journal := &MockJournal{}
		journal.On("History", mock.Anything, alice, 5).Return([]eventlog.Event{}, nil)
		w := httptest.NewRecorder()

		HandleHistory(journal).ServeHTTP(w, newRequest(t, http.MethodGet, "/api/v1/rewards/history?beneficiary=alice&limit=5", nil, ""))

		assert.Equal(t, http.StatusOK, w.Code)
		journal.AssertExpectations(t)
	})

	t.Run("Bad limit", func(t *testing.T) {
		w := httptest.NewRecorder()

		HandleHistory(&MockJournal{}).ServeHTTP(w, newRequest(t, http.MethodGet, "/api/v1/rewards/history?beneficiary=alice&limit=many", nil, ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrNotAdministrator, http.StatusForbidden},
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{domain.ErrNonPositiveAmount, http.StatusBadRequest},
		{domain.ErrInvalidDuration, http.StatusBadRequest},
		{domain.ErrInvalidBeneficiary, http.StatusBadRequest},
		{domain.ErrInsufficientCustody, http.StatusConflict},
		{domain.ErrCustodyRecipient, http.StatusForbidden},
		{domain.ErrAmountOverflow, http.StatusUnprocessableEntity},
		{domain.ErrPolicyNotFound, http.StatusServiceUnavailable},
		{fmt.Errorf("wrapped twice: %w", fmt.Errorf("inner: %w", domain.ErrInsufficientCustody)), http.StatusConflict},
		{context.DeadlineExceeded, http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, msg)
		})
	}
}
