package handler

import (
	"net/http"
	"time"

	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/lockbox"
)

// LockboxHandler serves the reward ledger
type LockboxHandler struct {
	service lockbox.Service
}

// NewLockboxHandler creates a new ledger handler
func NewLockboxHandler(service lockbox.Service) *LockboxHandler {
	return &LockboxHandler{service: service}
}

// GrantRequest is the request body for granting a reward
type GrantRequest struct {
	Beneficiary string `json:"beneficiary" validate:"required,max=255,excludesall=\x00\n\r\t"`
	Amount      string `json:"amount" validate:"required,amount"`
	Kind        int32  `json:"kind"`
}

// AmountRequest is the request body for custody deposits
type AmountRequest struct {
	Amount string `json:"amount" validate:"required,amount"`
}

// SetExpirationRequest is the request body for changing the expiration window
type SetExpirationRequest struct {
	Duration string `json:"duration" validate:"required,duration"`
}

// EntryResponse is one reward entry. Amounts are decimal strings.
type EntryResponse struct {
	Beneficiary string    `json:"beneficiary"`
	Amount      string    `json:"amount"`
	Kind        int32     `json:"kind"`
	GrantedAt   time.Time `json:"granted_at"`
}

// ClaimableResponse is the claimable total of a beneficiary
type ClaimableResponse struct {
	Beneficiary string `json:"beneficiary"`
	Amount      string `json:"amount"`
}

// EntriesResponse lists a beneficiary's active entries, oldest first
type EntriesResponse struct {
	Beneficiary string          `json:"beneficiary"`
	Entries     []EntryResponse `json:"entries"`
}

// GrantResponse is returned after a grant
type GrantResponse struct {
	Message string        `json:"message"`
	Entry   EntryResponse `json:"entry"`
}

// PayoutResponse is returned by claim and reclaim
type PayoutResponse struct {
	Message   string `json:"message"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

// PolicyResponse is the expiration policy
type PolicyResponse struct {
	Duration       string `json:"duration"`
	DurationMillis int64  `json:"duration_ms"`
}

// AuditResponse compares the ledger with custody
type AuditResponse struct {
	LedgerTotal    string    `json:"ledger_total"`
	CustodyBalance string    `json:"custody_balance"`
	EntryCount     int       `json:"entry_count"`
	Consistent     bool      `json:"consistent"`
	CheckedAt      time.Time `json:"checked_at"`
}

func toEntryResponse(e domain.RewardEntry) EntryResponse {
	return EntryResponse{
		Beneficiary: e.Beneficiary,
		Amount:      domain.FormatAmount(e.Amount),
		Kind:        int32(e.Kind),
		GrantedAt:   e.GrantedAt,
	}
}

func toPolicyResponse(d time.Duration) PolicyResponse {
	return PolicyResponse{Duration: d.String(), DurationMillis: d.Milliseconds()}
}

// HandleClaimable returns the claimable total of a beneficiary
// @Summary Claimable total
// @Description Sum of a beneficiary's non-expired rewards. Unknown beneficiaries have 0.
// @Tags rewards
// @Produce json
// @Param beneficiary query string true "Beneficiary identity"
// @Success 200 {object} ClaimableResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/rewards/claimable [get]
func (h *LockboxHandler) HandleClaimable(w http.ResponseWriter, r *http.Request) {
	beneficiary, ok := GetQueryParam(r, w, QueryParamBeneficiary)
	if !ok {
		return
	}

	total, err := h.service.ClaimableTotal(r.Context(), beneficiary)
	if err != nil {
		respondServiceError(w, r, OpClaimable, err)
		return
	}

	respondJSON(w, http.StatusOK, ClaimableResponse{
		Beneficiary: beneficiary,
		Amount:      domain.FormatAmount(total),
	})
}

// HandleEntries returns a beneficiary's active entries
// @Summary Active entries
// @Description Non-expired rewards of a beneficiary in grant order
// @Tags rewards
// @Produce json
// @Param beneficiary query string true "Beneficiary identity"
// @Success 200 {object} EntriesResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/rewards/entries [get]
func (h *LockboxHandler) HandleEntries(w http.ResponseWriter, r *http.Request) {
	beneficiary, ok := GetQueryParam(r, w, QueryParamBeneficiary)
	if !ok {
		return
	}

	entries, err := h.service.ActiveEntries(r.Context(), beneficiary)
	if err != nil {
		respondServiceError(w, r, OpEntries, err)
		return
	}

	resp := EntriesResponse{Beneficiary: beneficiary, Entries: make([]EntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, toEntryResponse(e))
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleGetExpiration returns the expiration policy
// @Summary Expiration policy
// @Tags policy
// @Produce json
// @Success 200 {object} PolicyResponse
// @Router /api/v1/policy/expiration [get]
func (h *LockboxHandler) HandleGetExpiration(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.ExpirationDuration(r.Context())
	if err != nil {
		respondServiceError(w, r, OpPolicy, err)
		return
	}
	respondJSON(w, http.StatusOK, toPolicyResponse(d))
}

// HandleAudit compares the ledger total with the custody balance
// @Summary Custody audit
// @Tags audit
// @Produce json
// @Success 200 {object} AuditResponse
// @Router /api/v1/audit [get]
func (h *LockboxHandler) HandleAudit(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Audit(r.Context())
	if err != nil {
		respondServiceError(w, r, OpAudit, err)
		return
	}

	respondJSON(w, http.StatusOK, AuditResponse{
		LedgerTotal:    domain.FormatAmount(report.LedgerTotal),
		CustodyBalance: domain.FormatAmount(report.CustodyBalance),
		EntryCount:     report.EntryCount,
		Consistent:     report.Consistent,
		CheckedAt:      report.CheckedAt,
	})
}

// HandleClaim pays the caller their active rewards
// @Summary Claim rewards
// @Description Removes and pays out the caller's non-expired rewards. Paying 0 is a no-op.
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PayoutResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/rewards/claim [post]
func (h *LockboxHandler) HandleClaim(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	paid, err := h.service.Claim(r.Context(), caller)
	if err != nil {
		respondServiceError(w, r, OpClaim, err)
		return
	}

	msg := MsgClaimSuccess
	if paid.IsZero() {
		msg = MsgClaimNothing
	}
	respondJSON(w, http.StatusOK, PayoutResponse{Message: msg, Recipient: caller, Amount: domain.FormatAmount(paid)})
}

// HandleGrant records a reward for a beneficiary
// @Summary Grant a reward
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GrantRequest true "Grant details"
// @Success 201 {object} GrantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/admin/grant [post]
func (h *LockboxHandler) HandleGrant(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req GrantRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpGrant); err != nil {
		return
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		respondServiceError(w, r, OpGrant, err)
		return
	}

	entry, err := h.service.Grant(r.Context(), caller, req.Beneficiary, amount, domain.RewardKind(req.Kind))
	if err != nil {
		respondServiceError(w, r, OpGrant, err)
		return
	}

	respondJSON(w, http.StatusCreated, GrantResponse{Message: MsgGrantSuccess, Entry: toEntryResponse(*entry)})
}

// HandleReclaim sweeps every expired reward to the administrator
// @Summary Reclaim expired rewards
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PayoutResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/admin/reclaim [post]
func (h *LockboxHandler) HandleReclaim(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	swept, err := h.service.Reclaim(r.Context(), caller)
	if err != nil {
		respondServiceError(w, r, OpReclaim, err)
		return
	}

	msg := MsgReclaimSuccess
	if swept.IsZero() {
		msg = MsgReclaimNothing
	}
	respondJSON(w, http.StatusOK, PayoutResponse{Message: msg, Recipient: caller, Amount: domain.FormatAmount(swept)})
}

// HandleSetExpiration changes the expiration window
// @Summary Set expiration duration
// @Description Takes effect for every entry at its next evaluation
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetExpirationRequest true "New duration"
// @Success 200 {object} PolicyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/admin/expiration [put]
func (h *LockboxHandler) HandleSetExpiration(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req SetExpirationRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSetExpiration); err != nil {
		return
	}

	// Validated above
	d, _ := time.ParseDuration(req.Duration)
	if err := h.service.SetExpirationDuration(r.Context(), caller, d); err != nil {
		respondServiceError(w, r, OpSetExpiration, err)
		return
	}

	respondJSON(w, http.StatusOK, toPolicyResponse(d))
}

// HandleDeposit moves tokens into custody
// @Summary Deposit into custody
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AmountRequest true "Amount to deposit"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/admin/custody/deposit [post]
func (h *LockboxHandler) HandleDeposit(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req AmountRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpDeposit); err != nil {
		return
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		respondServiceError(w, r, OpDeposit, err)
		return
	}

	if err := h.service.Deposit(r.Context(), caller, amount); err != nil {
		respondServiceError(w, r, OpDeposit, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDepositSuccess})
}
