package handler

import (
	"net/http"

	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/eventlog"
)

// HistoryResponse is a beneficiary's ledger journal, newest first
type HistoryResponse struct {
	Beneficiary string           `json:"beneficiary"`
	Events      []eventlog.Event `json:"events"`
}

// HandleHistory returns the journal of a beneficiary
// @Summary Ledger history
// @Description Journal rows touching a beneficiary, newest first
// @Tags rewards
// @Produce json
// @Param beneficiary query string true "Beneficiary identity"
// @Param limit query int false "Maximum rows (default 50, max 500)"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/rewards/history [get]
func HandleHistory(journal eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		beneficiary, ok := GetQueryParam(r, w, QueryParamBeneficiary)
		if !ok {
			return
		}
		limit, ok := GetOptionalIntQueryParam(r, w, QueryParamLimit, domain.DefaultHistoryLimit)
		if !ok {
			return
		}

		events, err := journal.History(r.Context(), beneficiary, limit)
		if err != nil {
			respondServiceError(w, r, OpHistory, err)
			return
		}

		respondJSON(w, http.StatusOK, HistoryResponse{Beneficiary: beneficiary, Events: events})
	}
}
