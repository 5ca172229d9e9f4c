package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}

	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgNotAdministratorError    = "Only the administrator can do that"
	ErrMsgUnauthenticatedError     = "Caller identity missing or invalid"
	ErrMsgNonPositiveAmountError   = "Amount must be a positive whole number of token units"
	ErrMsgInvalidDurationError     = "Expiration duration must be a positive whole number of milliseconds"
	ErrMsgInvalidBeneficiaryError  = "Beneficiary is missing or too long"
	ErrMsgInsufficientCustodyError = "Custody does not hold enough tokens for this payout"
	ErrMsgAmountOverflowError      = "Amount is too large"
	ErrMsgCustodyRecipientError    = "The custody account cannot receive payouts"
	ErrMsgPolicyNotFoundError      = "Expiration policy is not initialized"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages. Unknown errors never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrNotAdministrator):
		return http.StatusForbidden, ErrMsgNotAdministratorError
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrMsgUnauthenticatedError
	case errors.Is(err, domain.ErrNonPositiveAmount):
		return http.StatusBadRequest, ErrMsgNonPositiveAmountError
	case errors.Is(err, domain.ErrInvalidDuration):
		return http.StatusBadRequest, ErrMsgInvalidDurationError
	case errors.Is(err, domain.ErrInvalidBeneficiary):
		return http.StatusBadRequest, ErrMsgInvalidBeneficiaryError
	case errors.Is(err, domain.ErrInsufficientCustody):
		return http.StatusConflict, ErrMsgInsufficientCustodyError
	case errors.Is(err, domain.ErrCustodyRecipient):
		return http.StatusForbidden, ErrMsgCustodyRecipientError
	case errors.Is(err, domain.ErrAmountOverflow):
		return http.StatusUnprocessableEntity, ErrMsgAmountOverflowError
	case errors.Is(err, domain.ErrPolicyNotFound):
		return http.StatusServiceUnavailable, ErrMsgPolicyNotFoundError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
