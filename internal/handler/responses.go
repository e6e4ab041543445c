package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with a list payload
type DataResponse struct {
	Count int         `json:"count"`
	Data  interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Headers are already sent, so failures can only be logged
	if err := encodeJSON(w, payload); err != nil {
		slog.Error(LogMsgEncodeResponseFailed, "status", status, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if statusCode >= http.StatusInternalServerError {
		log.Error(LogMsgServiceCallFailed, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceCallFailed, "operation", opName, "error", err)
	}
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."
	ErrMsgResourceNotFoundErr = "Resource not found."
	ErrMsgTooManyRequestsErr  = "Too many requests. Please try again later."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	// Entity messages
	ErrMsgJackpotNotFoundError      = "Jackpot not found"
	ErrMsgUserNotFoundError         = "User not found"
	ErrMsgContributionNotFoundError = "Contribution not found"
	ErrMsgRewardNotFoundError       = "Reward not found"

	// Bet messages
	ErrMsgDuplicateBetError    = "Bet has already been processed"
	ErrMsgBetIDRequiredError   = "Bet ID is required"
	ErrMsgUserIDRequiredError  = "User ID is required"
	ErrMsgJackpotIDRequiredErr = "Jackpot ID is required"
	ErrMsgStakeRequiredError   = "Bet amount is required"
	ErrMsgStakeNegativeError   = "Bet amount cannot be negative"

	// User messages
	ErrMsgUsernameRequiredError = "Username is required"
	ErrMsgUsernameTakenError    = "Username is already taken"

	// Jackpot messages
	ErrMsgJackpotMisconfiguredErr = "Jackpot is misconfigured"
	ErrMsgRewardClaimedError      = "Jackpot reward has already been claimed"
)

// mapServiceErrorToUserMessage converts service errors to HTTP status codes and
// messages users can act upon. Specific sentinels are checked before the taxonomy.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrJackpotNotFound):
		return http.StatusNotFound, ErrMsgJackpotNotFoundError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrContributionNotFound):
		return http.StatusNotFound, ErrMsgContributionNotFoundError
	case errors.Is(err, domain.ErrRewardNotFound):
		return http.StatusNotFound, ErrMsgRewardNotFoundError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgResourceNotFoundErr
	case errors.Is(err, domain.ErrDuplicateBet):
		return http.StatusBadRequest, ErrMsgDuplicateBetError
	case errors.Is(err, domain.ErrBetIDRequired):
		return http.StatusBadRequest, ErrMsgBetIDRequiredError
	case errors.Is(err, domain.ErrUserIDRequired):
		return http.StatusBadRequest, ErrMsgUserIDRequiredError
	case errors.Is(err, domain.ErrJackpotIDMissing):
		return http.StatusBadRequest, ErrMsgJackpotIDRequiredErr
	case errors.Is(err, domain.ErrStakeRequired):
		return http.StatusBadRequest, ErrMsgStakeRequiredError
	case errors.Is(err, domain.ErrStakeNegative):
		return http.StatusBadRequest, ErrMsgStakeNegativeError
	case errors.Is(err, domain.ErrUsernameRequired):
		return http.StatusBadRequest, ErrMsgUsernameRequiredError
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusBadRequest, ErrMsgUsernameTakenError
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrConfiguration):
		return http.StatusInternalServerError, ErrMsgJackpotMisconfiguredErr
	case errors.Is(err, domain.ErrRetriesExhausted), errors.Is(err, domain.ErrConcurrencyConflict):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrRewardAlreadyClaimed):
		return http.StatusConflict, ErrMsgRewardClaimedError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
