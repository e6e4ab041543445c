package handler

import (
	"net/http"

	"github.com/osse101/JackpotEngine_Go/internal/jackpot"
)

// UserHandler registers users and lists their history
type UserHandler struct {
	service jackpot.Service
}

func NewUserHandler(service jackpot.Service) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterUserRequest is the body of POST /users
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,printascii"`
}

// HandleRegisterUser creates a user
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "User"
// @Success 201 {object} domain.User
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/users [post]
func (h *UserHandler) HandleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
		return
	}

	u, err := h.service.RegisterUser(r.Context(), req.Username)
	if err != nil {
		respondServiceError(w, r, "Register user", err)
		return
	}

	respondJSON(w, http.StatusCreated, u)
}

// HandleListContributions returns a user's most recent contributions
// @Summary List a user's contributions
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Param limit query int false "Maximum rows"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/users/{userId}/contributions [get]
func (h *UserHandler) HandleListContributions(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromPath(w, r)
	if !ok {
		return
	}
	limit, ok := limitFromQuery(w, r)
	if !ok {
		return
	}

	contributions, err := h.service.ListUserContributions(r.Context(), userID, limit)
	if err != nil {
		respondServiceError(w, r, "List contributions", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Count: len(contributions), Data: contributions})
}

// HandleListRewards returns a user's most recent rewards
// @Summary List a user's rewards
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Param limit query int false "Maximum rows"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/users/{userId}/rewards [get]
func (h *UserHandler) HandleListRewards(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromPath(w, r)
	if !ok {
		return
	}
	limit, ok := limitFromQuery(w, r)
	if !ok {
		return
	}

	rewards, err := h.service.ListUserRewards(r.Context(), userID, limit)
	if err != nil {
		respondServiceError(w, r, "List rewards", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Count: len(rewards), Data: rewards})
}
