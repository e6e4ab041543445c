package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/JackpotEngine_Go/internal/jackpot"
)

// JackpotHandler serves jackpots and reward evaluation
type JackpotHandler struct {
	service jackpot.Service
}

func NewJackpotHandler(service jackpot.Service) *JackpotHandler {
	return &JackpotHandler{service: service}
}

// HandleListJackpots returns every configured jackpot
// @Summary List jackpots
// @Tags jackpots
// @Produce json
// @Success 200 {object} DataResponse
// @Router /api/v1/jackpots [get]
func (h *JackpotHandler) HandleListJackpots(w http.ResponseWriter, r *http.Request) {
	jackpots, err := h.service.ListJackpots(r.Context())
	if err != nil {
		respondServiceError(w, r, "List jackpots", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Count: len(jackpots), Data: jackpots})
}

// HandleGetJackpot returns one jackpot with its current pool
// @Summary Get a jackpot
// @Tags jackpots
// @Produce json
// @Param jackpotId path string true "Jackpot ID"
// @Success 200 {object} domain.Jackpot
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/jackpots/{jackpotId} [get]
func (h *JackpotHandler) HandleGetJackpot(w http.ResponseWriter, r *http.Request) {
	j, err := h.service.GetJackpot(r.Context(), chi.URLParam(r, "jackpotId"))
	if err != nil {
		respondServiceError(w, r, "Get jackpot", err)
		return
	}

	respondJSON(w, http.StatusOK, j)
}

// HandleEvaluateReward decides whether a contributed bet wins the jackpot
// @Summary Evaluate a bet for the jackpot reward
// @Tags jackpots
// @Produce json
// @Param jackpotId path string true "Jackpot ID"
// @Param betId query string true "Bet ID"
// @Param userId query int true "User ID"
// @Success 200 {object} domain.RewardOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/jackpots/{jackpotId}/evaluate-reward [post]
func (h *JackpotHandler) HandleEvaluateReward(w http.ResponseWriter, r *http.Request) {
	betID, ok := GetQueryParam(r, w, "betId")
	if !ok {
		return
	}
	rawUserID, ok := GetQueryParam(r, w, "userId")
	if !ok {
		return
	}
	userID, ok := parseUserID(w, rawUserID)
	if !ok {
		return
	}

	outcome, err := h.service.EvaluateReward(r.Context(), betID, userID, chi.URLParam(r, "jackpotId"))
	if err != nil {
		respondServiceError(w, r, "Evaluate reward", err)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}

// HandleGetReward returns the reward a bet won on a jackpot
// @Summary Get a bet's reward
// @Tags jackpots
// @Produce json
// @Param jackpotId path string true "Jackpot ID"
// @Param betId path string true "Bet ID"
// @Success 200 {object} domain.Reward
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/jackpots/{jackpotId}/rewards/{betId} [get]
func (h *JackpotHandler) HandleGetReward(w http.ResponseWriter, r *http.Request) {
	reward, err := h.service.GetReward(r.Context(), chi.URLParam(r, "jackpotId"), chi.URLParam(r, "betId"))
	if err != nil {
		respondServiceError(w, r, "Get reward", err)
		return
	}

	respondJSON(w, http.StatusOK, reward)
}
