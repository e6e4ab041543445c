package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/osse101/JackpotEngine_Go/internal/betqueue"
	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/jackpot"
	"github.com/osse101/JackpotEngine_Go/internal/logger"
)

// BetHandler accepts bets and serves their contributions
type BetHandler struct {
	service jackpot.Service
	queue   betqueue.Publisher
}

// NewBetHandler creates a bet handler; queue receives bets for asynchronous processing
func NewBetHandler(service jackpot.Service, queue betqueue.Publisher) *BetHandler {
	return &BetHandler{
		service: service,
		queue:   queue,
	}
}

// PlaceBetRequest is the body of POST /bets and POST /bets/sync
type PlaceBetRequest struct {
	BetID     string           `json:"bet_id" validate:"required,max=100,printascii"`
	UserID    int64            `json:"user_id" validate:"required,gt=0"`
	JackpotID string           `json:"jackpot_id" validate:"required,max=100"`
	BetAmount *decimal.Decimal `json:"bet_amount" validate:"required,decimal_positive" swaggertype:"string"`
}

func (req PlaceBetRequest) toDomain() domain.BetRequest {
	return domain.BetRequest{
		BetID:     req.BetID,
		UserID:    req.UserID,
		JackpotID: req.JackpotID,
		BetAmount: *req.BetAmount,
	}
}

// BetResponse acknowledges a queued bet
type BetResponse struct {
	BetID   string `json:"bet_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HandlePlaceBet queues a bet for contribution processing
// @Summary Place a bet
// @Description Validates the bet and hands it to the bet queue; the contribution is applied asynchronously
// @Tags bets
// @Accept json
// @Produce json
// @Param request body PlaceBetRequest true "Bet"
// @Success 202 {object} BetResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} BetResponse
// @Router /api/v1/bets [post]
func (h *BetHandler) HandlePlaceBet(w http.ResponseWriter, r *http.Request) {
	var req PlaceBetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Place bet"); err != nil {
		return
	}

	log := logger.FromContext(r.Context())
	LogRequestFields(log, "betID", req.BetID, "userID", req.UserID, "jackpotID", req.JackpotID)

	if err := h.queue.PublishBet(r.Context(), req.toDomain()); err != nil {
		log.Error(LogMsgBetPublishFailed, "betID", req.BetID, "error", err)
		respondJSON(w, http.StatusInternalServerError, BetResponse{
			BetID:   req.BetID,
			Status:  domain.BetStatusError,
			Message: ErrMsgPublishBetFailed,
		})
		return
	}

	log.Info(LogMsgBetAccepted, "betID", req.BetID, "jackpotID", req.JackpotID)
	respondJSON(w, http.StatusAccepted, BetResponse{
		BetID:   req.BetID,
		Status:  domain.BetStatusProcessed,
		Message: MsgBetAccepted,
	})
}

// HandlePlaceBetSync applies the bet's contribution before responding
// @Summary Place a bet synchronously
// @Tags bets
// @Accept json
// @Produce json
// @Param request body PlaceBetRequest true "Bet"
// @Success 201 {object} domain.Contribution
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/bets/sync [post]
func (h *BetHandler) HandlePlaceBetSync(w http.ResponseWriter, r *http.Request) {
	var req PlaceBetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Place bet sync"); err != nil {
		return
	}

	c, err := h.service.ProcessBet(r.Context(), req.toDomain())
	if err != nil {
		respondServiceError(w, r, "Place bet sync", err)
		return
	}

	respondJSON(w, http.StatusCreated, c)
}

// HandleGetContribution returns the contribution recorded for a bet
// @Summary Get a bet's contribution
// @Tags bets
// @Produce json
// @Param betId path string true "Bet ID"
// @Success 200 {object} domain.Contribution
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/bets/{betId}/contribution [get]
func (h *BetHandler) HandleGetContribution(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetContribution(r.Context(), chi.URLParam(r, "betId"))
	if err != nil {
		respondServiceError(w, r, "Get contribution", err)
		return
	}

	respondJSON(w, http.StatusOK, c)
}
