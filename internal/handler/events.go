package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/osse101/JackpotEngine_Go/internal/event"
	"github.com/osse101/JackpotEngine_Go/internal/eventlog"
	"github.com/osse101/JackpotEngine_Go/internal/logger"
)

// EventHandler reads the contribution and reward audit trail
type EventHandler struct {
	events eventlog.Service
}

// NewEventHandler serves the event log; events is nil for stores without one
func NewEventHandler(events eventlog.Service) *EventHandler {
	return &EventHandler{events: events}
}

// HandleListJackpotEvents returns the most recent logged events of a jackpot
// @Summary List a jackpot's logged events
// @Tags jackpots
// @Produce json
// @Param jackpotId path string true "Jackpot ID"
// @Param type query string false "Event type" Enums(jackpot.contribution.applied, jackpot.reward.won)
// @Param limit query int false "Maximum rows"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/jackpots/{jackpotId}/events [get]
func (h *EventHandler) HandleListJackpotEvents(w http.ResponseWriter, r *http.Request) {
	if h.events == nil {
		respondError(w, http.StatusServiceUnavailable, ErrMsgEventLogUnavailable)
		return
	}

	jackpotID := chi.URLParam(r, "jackpotId")
	filter := eventlog.EventFilter{JackpotID: &jackpotID}

	if raw := GetOptionalQueryParam(r, "type", ""); raw != "" {
		if !lo.Contains(eventlog.LoggedEventTypes, event.Type(raw)) {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidEventType)
			return
		}
		filter.EventType = &raw
	}

	limit, ok := limitFromQuery(w, r)
	if !ok {
		return
	}
	filter.Limit = limit

	events, err := h.events.RecentEvents(r.Context(), filter)
	if err != nil {
		logger.FromContext(r.Context()).Error(LogMsgServiceCallFailed, "operation", "List jackpot events", "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgEventLogQueryFailed)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Count: len(events), Data: events})
}
