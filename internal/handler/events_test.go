package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/JackpotEngine_Go/internal/eventlog"
	"github.com/osse101/JackpotEngine_Go/mocks"
)

func newEventRouter(events eventlog.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/jackpots/{jackpotId}/events", NewEventHandler(events).HandleListJackpotEvents)
	return r
}

func TestHandleListJackpotEvents(t *testing.T) {
	t.Run("filters by jackpot type and limit", func(t *testing.T) {
		svc := mocks.NewMockEventLogService(t)
		svc.On("RecentEvents", mock.Anything, mock.MatchedBy(func(f eventlog.EventFilter) bool {
			return f.JackpotID != nil && *f.JackpotID == "jackpot-fixed" &&
				f.EventType != nil && *f.EventType == "jackpot.reward.won" &&
				f.Limit == 5 && f.UserID == nil
		})).Return([]eventlog.Event{{ID: 3, EventType: "jackpot.reward.won"}}, nil)

		w := doRequest(t, newEventRouter(svc), http.MethodGet, "/jackpots/jackpot-fixed/events?type=jackpot.reward.won&limit=5", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":1`)
		assert.Contains(t, w.Body.String(), `"event_type":"jackpot.reward.won"`)
	})

	t.Run("unknown event type", func(t *testing.T) {
		w := doRequest(t, newEventRouter(mocks.NewMockEventLogService(t)), http.MethodGet, "/jackpots/jackpot-fixed/events?type=user.registered", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidEventType)
	})

	t.Run("bad limit", func(t *testing.T) {
		w := doRequest(t, newEventRouter(mocks.NewMockEventLogService(t)), http.MethodGet, "/jackpots/jackpot-fixed/events?limit=0", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidLimit)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := mocks.NewMockEventLogService(t)
		svc.On("RecentEvents", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		w := doRequest(t, newEventRouter(svc), http.MethodGet, "/jackpots/jackpot-fixed/events", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgEventLogQueryFailed)
		assert.NotContains(t, w.Body.String(), "db down")
	})

	t.Run("backend without event log", func(t *testing.T) {
		w := doRequest(t, newEventRouter(nil), http.MethodGet, "/jackpots/jackpot-fixed/events", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgEventLogUnavailable)
	})
}
