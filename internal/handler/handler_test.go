package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JackpotEngine_Go/mocks"
)

// newTestRouter mounts the API handlers the same way the server does
func newTestRouter(svc *mocks.MockJackpotService, queue *mocks.MockBetPublisher) http.Handler {
	bets := NewBetHandler(svc, queue)
	jackpots := NewJackpotHandler(svc)
	users := NewUserHandler(svc)

	r := chi.NewRouter()
	r.Post("/bets", bets.HandlePlaceBet)
	r.Post("/bets/sync", bets.HandlePlaceBetSync)
	r.Get("/bets/{betId}/contribution", bets.HandleGetContribution)
	r.Get("/jackpots", jackpots.HandleListJackpots)
	r.Get("/jackpots/{jackpotId}", jackpots.HandleGetJackpot)
	r.Post("/jackpots/{jackpotId}/evaluate-reward", jackpots.HandleEvaluateReward)
	r.Get("/jackpots/{jackpotId}/rewards/{betId}", jackpots.HandleGetReward)
	r.Post("/users", users.HandleRegisterUser)
	r.Get("/users/{userId}/contributions", users.HandleListContributions)
	r.Get("/users/{userId}/rewards", users.HandleListRewards)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
