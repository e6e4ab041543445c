package eventlog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/event"
	"github.com/osse101/JackpotEngine_Go/internal/eventlog"
	"github.com/osse101/JackpotEngine_Go/mocks"
)

// MockEventBus is a mock implementation of event.Bus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

func TestService_Subscribe(t *testing.T) {
	mockBus := new(MockEventBus)
	mockBus.On("Subscribe", event.ContributionApplied, mock.Anything).Return()
	mockBus.On("Subscribe", event.JackpotWon, mock.Anything).Return()

	err := eventlog.NewService(mocks.NewMockEventLogRepository(t)).Subscribe(mockBus)
	assert.NoError(t, err)
	mockBus.AssertExpectations(t)
}

func TestService_HandleEvent(t *testing.T) {
	repo := mocks.NewMockEventLogRepository(t)
	svc := eventlog.NewService(repo)
	ctx := context.Background()

	evt := event.NewJackpotWonEvent(&domain.Reward{
		BetID:               "bet-1",
		UserID:              42,
		JackpotID:           "jp-1",
		JackpotRewardAmount: decimal.RequireFromString("1005"),
		CreatedAt:           time.Now(),
	})

	repo.On("LogEvent", ctx, mock.MatchedBy(func(rec eventlog.Record) bool {
		return rec.EventType == string(event.JackpotWon) &&
			rec.UserID != nil && *rec.UserID == 42 &&
			rec.JackpotID != nil && *rec.JackpotID == "jp-1" &&
			rec.Payload["bet_id"] == "bet-1" &&
			rec.Payload["reward_amount"] == "1005.00" &&
			rec.Metadata[event.MetadataKeyJackpotID] == "jp-1"
	})).Return(nil)

	require.NoError(t, eventlog.HandleEvent(ctx, svc, evt))
}

func TestService_HandleEvent_MissingKeysStayNil(t *testing.T) {
	repo := mocks.NewMockEventLogRepository(t)
	svc := eventlog.NewService(repo)

	repo.On("LogEvent", mock.Anything, mock.MatchedBy(func(rec eventlog.Record) bool {
		return rec.UserID == nil && rec.JackpotID == nil && rec.Metadata == nil
	})).Return(nil)

	err := eventlog.HandleEvent(context.Background(), svc, event.Event{
		Type:    event.ContributionApplied,
		Payload: map[string]interface{}{"bet_id": "bet-3", "jackpot_id": ""},
	})
	require.NoError(t, err)
}

func TestService_HandleEvent_RepositoryError(t *testing.T) {
	repo := mocks.NewMockEventLogRepository(t)
	svc := eventlog.NewService(repo)

	repo.On("LogEvent", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	err := eventlog.HandleEvent(context.Background(), svc, event.Event{
		Type:    event.ContributionApplied,
		Payload: map[string]interface{}{"bet_id": "bet-2"},
	})
	assert.EqualError(t, err, "insert failed")
}

func TestService_HandleEvent_UndecodablePayloadIsSkipped(t *testing.T) {
	repo := mocks.NewMockEventLogRepository(t)
	svc := eventlog.NewService(repo)

	for _, payload := range []interface{}{"not an object", nil} {
		err := eventlog.HandleEvent(context.Background(), svc, event.Event{Type: event.JackpotWon, Payload: payload})
		assert.NoError(t, err)
	}
	repo.AssertNotCalled(t, "LogEvent", mock.Anything, mock.Anything)
}

func TestService_RecentEvents(t *testing.T) {
	repo := mocks.NewMockEventLogRepository(t)
	jackpotID := "jp-1"
	filter := eventlog.EventFilter{JackpotID: &jackpotID, Limit: 5}

	repo.On("GetEvents", mock.Anything, filter).Return([]eventlog.Event{{ID: 9, EventType: "jackpot.reward.won"}}, nil)

	events, err := eventlog.NewService(repo).RecentEvents(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(9), events[0].ID)
}

func TestService_CleanupOldEvents(t *testing.T) {
	repo := mocks.NewMockEventLogRepository(t)
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	svc := eventlog.NewServiceAt(repo, now)
	ctx := context.Background()

	repo.On("DeleteEventsBefore", ctx, time.Date(2024, 3, 21, 12, 0, 0, 0, time.UTC)).Return(int64(5), nil)

	count, err := svc.CleanupOldEvents(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
