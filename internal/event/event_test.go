package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(ContributionApplied, func(ctx context.Context, event Event) error {
		if event.Type != ContributionApplied {
			t.Errorf("Expected event type %s, got %s", ContributionApplied, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: EventSchemaVersion,
		Type:    ContributionApplied,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}
	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	if err := bus.Publish(context.Background(), Event{Type: JackpotWon}); err != nil {
		t.Errorf("Publish returned error: %v", err)
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(JackpotWon, handler)
	bus.Subscribe(JackpotWon, handler)

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: JackpotWon})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	calledSecond := false

	bus.Subscribe(JackpotWon, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(JackpotWon, func(ctx context.Context, event Event) error {
		calledSecond = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: JackpotWon})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
	if !calledSecond {
		t.Error("A failing handler must not stop the others")
	}
}

func TestNewContributionAppliedEvent(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	evt := NewContributionAppliedEvent(&domain.Contribution{
		BetID:                "bet-1",
		UserID:               42,
		JackpotID:            "jp-1",
		StakeAmount:          decimal.RequireFromString("100"),
		ContributionAmount:   decimal.RequireFromString("5"),
		CurrentJackpotAmount: decimal.RequireFromString("1005"),
		CreatedAt:            created,
	})

	assert.Equal(t, ContributionApplied, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, "jp-1", evt.GetMetadataValue(MetadataKeyJackpotID))
	assert.Nil(t, evt.GetMetadataValue("missing"))

	payload, ok := evt.Payload.(ContributionAppliedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "100.00", payload.StakeAmount)
	assert.Equal(t, "5.00", payload.ContributionAmount)
	assert.Equal(t, "1005.00", payload.CurrentJackpotAmount)
	assert.Equal(t, int64(42), payload.UserID)
	assert.Equal(t, created.Unix(), payload.Timestamp)
}

func TestDecodePayload(t *testing.T) {
	original := JackpotWonPayloadV1{BetID: "bet-9", UserID: 7, JackpotID: "jp-2", RewardAmount: "2500.50"}

	t.Run("typed payload passes through", func(t *testing.T) {
		got, err := DecodePayload[JackpotWonPayloadV1](original)
		require.NoError(t, err)
		assert.Equal(t, original, got)
	})

	t.Run("map payload is converted", func(t *testing.T) {
		raw := map[string]interface{}{
			"bet_id":        "bet-9",
			"user_id":       float64(7),
			"jackpot_id":    "jp-2",
			"reward_amount": "2500.50",
		}
		got, err := DecodePayload[JackpotWonPayloadV1](raw)
		require.NoError(t, err)
		assert.Equal(t, original, got)
	})

	t.Run("pointer payload is dereferenced", func(t *testing.T) {
		got, err := DecodePayload[JackpotWonPayloadV1](&original)
		require.NoError(t, err)
		assert.Equal(t, original, got)
	})

	t.Run("raw JSON is unmarshalled", func(t *testing.T) {
		got, err := DecodePayload[JackpotWonPayloadV1](json.RawMessage(`{"bet_id":"bet-9","user_id":7,"jackpot_id":"jp-2","reward_amount":"2500.50"}`))
		require.NoError(t, err)
		assert.Equal(t, original, got)
	})

	t.Run("malformed JSON is reported", func(t *testing.T) {
		_, err := DecodePayload[JackpotWonPayloadV1]([]byte(`{"bet_id":`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrContextDecodePayload)
	})

	t.Run("struct payload to map", func(t *testing.T) {
		got, err := DecodePayload[map[string]interface{}](original)
		require.NoError(t, err)
		assert.Equal(t, float64(7), got["user_id"])
	})
}
