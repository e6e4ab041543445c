package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/eventlog"
	"github.com/osse101/JackpotEngine_Go/internal/repository"
	"github.com/osse101/JackpotEngine_Go/internal/testing/storetest"
)

func TestStore_Conformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) repository.Store {
		return NewStore(requirePool(t))
	}, storetest.Options{Concurrency: 20})
}

func TestStore_DecimalPrecision(t *testing.T) {
	store := NewStore(requirePool(t))
	ctx := context.Background()

	jp := storetest.FixedJackpot("jp-precision", "1")
	require.NoError(t, store.UpsertJackpotConfig(ctx, jp))

	c := &domain.Contribution{
		BetID:                "bet-precision",
		UserID:               1,
		JackpotID:            jp.ID,
		StakeAmount:          dec("33.33"),
		ContributionAmount:   dec("1.67"),
		CurrentJackpotAmount: dec("1001.67"),
		CreatedAt:            time.Now().UTC(),
	}
	_, err := store.CommitContribution(ctx, c, 0)
	require.NoError(t, err)

	got, err := store.FindContributionForBet(ctx, c.BetID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "1.67", got.ContributionAmount.String())

	read, err := store.ReadJackpot(ctx, jp.ID)
	require.NoError(t, err)
	assert.Equal(t, "1001.67", read.CurrentPoolValue.String())
}

func TestEventLogRepository(t *testing.T) {
	repo := NewEventLogRepository(requirePool(t))
	ctx := context.Background()

	userID := int64(7)
	jackpotID := "jp-1"
	require.NoError(t, repo.LogEvent(ctx, eventlog.Record{
		EventType: "jackpot.reward.won",
		UserID:    &userID,
		JackpotID: &jackpotID,
		Payload:   map[string]interface{}{"bet_id": "bet-1"},
		Metadata:  map[string]interface{}{"jackpot_id": "jp-1"},
	}))
	require.NoError(t, repo.LogEvent(ctx, eventlog.Record{
		EventType: "jackpot.contribution.applied",
		Payload:   map[string]interface{}{"bet_id": "bet-2"},
	}))

	all, err := repo.GetEvents(ctx, eventlog.EventFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := repo.GetEvents(ctx, eventlog.EventFilter{UserID: &userID})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "bet-1", mine[0].Payload["bet_id"])
	assert.Equal(t, "jp-1", mine[0].Metadata["jackpot_id"])

	byJackpot, err := repo.GetEvents(ctx, eventlog.EventFilter{JackpotID: &jackpotID, UserID: &userID})
	require.NoError(t, err)
	require.Len(t, byJackpot, 1)
	require.NotNil(t, byJackpot[0].JackpotID)
	assert.Equal(t, jackpotID, *byJackpot[0].JackpotID)

	eventType := "jackpot.contribution.applied"
	byType, err := repo.GetEvents(ctx, eventlog.EventFilter{EventType: &eventType, Limit: 10})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Nil(t, byType[0].UserID)
	assert.Nil(t, byType[0].JackpotID)
	assert.Nil(t, byType[0].Metadata)

	deleted, err := repo.DeleteEventsBefore(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = repo.DeleteEventsBefore(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}
