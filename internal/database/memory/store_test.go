package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JackpotEngine_Go/internal/repository"
	"github.com/osse101/JackpotEngine_Go/internal/testing/storetest"
)

func TestStoreConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) repository.Store {
		return NewStore()
	}, storetest.Options{Concurrency: 50})
}

func TestReadJackpotReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.UpsertJackpotConfig(ctx, storetest.FixedJackpot("jp", "1")))

	first, err := store.ReadJackpot(ctx, "jp")
	require.NoError(t, err)
	first.Version = 99

	second, err := store.ReadJackpot(ctx, "jp")
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.Version)
}
