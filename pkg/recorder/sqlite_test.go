package recorder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepository_SaveAndLoadRound(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteRepository(ctx, ":memory:")
	require.NoError(t, err)
	defer repo.Close(ctx)

	require.NoError(t, repo.CreateMatch(ctx, "match-1", 1700000000000))

	payload := []byte{0x01, 0x02, 0x03}
	require.NoError(t, repo.SaveRound(ctx, "match-1", 1, payload))

	loaded, err := repo.LoadRound(ctx, "match-1", 1)
	require.NoError(t, err)
	assert.Equal(t, payload, loaded)
}

func TestSQLiteRepository_SaveRoundOverwrites(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteRepository(ctx, ":memory:")
	require.NoError(t, err)
	defer repo.Close(ctx)

	require.NoError(t, repo.SaveRound(ctx, "match-1", 1, []byte("old")))
	require.NoError(t, repo.SaveRound(ctx, "match-1", 1, []byte("new")))

	loaded, err := repo.LoadRound(ctx, "match-1", 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), loaded)
}

func TestSQLiteRepository_LoadRoundNotFound(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteRepository(ctx, ":memory:")
	require.NoError(t, err)
	defer repo.Close(ctx)

	_, err = repo.LoadRound(ctx, "match-1", 99)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
