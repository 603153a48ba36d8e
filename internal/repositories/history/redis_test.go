package history_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbaillis/epic-api/internal/entities/epic"
	"github.com/tbaillis/epic-api/internal/errors"
	"github.com/tbaillis/epic-api/internal/repositories/history"
	"github.com/tbaillis/epic-api/internal/testutils"
)

func setupRepo(t *testing.T) history.Repository {
	t.Helper()

	client, cleanup := testutils.CreateTestRedisClient(t)
	t.Cleanup(cleanup)

	repo, err := history.NewRedis(&history.RedisConfig{Client: client})
	require.NoError(t, err)
	return repo
}

func TestAppendAndList(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for level := int32(21); level <= 23; level++ {
		out, err := repo.Append(ctx, history.AppendInput{Step: &epic.ProgressionStep{
			ID:          "step-" + string(rune('a'+level-21)),
			CharacterID: "char-001",
			Level:       level,
			HPGain:      10,
		}})
		require.NoError(t, err)
		assert.Equal(t, int64(level-20), out.Length)
	}

	listed, err := repo.List(ctx, history.ListInput{CharacterID: "char-001"})
	require.NoError(t, err)
	require.Len(t, listed.Steps, 3)

	// Order is append order
	for i, step := range listed.Steps {
		assert.Equal(t, int32(21+i), step.Level)
	}
}

func TestList_EmptyLog(t *testing.T) {
	repo := setupRepo(t)

	listed, err := repo.List(context.Background(), history.ListInput{CharacterID: "char-unknown"})
	require.NoError(t, err)
	assert.Empty(t, listed.Steps)
}

func TestAppend_Validation(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Append(ctx, history.AppendInput{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = repo.Append(ctx, history.AppendInput{Step: &epic.ProgressionStep{Level: 21}})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
