package feats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbaillis/epic-api/internal/entities/epic"
	"github.com/tbaillis/epic-api/internal/errors"
	"github.com/tbaillis/epic-api/internal/rulebook/feats"
)

func TestEpicFeatDue(t *testing.T) {
	tests := []struct {
		level int32
		due   bool
	}{
		{20, false},
		{21, true},
		{22, false},
		{23, false},
		{24, true},
		{27, true},
		{30, true},
		{99, true},
		{100, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.due, feats.EpicFeatDue(tt.level), "level %d", tt.level)
	}
}

func TestEpicFeatsGrantedBy_MatchesPerLevelGrants(t *testing.T) {
	// Cumulative count at each level must equal the number of levels
	// that surfaced a slot on the way there
	var granted int32
	for level := int32(21); level <= 100; level++ {
		if feats.EpicFeatDue(level) {
			granted++
		}
		assert.Equal(t, granted, feats.EpicFeatsGrantedBy(level), "level %d", level)
	}

	assert.Equal(t, int32(0), feats.EpicFeatsGrantedBy(20))
	assert.Equal(t, int32(1), feats.EpicFeatsGrantedBy(21))
	assert.Equal(t, int32(4), feats.EpicFeatsGrantedBy(30))
}

func TestDueIncreases(t *testing.T) {
	tests := []struct {
		level int32
		want  int32
	}{
		{21, 0},
		{23, 0},
		{24, 1},
		{26, 0},
		{28, 1},
		{36, 1},
		{40, 2},
		{44, 1},
		{100, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, feats.DueIncreases(tt.level), "level %d", tt.level)
	}
}

func TestAbilityCeiling(t *testing.T) {
	assert.Equal(t, int32(40), feats.AbilityCeiling(20))
	assert.Equal(t, int32(40), feats.AbilityCeiling(23))
	assert.Equal(t, int32(41), feats.AbilityCeiling(24))
	assert.Equal(t, int32(45), feats.AbilityCeiling(40))
	assert.Equal(t, int32(60), feats.AbilityCeiling(100))
}

func TestApplyIncrease(t *testing.T) {
	t.Run("applies under the ceiling", func(t *testing.T) {
		snapshot := &epic.CharacterSnapshot{Level: 24}
		snapshot.AbilityScores.Strength = 30

		err := feats.ApplyIncrease(snapshot, epic.AbilityStrength, 1)
		require.NoError(t, err)
		assert.Equal(t, int32(31), snapshot.AbilityScores.Strength)
	})

	t.Run("rejects at the ceiling and leaves the snapshot untouched", func(t *testing.T) {
		snapshot := &epic.CharacterSnapshot{Level: 24}
		snapshot.AbilityScores.Strength = 41

		err := feats.ApplyIncrease(snapshot, epic.AbilityStrength, 1)
		require.Error(t, err)
		assert.True(t, errors.IsCapacityExceeded(err))
		assert.Equal(t, int32(41), snapshot.AbilityScores.Strength)

		meta := errors.GetMeta(err)
		assert.Equal(t, int32(41), meta["current"])
		assert.Equal(t, int32(41), meta["ceiling"])
	})

	t.Run("rejects a multi-point increase crossing the ceiling", func(t *testing.T) {
		snapshot := &epic.CharacterSnapshot{Level: 40}
		snapshot.AbilityScores.Charisma = 44

		err := feats.ApplyIncrease(snapshot, epic.AbilityCharisma, 2)
		require.Error(t, err)
		assert.True(t, errors.IsCapacityExceeded(err))
		assert.Equal(t, int32(44), snapshot.AbilityScores.Charisma)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		snapshot := &epic.CharacterSnapshot{Level: 24}
		err := feats.ApplyIncrease(snapshot, epic.AbilityWisdom, 0)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}
