package feats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbaillis/epic-api/internal/entities/epic"
	"github.com/tbaillis/epic-api/internal/errors"
	"github.com/tbaillis/epic-api/internal/rulebook/feats"
)

func testCatalog(t *testing.T) *feats.Catalog {
	t.Helper()

	catalog, err := feats.NewCatalog([]feats.Descriptor{
		{
			ID:       "iron-will",
			Name:     "Iron Will",
			Category: feats.CategoryGeneral,
			Effect:   feats.Effect{BonusTarget: "will_save", Bonus: 2},
		},
		{
			ID:         "epic-toughness",
			Name:       "Epic Toughness",
			Category:   feats.CategoryEpic,
			Repeatable: true,
			Prerequisites: []feats.Predicate{
				feats.MinLevel(21),
			},
			Effect: feats.Effect{BonusTarget: "hit_points", Bonus: 30},
		},
		{
			ID:       "epic-will",
			Name:     "Epic Will",
			Category: feats.CategoryEpic,
			Prerequisites: []feats.Predicate{
				feats.MinLevel(21),
				feats.HasFeat("iron-will"),
			},
			Effect: feats.Effect{BonusTarget: "will_save", Bonus: 4},
		},
		{
			ID:       "transcendent-will",
			Name:     "Transcendent Will",
			Category: feats.CategoryEpic,
			Prerequisites: []feats.Predicate{
				feats.MinLevel(27),
				feats.MinAbility(epic.AbilityWisdom, 25),
				feats.HasEpicFeat("epic-will"),
			},
			Effect: feats.Effect{Unlock: "reroll_will_saves"},
		},
	})
	require.NoError(t, err)
	return catalog
}

func TestNewCatalog_RejectsUnknownReferences(t *testing.T) {
	_, err := feats.NewCatalog([]feats.Descriptor{
		{
			ID:       "orphan",
			Category: feats.CategoryEpic,
			Prerequisites: []feats.Predicate{
				feats.HasEpicFeat("no-such-capability"),
			},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestCatalog_Get(t *testing.T) {
	catalog := testCatalog(t)

	d, err := catalog.Get("epic-will")
	require.NoError(t, err)
	assert.Equal(t, "Epic Will", d.Name)

	_, err = catalog.Get("nope")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestCatalog_ListEligible(t *testing.T) {
	catalog := testCatalog(t)

	snapshot := &epic.CharacterSnapshot{Level: 21, Feats: []string{"iron-will"}}
	snapshot.AbilityScores.Wisdom = 12

	t.Run("orders by power score descending", func(t *testing.T) {
		eligible := catalog.ListEligible(snapshot, 21)
		require.Len(t, eligible, 2)
		// epic-toughness scores 60, epic-will scores 8 + chain depth
		assert.Equal(t, "epic-toughness", eligible[0].ID)
		assert.Equal(t, "epic-will", eligible[1].ID)
	})

	t.Run("excludes ordinary capabilities", func(t *testing.T) {
		for _, d := range catalog.ListEligible(snapshot, 21) {
			assert.True(t, d.IsEpic())
		}
	})

	t.Run("excludes held non-repeatable, keeps repeatable", func(t *testing.T) {
		held := &epic.CharacterSnapshot{
			Level:     21,
			Feats:     []string{"iron-will"},
			EpicFeats: []string{"epic-will", "epic-toughness"},
		}
		eligible := catalog.ListEligible(held, 21)
		require.Len(t, eligible, 1)
		assert.Equal(t, "epic-toughness", eligible[0].ID)
	})

	t.Run("deep chain opens at its gating level", func(t *testing.T) {
		adept := &epic.CharacterSnapshot{
			Level:     27,
			Feats:     []string{"iron-will"},
			EpicFeats: []string{"epic-will"},
		}
		adept.AbilityScores.Wisdom = 26

		eligible := catalog.ListEligible(adept, 27)
		ids := make([]string, 0, len(eligible))
		for _, d := range eligible {
			ids = append(ids, d.ID)
		}
		assert.Contains(t, ids, "transcendent-will")
	})
}

func TestCatalog_UnmetPrerequisites_ReportsEveryFailure(t *testing.T) {
	catalog := testCatalog(t)

	snapshot := &epic.CharacterSnapshot{Level: 22}
	snapshot.AbilityScores.Wisdom = 20

	d, err := catalog.Get("transcendent-will")
	require.NoError(t, err)

	unmet := catalog.UnmetPrerequisites(snapshot, d)
	require.Len(t, unmet, 3)
	assert.Contains(t, unmet[0], "level 27 required")
	assert.Contains(t, unmet[1], "wisdom 25 required, currently 20")
	assert.Contains(t, unmet[2], `epic feat "epic-will" required`)
}

func TestCatalog_PowerScore_PrefersUnlocksAndChains(t *testing.T) {
	catalog := testCatalog(t)

	toughness, _ := catalog.Get("epic-toughness")
	transcendent, _ := catalog.Get("transcendent-will")
	epicWill, _ := catalog.Get("epic-will")

	assert.Equal(t, int32(60), catalog.PowerScore(toughness))
	// unlock bonus plus a two-deep prerequisite chain
	assert.Equal(t, int32(16), catalog.PowerScore(transcendent))
	// bonus 4 doubled plus one chain level
	assert.Equal(t, int32(11), catalog.PowerScore(epicWill))
}

func TestCatalog_PowerScore_SharedAncestorKeepsFullDepth(t *testing.T) {
	// battle-mastery reaches war-discipline both directly and through
	// grand-strategy; the longer branch must set the chain depth even
	// though the shorter one visits the shared capability first.
	catalog, err := feats.NewCatalog([]feats.Descriptor{
		{
			ID:       "soldiers-training",
			Name:     "Soldier's Training",
			Category: feats.CategoryGeneral,
		},
		{
			ID:            "war-discipline",
			Name:          "War Discipline",
			Category:      feats.CategoryEpic,
			Prerequisites: []feats.Predicate{feats.HasFeat("soldiers-training")},
		},
		{
			ID:            "grand-strategy",
			Name:          "Grand Strategy",
			Category:      feats.CategoryEpic,
			Prerequisites: []feats.Predicate{feats.HasEpicFeat("war-discipline")},
		},
		{
			ID:       "battle-mastery",
			Name:     "Battle Mastery",
			Category: feats.CategoryEpic,
			Prerequisites: []feats.Predicate{
				feats.HasEpicFeat("war-discipline"),
				feats.HasEpicFeat("grand-strategy"),
			},
		},
	})
	require.NoError(t, err)

	mastery, err := catalog.Get("battle-mastery")
	require.NoError(t, err)

	// war-discipline 1 deep, grand-strategy 2, battle-mastery 3
	assert.Equal(t, int32(9), catalog.PowerScore(mastery))
}

func TestDefaultCatalog(t *testing.T) {
	catalog, err := feats.DefaultCatalog()
	require.NoError(t, err)

	snapshot := &epic.CharacterSnapshot{Level: 21, ClassID: "fighter"}
	snapshot.AbilityScores.Strength = 24
	snapshot.AbilityScores.Constitution = 18

	eligible := catalog.ListEligible(snapshot, 21)
	assert.NotEmpty(t, eligible)
	for _, d := range eligible {
		assert.True(t, d.IsEpic(), "%s must be epic", d.ID)
	}
}
