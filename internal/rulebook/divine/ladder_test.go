package divine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tbaillis/epic-api/internal/entities/epic"
	"github.com/tbaillis/epic-api/internal/errors"
	"github.com/tbaillis/epic-api/internal/rulebook/divine"
	"github.com/tbaillis/epic-api/internal/rulebook/feats"
)

type LadderTestSuite struct {
	suite.Suite
	ladder *divine.Ladder
}

func (s *LadderTestSuite) SetupTest() {
	var err error
	s.ladder, err = divine.DefaultLadder()
	s.Require().NoError(err)
}

func (s *LadderTestSuite) readyMortal(level int32) *epic.CharacterSnapshot {
	snapshot := &epic.CharacterSnapshot{
		ID:        "char-001",
		Level:     level,
		EpicFeats: []string{feats.FeatEpicLeadership, feats.FeatLegendaryCommander},
	}
	snapshot.AbilityScores.Charisma = 32
	snapshot.AbilityScores.Wisdom = 26
	return snapshot
}

func (s *LadderTestSuite) readyMetrics() divine.AscensionMetrics {
	return divine.AscensionMetrics{
		Followers:       20000,
		Temples:         12,
		HasRealm:        true,
		CompletedQuests: []string{divine.QuestTrialOfApotheosis},
	}
}

func (s *LadderTestSuite) TestAscend_FailsAtLevel49() {
	snapshot := s.readyMortal(49)

	err := s.ladder.Ascend(snapshot, s.readyMetrics())
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "level")
	s.Equal(int32(0), snapshot.DivineRank, "snapshot must be untouched on failure")
}

func (s *LadderTestSuite) TestAscend_SucceedsAtLevel50() {
	snapshot := s.readyMortal(50)

	err := s.ladder.Ascend(snapshot, s.readyMetrics())
	s.Require().NoError(err)
	s.Equal(int32(1), snapshot.DivineRank)
	s.Equal([]string{"disease"}, snapshot.Immunities)
	s.ElementsMatch([]string{"alter-size", "divine-aura"}, snapshot.CosmicPowers)
}

func (s *LadderTestSuite) TestAscend_ReportsEveryUnmetCondition() {
	snapshot := &epic.CharacterSnapshot{ID: "char-002", Level: 49}
	snapshot.AbilityScores.Charisma = 20
	snapshot.AbilityScores.Wisdom = 20

	err := s.ladder.Ascend(snapshot, divine.AscensionMetrics{})
	s.Require().Error(err)

	meta := errors.GetMeta(err)
	fields, ok := meta["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	for _, field := range []string{"level", "charisma", "wisdom", "capabilities", "followers", "temples", "realm", "quests"} {
		s.Contains(fields, field)
	}
}

func (s *LadderTestSuite) TestAscend_OnlyOnce() {
	snapshot := s.readyMortal(50)
	s.Require().NoError(s.ladder.Ascend(snapshot, s.readyMetrics()))

	err := s.ladder.Ascend(snapshot, s.readyMetrics())
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *LadderTestSuite) TestAdvanceRank_StrictlyUpward() {
	snapshot := s.readyMortal(60)
	snapshot.DivineRank = 3

	err := s.ladder.AdvanceRank(snapshot, 3)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	err = s.ladder.AdvanceRank(snapshot, 2)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(int32(3), snapshot.DivineRank)
}

func (s *LadderTestSuite) TestAdvanceRank_LevelGatesEveryIntermediateTier() {
	snapshot := s.readyMortal(53)
	snapshot.DivineRank = 1

	// rank 3 requires level 54, rank 4 requires level 56
	err := s.ladder.AdvanceRank(snapshot, 4)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(int32(1), snapshot.DivineRank)

	err = s.ladder.AdvanceRank(snapshot, 2)
	s.Require().NoError(err)
	s.Equal(int32(2), snapshot.DivineRank)
}

func (s *LadderTestSuite) TestAdvanceRank_ImmunitiesAreSupersets() {
	snapshot := s.readyMortal(100)
	snapshot.DivineRank = 1
	snapshot.Immunities = []string{"disease"}

	prev := len(snapshot.Immunities)
	for rank := int32(2); rank <= 20; rank++ {
		s.Require().NoError(s.ladder.AdvanceRank(snapshot, rank))
		s.Greater(len(snapshot.Immunities), prev, "rank %d", rank)
		s.Contains(snapshot.Immunities, "disease")
		prev = len(snapshot.Immunities)
	}
	s.Equal(int32(20), snapshot.DivineRank)
	s.Contains(snapshot.CosmicPowers, "cosmic-consciousness")
}

func (s *LadderTestSuite) TestAdvanceRank_MaxRankReached() {
	snapshot := s.readyMortal(100)
	snapshot.DivineRank = 20

	err := s.ladder.AdvanceRank(snapshot, 21)
	s.Require().Error(err)
	s.True(errors.IsMaxRankReached(err))
}

func (s *LadderTestSuite) TestAdvanceRank_MortalsMustAscendFirst() {
	snapshot := s.readyMortal(60)

	err := s.ladder.AdvanceRank(snapshot, 1)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func TestLadderTestSuite(t *testing.T) {
	suite.Run(t, new(LadderTestSuite))
}
