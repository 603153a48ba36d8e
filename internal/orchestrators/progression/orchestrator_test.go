package progression_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/tbaillis/epic-api/internal/entities/epic"
	"github.com/tbaillis/epic-api/internal/errors"
	"github.com/tbaillis/epic-api/internal/monitor"
	"github.com/tbaillis/epic-api/internal/orchestrators/progression"
	"github.com/tbaillis/epic-api/internal/pkg/clock"
	"github.com/tbaillis/epic-api/internal/pkg/idgen"
	characterrepo "github.com/tbaillis/epic-api/internal/repositories/character"
	historyrepo "github.com/tbaillis/epic-api/internal/repositories/history"
	"github.com/tbaillis/epic-api/internal/rulebook/classes"
	"github.com/tbaillis/epic-api/internal/rulebook/divine"
	"github.com/tbaillis/epic-api/internal/rulebook/feats"
	"github.com/tbaillis/epic-api/internal/rulebook/milestones"
	"github.com/tbaillis/epic-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	orchestrator  progression.Service
	characterRepo characterrepo.Repository
	historyRepo   historyrepo.Repository
	registry      *prometheus.Registry
	cleanup       func()
	ctx           context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	fixed := clock.NewFixed(time.Unix(1700000000, 0))

	var err error
	s.characterRepo, err = characterrepo.NewRedis(&characterrepo.RedisConfig{
		Client: client,
		Clock:  fixed,
	})
	s.Require().NoError(err)

	s.historyRepo, err = historyrepo.NewRedis(&historyrepo.RedisConfig{Client: client})
	s.Require().NoError(err)

	s.registry = prometheus.NewRegistry()
	mon, err := monitor.New(&monitor.Config{
		Registerer: s.registry,
		Logger:     slog.Default(),
		Clock:      fixed,
	})
	s.Require().NoError(err)

	s.orchestrator, err = progression.New(&progression.Config{
		CharacterRepo: s.characterRepo,
		HistoryRepo:   s.historyRepo,
		FeatCatalog:   feats.MustDefaultCatalog(),
		ClassTable:    classes.DefaultTable(),
		Ladder:        divine.MustDefaultLadder(),
		Milestones:    milestones.MustDefaultRegistry(),
		Monitor:       mon,
		IDGenerator:   idgen.NewSequential("test"),
		Clock:         fixed,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *OrchestratorTestSuite) createFighter(level int32, xp int64) *epic.CharacterSnapshot {
	snapshot := testutils.NewEpicFighter("char-001")
	snapshot.Level = level
	snapshot.ExperiencePoints = xp

	_, err := s.characterRepo.Create(s.ctx, characterrepo.CreateInput{Snapshot: snapshot})
	s.Require().NoError(err)
	return snapshot
}

func (s *OrchestratorTestSuite) TestAdvance_InsufficientExperience() {
	s.createFighter(20, 0)

	_, err := s.orchestrator.Advance(s.ctx, &progression.AdvanceInput{
		CharacterID: "char-001",
		TargetLevel: 21,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "210000")
	s.Contains(err.Error(), "experience_points")
}

func (s *OrchestratorTestSuite) TestAdvance_ReportsEveryViolation() {
	s.createFighter(20, 0)

	_, err := s.orchestrator.Advance(s.ctx, &progression.AdvanceInput{
		CharacterID: "char-001",
		TargetLevel: 101,
	})
	s.Require().Error(err)

	meta := errors.GetMeta(err)
	fields, ok := meta["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Contains(fields, "target_level")
	s.Contains(fields, "experience_points")
}

func (s *OrchestratorTestSuite) TestAdvance_ToLevel21() {
	s.createFighter(20, 210000)

	output, err := s.orchestrator.Advance(s.ctx, &progression.AdvanceInput{
		CharacterID: "char-001",
		TargetLevel: 21,
	})
	s.Require().NoError(err)

	s.Equal(int32(21), output.Snapshot.Level)
	s.Require().Len(output.Steps, 1)
	step := output.Steps[0]

	// d10 fighter with +4 Con
	s.Equal(int32(10), step.HPGain)
	// odd epic level, no attack or save gain
	s.Equal(int32(0), step.AttackBonusGain)

	// Exactly one open decision: the epic feat slot, no ability increase
	s.Require().Len(output.OpenDecisions, 1)
	decision := output.OpenDecisions[0]
	s.Equal(epic.DecisionTypeEpicFeat, decision.Type)
	s.Equal(int32(1), decision.Count)
	s.NotEmpty(decision.Options)
	s.Equal(decision.Options, step.EligibleFeatIDs)

	s.Contains(output.NewMilestones, "epic-ascendant")
}

func (s *OrchestratorTestSuite) TestAdvance_MultiLevel() {
	s.createFighter(21, progression.RequiredExperience(30))

	output, err := s.orchestrator.Advance(s.ctx, &progression.AdvanceInput{
		CharacterID: "char-001",
		TargetLevel: 30,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Steps, 9)

	var featDecisions, abilityDecisions, attackGain int32
	for _, decision := range output.Snapshot.PendingDecisions {
		switch decision.Type {
		case epic.DecisionTypeEpicFeat:
			featDecisions++
		case epic.DecisionTypeAbilityIncrease:
			abilityDecisions++
		}
	}
	for _, step := range output.Steps {
		attackGain += step.AttackBonusGain
	}

	// Feat slots at 24, 27, 30; ability increases at 24 and 28
	s.Equal(int32(3), featDecisions)
	s.Equal(int32(2), abilityDecisions)
	// Even levels 22..30
	s.Equal(int32(5), attackGain)
	s.Equal(int32(5), output.Snapshot.EpicAttackBonus)

	s.Contains(output.NewMilestones, "legend-of-the-age")
}

func (s *OrchestratorTestSuite) TestAdvance_FeatCountFormula() {
	// Total slots surfaced from 21 through L must equal (L-21)/3 + 1
	s.createFighter(20, progression.RequiredExperience(40))

	output, err := s.orchestrator.Advance(s.ctx, &progression.AdvanceInput{
		CharacterID: "char-001",
		TargetLevel: 40,
	})
	s.Require().NoError(err)

	var featDecisions int32
	for _, decision := range output.Snapshot.PendingDecisions {
		if decision.Type == epic.DecisionTypeEpicFeat {
			featDecisions++
		}
	}
	s.Equal(feats.EpicFeatsGrantedBy(40), featDecisions)
}

func (s *OrchestratorTestSuite) TestAdvance_Level40GrantsTwoAbilityIncreases() {
	s.createFighter(39, progression.RequiredExperience(40))

	output, err := s.orchestrator.Advance(s.ctx, &progression.AdvanceInput{
		CharacterID: "char-001",
		TargetLevel: 40,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Steps, 1)
	s.Equal(int32(2), output.Steps[0].AbilityIncreasesDue)

	for _, decision := range output.OpenDecisions {
		if decision.Type == epic.DecisionTypeAbilityIncrease {
			s.Equal(int32(2), decision.Count)
		}
	}
}

func (s *OrchestratorTestSuite) TestAdvance_TargetBelowCurrent() {
	s.createFighter(25, progression.RequiredExperience(25))

	_, err := s.orchestrator.Advance(s.ctx, &progression.AdvanceInput{
		CharacterID: "char-001",
		TargetLevel: 24,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAdvance_LockHeld() {
	s.createFighter(20, 210000)

	_, err := s.characterRepo.AcquireLock(s.ctx, characterrepo.AcquireLockInput{CharacterID: "char-001"})
	s.Require().NoError(err)

	_, err = s.orchestrator.Advance(s.ctx, &progression.AdvanceInput{
		CharacterID: "char-001",
		TargetLevel: 21,
	})
	s.Require().Error(err)
	s.Equal(errors.CodeAborted, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestAdvance_ReleasesLock() {
	s.createFighter(20, 210000)

	_, err := s.orchestrator.Advance(s.ctx, &progression.AdvanceInput{
		CharacterID: "char-001",
		TargetLevel: 21,
	})
	s.Require().NoError(err)

	// Lock must be free again
	_, err = s.characterRepo.AcquireLock(s.ctx, characterrepo.AcquireLockInput{CharacterID: "char-001"})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestApplySelection_EpicFeat() {
	s.createFighter(20, 210000)

	advanced, err := s.orchestrator.Advance(s.ctx, &progression.AdvanceInput{
		CharacterID: "char-001",
		TargetLevel: 21,
	})
	s.Require().NoError(err)
	decision := advanced.OpenDecisions[0]
	choice := decision.Options[0]

	output, err := s.orchestrator.ApplySelection(s.ctx, &progression.ApplySelectionInput{
		CharacterID: "char-001",
		DecisionID:  decision.ID,
		Selections:  []string{choice},
	})
	s.Require().NoError(err)

	s.True(output.Decision.Resolved)
	s.Equal([]string{choice}, output.Decision.Selections)
	s.Contains(output.Snapshot.EpicFeats, choice)
	s.Empty(output.Snapshot.OpenDecisions())
}

func (s *OrchestratorTestSuite) TestApplySelection_AbilityIncrease() {
	s.createFighter(23, progression.RequiredExperience(24))

	advanced, err := s.orchestrator.Advance(s.ctx, &progression.AdvanceInput{
		CharacterID: "char-001",
		TargetLevel: 24,
	})
	s.Require().NoError(err)

	var abilityDecision *epic.PendingDecision
	for i := range advanced.OpenDecisions {
		if advanced.OpenDecisions[i].Type == epic.DecisionTypeAbilityIncrease {
			abilityDecision = &advanced.OpenDecisions[i]
		}
	}
	s.Require().NotNil(abilityDecision)

	before := advanced.Snapshot.AbilityScores.Strength
	output, err := s.orchestrator.ApplySelection(s.ctx, &progression.ApplySelectionInput{
		CharacterID: "char-001",
		DecisionID:  abilityDecision.ID,
		Selections:  []string{string(epic.AbilityStrength)},
	})
	s.Require().NoError(err)
	s.Equal(before+1, output.Snapshot.AbilityScores.Strength)
}

func (s *OrchestratorTestSuite) TestApplySelection_RejectsOffMenuChoice() {
	s.createFighter(20, 210000)

	advanced, err := s.orchestrator.Advance(s.ctx, &progression.AdvanceInput{
		CharacterID: "char-001",
		TargetLevel: 21,
	})
	s.Require().NoError(err)
	decision := advanced.OpenDecisions[0]

	_, err = s.orchestrator.ApplySelection(s.ctx, &progression.ApplySelectionInput{
		CharacterID: "char-001",
		DecisionID:  decision.ID,
		Selections:  []string{"not-on-the-menu"},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestApplySelection_AlreadyResolved() {
	s.createFighter(20, 210000)

	advanced, err := s.orchestrator.Advance(s.ctx, &progression.AdvanceInput{
		CharacterID: "char-001",
		TargetLevel: 21,
	})
	s.Require().NoError(err)
	decision := advanced.OpenDecisions[0]

	_, err = s.orchestrator.ApplySelection(s.ctx, &progression.ApplySelectionInput{
		CharacterID: "char-001",
		DecisionID:  decision.ID,
		Selections:  []string{decision.Options[0]},
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.ApplySelection(s.ctx, &progression.ApplySelectionInput{
		CharacterID: "char-001",
		DecisionID:  decision.ID,
		Selections:  []string{decision.Options[0]},
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestAscend() {
	snapshot := testutils.NewDemigod("char-001")
	snapshot.DivineRank = 0
	snapshot.Immunities = nil
	snapshot.CosmicPowers = nil

	_, err := s.characterRepo.Create(s.ctx, characterrepo.CreateInput{Snapshot: snapshot})
	s.Require().NoError(err)

	output, err := s.orchestrator.Ascend(s.ctx, &progression.AscendInput{
		CharacterID: "char-001",
		Metrics: divine.AscensionMetrics{
			Followers:       15000,
			Temples:         11,
			HasRealm:        true,
			CompletedQuests: []string{divine.QuestTrialOfApotheosis},
		},
	})
	s.Require().NoError(err)
	s.Equal(int32(1), output.Snapshot.DivineRank)
	s.Contains(output.NewMilestones, "first-spark-of-divinity")
}

func (s *OrchestratorTestSuite) TestAdvanceRank_MonotonicAcrossOperations() {
	snapshot := testutils.NewDemigod("char-001")
	snapshot.Level = 60

	_, err := s.characterRepo.Create(s.ctx, characterrepo.CreateInput{Snapshot: snapshot})
	s.Require().NoError(err)

	output, err := s.orchestrator.AdvanceRank(s.ctx, &progression.AdvanceRankInput{
		CharacterID: "char-001",
		ToRank:      4,
	})
	s.Require().NoError(err)
	s.Equal(int32(4), output.Snapshot.DivineRank)

	_, err = s.orchestrator.AdvanceRank(s.ctx, &progression.AdvanceRankInput{
		CharacterID: "char-001",
		ToRank:      3,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	got, err := s.characterRepo.Get(s.ctx, characterrepo.GetInput{ID: "char-001"})
	s.Require().NoError(err)
	s.Equal(int32(4), got.Snapshot.DivineRank, "failed call must not move the rank")
}

func (s *OrchestratorTestSuite) TestAdvance_DivineRankClimbsWithLevels() {
	snapshot := testutils.NewDemigod("char-001")
	snapshot.ExperiencePoints = progression.RequiredExperience(90)

	_, err := s.characterRepo.Create(s.ctx, characterrepo.CreateInput{Snapshot: snapshot})
	s.Require().NoError(err)

	output, err := s.orchestrator.Advance(s.ctx, &progression.AdvanceInput{
		CharacterID: "char-001",
		TargetLevel: 90,
	})
	s.Require().NoError(err)

	// Rank 1 at level 50 climbs one tier each even level through rank 20
	// at 88; the tier applications grant the full immunity chain.
	s.Equal(epic.MaxDivineRank, output.Snapshot.DivineRank)
	s.Len(output.Snapshot.Immunities, 20)
	s.Contains(output.Snapshot.CosmicPowers, "cosmic-consciousness")

	var rankChanges int32
	for _, step := range output.Steps {
		rankChanges += step.RankChange
	}
	s.Equal(int32(19), rankChanges)

	// Past level 80 every rank's cosmic powers must be held
	for rank := int32(1); rank <= epic.MaxDivineRank; rank++ {
		tier, err := divine.MustDefaultLadder().Tier(rank)
		s.Require().NoError(err)
		for _, id := range tier.CosmicPowerIDs {
			s.Contains(output.Snapshot.CosmicPowers, id)
		}
	}
}

func (s *OrchestratorTestSuite) TestAdvance_ResumeDoesNotDuplicateSteps() {
	s.createFighter(21, progression.RequiredExperience(23))

	// A recorded step whose snapshot save never landed: the log is one
	// level ahead of the stored character.
	_, err := s.historyRepo.Append(s.ctx, historyrepo.AppendInput{Step: &epic.ProgressionStep{
		ID:          "orphan-step",
		CharacterID: "char-001",
		Level:       22,
		HPGain:      10,
	}})
	s.Require().NoError(err)

	output, err := s.orchestrator.Advance(s.ctx, &progression.AdvanceInput{
		CharacterID: "char-001",
		TargetLevel: 23,
	})
	s.Require().NoError(err)
	s.Equal(int32(23), output.Snapshot.Level)

	trace, err := s.orchestrator.GetTrace(s.ctx, &progression.GetTraceInput{CharacterID: "char-001"})
	s.Require().NoError(err)
	s.Require().Len(trace.Steps, 2)
	s.Equal(int32(22), trace.Steps[0].Level)
	s.Equal(int32(23), trace.Steps[1].Level)
}

func (s *OrchestratorTestSuite) TestGetTrace() {
	s.createFighter(21, progression.RequiredExperience(25))

	_, err := s.orchestrator.Advance(s.ctx, &progression.AdvanceInput{
		CharacterID: "char-001",
		TargetLevel: 25,
	})
	s.Require().NoError(err)

	trace, err := s.orchestrator.GetTrace(s.ctx, &progression.GetTraceInput{CharacterID: "char-001"})
	s.Require().NoError(err)
	s.Require().Len(trace.Steps, 4)
	for i, step := range trace.Steps {
		s.Equal(int32(22+i), step.Level)
		s.Equal("char-001", step.CharacterID)
	}
}

func (s *OrchestratorTestSuite) TestListEligibleFeats() {
	s.createFighter(21, progression.RequiredExperience(21))

	output, err := s.orchestrator.ListEligibleFeats(s.ctx, &progression.ListEligibleFeatsInput{
		CharacterID: "char-001",
	})
	s.Require().NoError(err)
	s.NotEmpty(output.FeatIDs)

	// The read path reports a duration series like the mutating ones
	count, err := testutil.GatherAndCount(s.registry, "epic_progression_operation_duration_seconds")
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *OrchestratorTestSuite) TestAdvance_UnknownCharacter() {
	_, err := s.orchestrator.Advance(s.ctx, &progression.AdvanceInput{
		CharacterID: "ghost",
		TargetLevel: 21,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func TestRequiredExperience(t *testing.T) {
	tests := []struct {
		level int32
		want  int64
	}{
		{1, 0},
		{20, 190000},
		{21, 210000},
		{22, 231000},
		{100, 4950000},
	}

	for _, tt := range tests {
		if got := progression.RequiredExperience(tt.level); got != tt.want {
			t.Errorf("RequiredExperience(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}
