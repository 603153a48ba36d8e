// Package progression implements the epic progression orchestrator. It
// walks a character snapshot forward one level at a time, consulting the
// capability catalog, class table, divine ladder, and milestone registry,
// and surfaces every player decision to the caller instead of guessing.
package progression

import (
	"context"
	"log/slog"

	"github.com/tbaillis/epic-api/internal/entities/epic"
	"github.com/tbaillis/epic-api/internal/errors"
	"github.com/tbaillis/epic-api/internal/monitor"
	"github.com/tbaillis/epic-api/internal/pkg/clock"
	"github.com/tbaillis/epic-api/internal/pkg/idgen"
	characterrepo "github.com/tbaillis/epic-api/internal/repositories/character"
	historyrepo "github.com/tbaillis/epic-api/internal/repositories/history"
	"github.com/tbaillis/epic-api/internal/rulebook/classes"
	"github.com/tbaillis/epic-api/internal/rulebook/divine"
	"github.com/tbaillis/epic-api/internal/rulebook/feats"
	"github.com/tbaillis/epic-api/internal/rulebook/milestones"
)

// Operation names reported to the monitor
const (
	opAdvance           = "advance"
	opApplySelection    = "apply_selection"
	opAscend            = "ascend"
	opAdvanceRank       = "advance_rank"
	opGetTrace          = "get_trace"
	opListEligibleFeats = "list_eligible_feats"
)

// Config holds the dependencies for the progression orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	HistoryRepo   historyrepo.Repository
	FeatCatalog   *feats.Catalog
	ClassTable    *classes.Table
	Ladder        *divine.Ladder
	Milestones    *milestones.Registry
	Monitor       *monitor.Monitor
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.HistoryRepo == nil {
		vb.RequiredField("HistoryRepo")
	}
	if c.FeatCatalog == nil {
		vb.RequiredField("FeatCatalog")
	}
	if c.ClassTable == nil {
		vb.RequiredField("ClassTable")
	}
	if c.Ladder == nil {
		vb.RequiredField("Ladder")
	}
	if c.Milestones == nil {
		vb.RequiredField("Milestones")
	}
	if c.Monitor == nil {
		vb.RequiredField("Monitor")
	}

	return vb.Build()
}

// Orchestrator implements the progression Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	historyRepo   historyrepo.Repository
	featCatalog   *feats.Catalog
	classTable    *classes.Table
	ladder        *divine.Ladder
	milestones    *milestones.Registry
	monitor       *monitor.Monitor
	idGenerator   idgen.Generator
	clock         clock.Clock
}

// New creates a new progression orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("step")
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		historyRepo:   cfg.HistoryRepo,
		featCatalog:   cfg.FeatCatalog,
		classTable:    cfg.ClassTable,
		ladder:        cfg.Ladder,
		milestones:    cfg.Milestones,
		monitor:       cfg.Monitor,
		idGenerator:   idGen,
		clock:         c,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// Advance walks the character from its current level to the target level.
// Preconditions are validated all-or-nothing before any mutation; on
// success each level's deltas are applied, recorded as one immutable
// progression step, and persisted before the next level begins, so an
// interrupted multi-level advance can be retried from the last recorded
// level.
func (o *Orchestrator) Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error) {
	defer o.monitor.Track(opAdvance)()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.AcquireLock(ctx, characterrepo.AcquireLockInput{
		CharacterID: input.CharacterID,
	}); err != nil {
		return nil, err
	}
	defer o.releaseLock(ctx, input.CharacterID)

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	snapshot := got.Snapshot

	classCfg, err := o.classTable.Get(snapshot.ClassID)
	if err != nil {
		return nil, err
	}

	if err := o.validateAdvance(snapshot, input.TargetLevel); err != nil {
		return nil, err
	}

	// An interrupted advance can leave the log one level ahead of the
	// snapshot (step recorded, snapshot save never ran). Reconcile against
	// the log so the retry re-applies the level without re-recording it.
	logged, err := o.historyRepo.List(ctx, historyrepo.ListInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read progression log")
	}
	var maxRecorded int32
	for _, s := range logged.Steps {
		if s.Level > maxRecorded {
			maxRecorded = s.Level
		}
	}

	steps := make([]*epic.ProgressionStep, 0, input.TargetLevel-snapshot.Level)
	var newMilestones []string

	for level := snapshot.Level + 1; level <= input.TargetLevel; level++ {
		step := o.applyLevel(snapshot, classCfg, level)

		if level > maxRecorded {
			if _, err := o.historyRepo.Append(ctx, historyrepo.AppendInput{Step: step}); err != nil {
				return nil, errors.Wrapf(err, "failed to record step for level %d", level)
			}
		}
		if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Snapshot: snapshot}); err != nil {
			return nil, errors.Wrapf(err, "failed to save snapshot at level %d", level)
		}

		steps = append(steps, step)
		newMilestones = append(newMilestones, step.MilestonesAchieved...)

		slog.Info("advanced level",
			"character_id", snapshot.ID,
			"level", level,
			"decisions", len(step.DecisionIDs))
	}

	return &AdvanceOutput{
		Snapshot:      snapshot,
		Steps:         steps,
		NewMilestones: newMilestones,
		OpenDecisions: snapshot.OpenDecisions(),
	}, nil
}

// validateAdvance checks every advancement precondition and reports the
// full list of violations, never just the first.
func (o *Orchestrator) validateAdvance(snapshot *epic.CharacterSnapshot, targetLevel int32) error {
	vb := errors.NewValidationBuilder()

	if targetLevel <= snapshot.Level {
		vb.Fieldf("target_level", "must be greater than current level %d", snapshot.Level)
	}
	errors.ValidateRange("target_level", targetLevel, epic.EpicLevelFloor, epic.MaxLevel, vb)
	if snapshot.Level < 20 {
		vb.Fieldf("level", "epic advancement requires level 20, currently %d", snapshot.Level)
	}

	required := RequiredExperience(targetLevel)
	if snapshot.ExperiencePoints < required {
		vb.Fieldf("experience_points", "level %d requires %d, currently %d",
			targetLevel, required, snapshot.ExperiencePoints)
	}

	return vb.Build()
}

// applyLevel computes and applies one level's deltas, returning the
// immutable step record. The snapshot is fully advanced to the level
// before the step is built.
func (o *Orchestrator) applyLevel(snapshot *epic.CharacterSnapshot, classCfg classes.Config, level int32) *epic.ProgressionStep {
	step := &epic.ProgressionStep{
		ID:          o.idGenerator.Generate(),
		CharacterID: snapshot.ID,
		Level:       level,
		RecordedAt:  o.clock.Now().Unix(),
	}

	snapshot.Level = level

	// Derived stat deltas from the class table
	step.HPGain = classes.HPGain(classCfg.HitDie, snapshot.AbilityScores.Modifier(epic.AbilityConstitution))
	step.SkillPointsGain = classes.SkillPointsGain(classCfg.SkillPointsBase, snapshot.AbilityScores.Modifier(epic.AbilityIntelligence))
	step.AttackBonusGain = classes.EpicAttackBonusGain(level)
	saveGain := classes.EpicSaveBonusGain(level)
	step.SaveGains = epic.SaveGains{Fortitude: saveGain, Reflex: saveGain, Will: saveGain}

	snapshot.HitPoints += step.HPGain
	snapshot.SkillPoints += step.SkillPointsGain
	snapshot.EpicAttackBonus += step.AttackBonusGain
	snapshot.EpicSaveBonus += saveGain
	snapshot.SaveBonuses.Fortitude += step.SaveGains.Fortitude
	snapshot.SaveBonuses.Reflex += step.SaveGains.Reflex
	snapshot.SaveBonuses.Will += step.SaveGains.Will

	// Casters keep their spellcasting skill maxed as they level
	if classCfg.Spellcaster && snapshot.SpellcraftRanks > 0 {
		snapshot.SpellcraftRanks++
	}

	// Epic feat slot
	if feats.EpicFeatDue(level) {
		eligible := o.featCatalog.ListEligible(snapshot, level)
		ids := make([]string, 0, len(eligible))
		for _, d := range eligible {
			ids = append(ids, d.ID)
		}
		step.EligibleFeatIDs = ids

		decision := epic.PendingDecision{
			ID:      o.idGenerator.Generate(),
			Level:   level,
			Type:    epic.DecisionTypeEpicFeat,
			Options: ids,
			Count:   1,
		}
		snapshot.PendingDecisions = append(snapshot.PendingDecisions, decision)
		step.DecisionIDs = append(step.DecisionIDs, decision.ID)
	}

	// Ability increase schedule
	if due := feats.DueIncreases(level); due > 0 {
		step.AbilityIncreasesDue = due

		options := make([]string, 0, len(epic.Abilities))
		for _, a := range epic.Abilities {
			options = append(options, string(a))
		}
		decision := epic.PendingDecision{
			ID:      o.idGenerator.Generate(),
			Level:   level,
			Type:    epic.DecisionTypeAbilityIncrease,
			Options: options,
			Count:   due,
		}
		snapshot.PendingDecisions = append(snapshot.PendingDecisions, decision)
		step.DecisionIDs = append(step.DecisionIDs, decision.ID)
	}

	// Epic spell slots for casters, one per even epic level
	if classCfg.Spellcaster && snapshot.IsSpellcaster() && level%2 == 0 {
		if snapshot.EpicSpellSlots == nil {
			snapshot.EpicSpellSlots = &epic.SpellSlots{}
		}
		snapshot.EpicSpellSlots.Total++
		snapshot.EpicSpellSlots.Remaining++
		step.SpellSlotsGranted = 1
	}

	// Divine rank advancement for characters already past the ascension
	// gate: each level may open the next tier's level gate.
	if level >= o.ladder.Gate().MinLevel && snapshot.DivineRank >= 1 && snapshot.DivineRank < epic.MaxDivineRank {
		before := snapshot.DivineRank
		next, _ := o.ladder.Tier(snapshot.DivineRank + 1)
		if level >= next.MinLevel {
			if err := o.ladder.AdvanceRank(snapshot, snapshot.DivineRank+1); err == nil {
				step.RankChange = snapshot.DivineRank - before
			}
		}
	}

	// Cosmic power catch-up sweep at the top of the epic range
	if level >= 80 && snapshot.DivineRank >= 1 {
		unlocked := o.ladder.UnlockedCosmicPowers(snapshot, snapshot.DivineRank)
		for _, id := range unlocked {
			snapshot.CosmicPowers = append(snapshot.CosmicPowers, id)
		}
		step.CosmicPowersGranted = unlocked
	}

	// Milestones
	achieved := o.milestones.Evaluate(snapshot)
	snapshot.AchievedMilestones = append(snapshot.AchievedMilestones, achieved...)
	step.MilestonesAchieved = achieved

	return step
}

// ApplySelection closes a pending decision with the caller's choice. The
// selection is validated against the option set computed when the
// decision was surfaced, and feat prerequisites are re-checked as of the
// decision's level.
func (o *Orchestrator) ApplySelection(ctx context.Context, input *ApplySelectionInput) (*ApplySelectionOutput, error) {
	defer o.monitor.Track(opApplySelection)()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateRequired("decision_id", input.DecisionID, vb)
	if len(input.Selections) == 0 {
		vb.RequiredField("selections")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.characterRepo.AcquireLock(ctx, characterrepo.AcquireLockInput{
		CharacterID: input.CharacterID,
	}); err != nil {
		return nil, err
	}
	defer o.releaseLock(ctx, input.CharacterID)

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	snapshot := got.Snapshot

	idx := -1
	for i := range snapshot.PendingDecisions {
		if snapshot.PendingDecisions[i].ID == input.DecisionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.NotFoundf("decision %s not found for character %s", input.DecisionID, input.CharacterID)
	}
	decision := &snapshot.PendingDecisions[idx]
	if decision.Resolved {
		return nil, errors.FailedPreconditionf("decision %s is already resolved", decision.ID)
	}
	if int32(len(input.Selections)) != decision.Count {
		return nil, errors.InvalidArgumentf("decision requires %d selections, got %d",
			decision.Count, len(input.Selections))
	}
	for _, sel := range input.Selections {
		if !contains(decision.Options, sel) {
			return nil, errors.InvalidArgumentf("selection %q is not among the offered options", sel)
		}
	}

	switch decision.Type {
	case epic.DecisionTypeEpicFeat:
		for _, featID := range input.Selections {
			if err := o.grantFeat(snapshot, featID); err != nil {
				return nil, err
			}
		}
	case epic.DecisionTypeAbilityIncrease:
		for _, sel := range input.Selections {
			if err := feats.ApplyIncrease(snapshot, epic.Ability(sel), 1); err != nil {
				return nil, err
			}
		}
	default:
		return nil, errors.Internalf("unknown decision type %q", decision.Type)
	}

	decision.Resolved = true
	decision.Selections = input.Selections

	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Snapshot: snapshot}); err != nil {
		return nil, errors.Wrap(err, "failed to save snapshot")
	}

	return &ApplySelectionOutput{
		Snapshot: snapshot,
		Decision: *decision,
	}, nil
}

// grantFeat re-validates prerequisites and applies the capability's effect
func (o *Orchestrator) grantFeat(snapshot *epic.CharacterSnapshot, featID string) error {
	descriptor, err := o.featCatalog.Get(featID)
	if err != nil {
		return err
	}
	if !o.featCatalog.MeetsPrerequisites(snapshot, descriptor) {
		unmet := o.featCatalog.UnmetPrerequisites(snapshot, descriptor)
		return errors.PrerequisiteNotMetf("prerequisites for %q are not met", featID).
			WithMeta("unmet", unmet)
	}

	snapshot.EpicFeats = append(snapshot.EpicFeats, featID)
	o.applyFeatEffect(snapshot, descriptor)
	return nil
}

// applyFeatEffect folds a capability's numeric bonus into the snapshot's
// derived totals. Unlock effects carry no immediate stat change.
func (o *Orchestrator) applyFeatEffect(snapshot *epic.CharacterSnapshot, descriptor *feats.Descriptor) {
	effect := descriptor.Effect
	if effect.Bonus == 0 {
		return
	}

	switch effect.BonusTarget {
	case "hit_points":
		snapshot.HitPoints += effect.Bonus
	case "attack":
		snapshot.AttackBonus += effect.Bonus
	case "fortitude_save":
		snapshot.SaveBonuses.Fortitude += effect.Bonus
	case "reflex_save":
		snapshot.SaveBonuses.Reflex += effect.Bonus
	case "will_save":
		snapshot.SaveBonuses.Will += effect.Bonus
	case "spell_slots":
		if snapshot.EpicSpellSlots == nil {
			snapshot.EpicSpellSlots = &epic.SpellSlots{}
		}
		snapshot.EpicSpellSlots.Total += effect.Bonus
		snapshot.EpicSpellSlots.Remaining += effect.Bonus
	case "strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma":
		ability := epic.Ability(effect.BonusTarget)
		snapshot.AbilityScores.SetScore(ability, snapshot.AbilityScores.Score(ability)+effect.Bonus)
	default:
		// Armor, initiative, and similar bonuses live on the descriptor
		// and are read by the presentation layer; no snapshot total here.
	}
}

// ListEligibleFeats returns the ordered eligible capability set
func (o *Orchestrator) ListEligibleFeats(ctx context.Context, input *ListEligibleFeatsInput) (*ListEligibleFeatsOutput, error) {
	defer o.monitor.Track(opListEligibleFeats)()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	atLevel := input.AtLevel
	if atLevel == 0 {
		atLevel = got.Snapshot.Level
	}

	eligible := o.featCatalog.ListEligible(got.Snapshot, atLevel)
	ids := make([]string, 0, len(eligible))
	for _, d := range eligible {
		ids = append(ids, d.ID)
	}

	return &ListEligibleFeatsOutput{FeatIDs: ids}, nil
}

// Ascend performs the rank 0 to 1 transition through the ladder's gate
func (o *Orchestrator) Ascend(ctx context.Context, input *AscendInput) (*AscendOutput, error) {
	defer o.monitor.Track(opAscend)()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.AcquireLock(ctx, characterrepo.AcquireLockInput{
		CharacterID: input.CharacterID,
	}); err != nil {
		return nil, err
	}
	defer o.releaseLock(ctx, input.CharacterID)

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	snapshot := got.Snapshot

	if err := o.ladder.Ascend(snapshot, input.Metrics); err != nil {
		return nil, err
	}

	achieved := o.milestones.Evaluate(snapshot)
	snapshot.AchievedMilestones = append(snapshot.AchievedMilestones, achieved...)

	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Snapshot: snapshot}); err != nil {
		return nil, errors.Wrap(err, "failed to save snapshot")
	}

	slog.Info("character ascended", "character_id", snapshot.ID, "rank", snapshot.DivineRank)

	return &AscendOutput{Snapshot: snapshot, NewMilestones: achieved}, nil
}

// AdvanceRank moves an already-divine character strictly upward
func (o *Orchestrator) AdvanceRank(ctx context.Context, input *AdvanceRankInput) (*AdvanceRankOutput, error) {
	defer o.monitor.Track(opAdvanceRank)()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.AcquireLock(ctx, characterrepo.AcquireLockInput{
		CharacterID: input.CharacterID,
	}); err != nil {
		return nil, err
	}
	defer o.releaseLock(ctx, input.CharacterID)

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	snapshot := got.Snapshot

	if err := o.ladder.AdvanceRank(snapshot, input.ToRank); err != nil {
		return nil, err
	}

	achieved := o.milestones.Evaluate(snapshot)
	snapshot.AchievedMilestones = append(snapshot.AchievedMilestones, achieved...)

	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Snapshot: snapshot}); err != nil {
		return nil, errors.Wrap(err, "failed to save snapshot")
	}

	return &AdvanceRankOutput{Snapshot: snapshot, NewMilestones: achieved}, nil
}

// GetTrace returns the character's recorded progression steps in order
func (o *Orchestrator) GetTrace(ctx context.Context, input *GetTraceInput) (*GetTraceOutput, error) {
	defer o.monitor.Track(opGetTrace)()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.historyRepo.List(ctx, historyrepo.ListInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read trace")
	}

	return &GetTraceOutput{Steps: out.Steps}, nil
}

func (o *Orchestrator) releaseLock(ctx context.Context, characterID string) {
	if _, err := o.characterRepo.ReleaseLock(ctx, characterrepo.ReleaseLockInput{
		CharacterID: characterID,
	}); err != nil {
		slog.Error("failed to release advancement lock", "character_id", characterID, "error", err)
	}
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
