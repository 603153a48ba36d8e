// Package spellcraft implements epic spell development and casting on
// top of the seed catalog. Casting reserves the spell slot before the
// skill check resolves, so a failed check still consumes the slot.
package spellcraft

import (
	"context"
	"log/slog"

	"github.com/tbaillis/epic-api/internal/errors"
	"github.com/tbaillis/epic-api/internal/monitor"
	"github.com/tbaillis/epic-api/internal/pkg/clock"
	"github.com/tbaillis/epic-api/internal/pkg/dice"
	"github.com/tbaillis/epic-api/internal/pkg/idgen"
	characterrepo "github.com/tbaillis/epic-api/internal/repositories/character"
	compositionrepo "github.com/tbaillis/epic-api/internal/repositories/composition"
	"github.com/tbaillis/epic-api/internal/rulebook/feats"
	"github.com/tbaillis/epic-api/internal/rulebook/milestones"
	"github.com/tbaillis/epic-api/internal/rulebook/seeds"
)

// Operation names reported to the monitor
const (
	opComposeCost  = "compose_cost"
	opDevelopSpell = "develop_spell"
	opCastSpell    = "cast_spell"
	opListSpells   = "list_spells"
)

// Config holds the dependencies for the spellcraft orchestrator
type Config struct {
	CharacterRepo   characterrepo.Repository
	CompositionRepo compositionrepo.Repository
	SeedCatalog     *seeds.Catalog
	Milestones      *milestones.Registry
	Monitor         *monitor.Monitor
	Roller          dice.Roller
	IDGenerator     idgen.Generator
	Clock           clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.CompositionRepo == nil {
		vb.RequiredField("CompositionRepo")
	}
	if c.SeedCatalog == nil {
		vb.RequiredField("SeedCatalog")
	}
	if c.Milestones == nil {
		vb.RequiredField("Milestones")
	}
	if c.Monitor == nil {
		vb.RequiredField("Monitor")
	}

	return vb.Build()
}

// Orchestrator implements the spellcraft Service interface
type Orchestrator struct {
	characterRepo   characterrepo.Repository
	compositionRepo compositionrepo.Repository
	seedCatalog     *seeds.Catalog
	milestones      *milestones.Registry
	monitor         *monitor.Monitor
	roller          dice.Roller
	idGenerator     idgen.Generator
	clock           clock.Clock
}

// New creates a new spellcraft orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.New()
	}
	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("spell")
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		characterRepo:   cfg.CharacterRepo,
		compositionRepo: cfg.CompositionRepo,
		seedCatalog:     cfg.SeedCatalog,
		milestones:      cfg.Milestones,
		monitor:         cfg.Monitor,
		roller:          roller,
		idGenerator:     idGen,
		clock:           c,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// ComposeCost prices a seed and modifier combination. Pricing is pure
// and needs no character, so no lock is taken.
func (o *Orchestrator) ComposeCost(ctx context.Context, input *ComposeCostInput) (*ComposeCostOutput, error) {
	defer o.monitor.Track(opComposeCost)()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	cost, err := o.seedCatalog.ComposeCost(input.SeedIDs, input.Modifiers)
	if err != nil {
		return nil, err
	}

	return &ComposeCostOutput{Cost: cost}, nil
}

// DevelopSpell creates a composition from seeds and modifiers. The same
// seed-set plus modifier-set for the same caster returns the original
// composition instead of creating a duplicate.
func (o *Orchestrator) DevelopSpell(ctx context.Context, input *DevelopSpellInput) (*DevelopSpellOutput, error) {
	defer o.monitor.Track(opDevelopSpell)()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if len(input.SeedIDs) == 0 {
		vb.RequiredField("seed_ids")
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

	if !snapshot.IsSpellcaster() {
		return nil, errors.FailedPreconditionf("character %s has no spellcasting skill", snapshot.ID)
	}
	if !snapshot.HasEpicFeat(feats.FeatEpicSpellcasting) {
		return nil, errors.PrerequisiteNotMetf("developing epic spells requires the %s capability", feats.FeatEpicSpellcasting)
	}

	cost, err := o.seedCatalog.ComposeCost(input.SeedIDs, input.Modifiers)
	if err != nil {
		return nil, err
	}
	if !seeds.CanDevelop(snapshot, cost) {
		available := seeds.DevelopmentBound(snapshot)
		return nil, errors.InsufficientSkill("spell cost exceeds development bound", cost, available)
	}

	// Same seed and modifier set already developed: return the original
	fingerprint := seeds.Fingerprint(input.SeedIDs, input.Modifiers)
	existing, err := o.compositionRepo.GetByFingerprint(ctx, compositionrepo.GetByFingerprintInput{
		CasterID:    snapshot.ID,
		Fingerprint: fingerprint,
	})
	if err == nil {
		return &DevelopSpellOutput{Composition: existing.Composition, Existing: true}, nil
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to check for existing composition")
	}

	comp := &seeds.Composition{
		ID:        o.idGenerator.Generate(),
		Name:      input.Name,
		SeedIDs:   input.SeedIDs,
		Modifiers: input.Modifiers,
		StoredDC:  cost,
		CasterID:  snapshot.ID,
	}
	if _, err := o.compositionRepo.Create(ctx, compositionrepo.CreateInput{Composition: comp}); err != nil {
		return nil, errors.Wrap(err, "failed to store composition")
	}

	snapshot.KnownCompositions = append(snapshot.KnownCompositions, comp.ID)
	achieved := o.milestones.Evaluate(snapshot)
	snapshot.AchievedMilestones = append(snapshot.AchievedMilestones, achieved...)

	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Snapshot: snapshot}); err != nil {
		return nil, errors.Wrap(err, "failed to save snapshot")
	}

	slog.Info("spell developed",
		"character_id", snapshot.ID,
		"composition_id", comp.ID,
		"dc", comp.StoredDC)

	return &DevelopSpellOutput{Composition: comp}, nil
}

// CastSpell resolves a cast of a developed composition. The slot is
// reserved and persisted before the skill check, so an interrupted or
// failed cast never returns the slot.
func (o *Orchestrator) CastSpell(ctx context.Context, input *CastSpellInput) (*CastSpellOutput, error) {
	defer o.monitor.Track(opCastSpell)()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateRequired("composition_id", input.CompositionID, vb)
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

	if !snapshot.KnowsComposition(input.CompositionID) {
		return nil, errors.NotFoundf("character %s has not developed composition %s", snapshot.ID, input.CompositionID)
	}
	compOut, err := o.compositionRepo.Get(ctx, compositionrepo.GetInput{ID: input.CompositionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get composition")
	}
	comp := compOut.Composition

	if snapshot.EpicSpellSlots == nil || snapshot.EpicSpellSlots.Remaining < 1 {
		return nil, errors.ResourceExhaustedf("character %s has no epic spell slots remaining", snapshot.ID)
	}

	// Reserve the slot before the check resolves
	snapshot.EpicSpellSlots.Remaining--
	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Snapshot: snapshot}); err != nil {
		return nil, errors.Wrap(err, "failed to reserve spell slot")
	}

	roll := o.roller.Roll(20)
	total := roll + seeds.DevelopmentBound(snapshot)
	success := total >= comp.StoredDC

	slog.Info("spell cast",
		"character_id", snapshot.ID,
		"composition_id", comp.ID,
		"roll", roll,
		"total", total,
		"dc", comp.StoredDC,
		"success", success)

	return &CastSpellOutput{
		Snapshot:       snapshot,
		Success:        success,
		Roll:           roll,
		CheckTotal:     total,
		DC:             comp.StoredDC,
		SlotsRemaining: snapshot.EpicSpellSlots.Remaining,
	}, nil
}

// ListSpells returns the compositions the caster has developed
func (o *Orchestrator) ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error) {
	defer o.monitor.Track(opListSpells)()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.compositionRepo.ListByCasterID(ctx, compositionrepo.ListByCasterIDInput{
		CasterID: input.CharacterID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list compositions")
	}

	return &ListSpellsOutput{Compositions: out.Compositions}, nil
}

func (o *Orchestrator) releaseLock(ctx context.Context, characterID string) {
	if _, err := o.characterRepo.ReleaseLock(ctx, characterrepo.ReleaseLockInput{
		CharacterID: characterID,
	}); err != nil {
		slog.Error("failed to release advancement lock", "character_id", characterID, "error", err)
	}
}
