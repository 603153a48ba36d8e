package spellcraft

//go:generate mockgen -destination=mock/mock_service.go -package=spellcraftmock github.com/tbaillis/epic-api/internal/orchestrators/spellcraft Service

import (
	"context"

	"github.com/tbaillis/epic-api/internal/entities/epic"
	"github.com/tbaillis/epic-api/internal/rulebook/seeds"
)

// Service defines the interface for epic spell operations
type Service interface {
	// ComposeCost prices a seed and modifier combination without
	// developing it
	ComposeCost(ctx context.Context, input *ComposeCostInput) (*ComposeCostOutput, error)

	// DevelopSpell creates a composition from seeds and modifiers.
	// Development is idempotent per seed-set plus modifier-set.
	DevelopSpell(ctx context.Context, input *DevelopSpellInput) (*DevelopSpellOutput, error)

	// CastSpell consumes a spell slot and resolves the skill check
	CastSpell(ctx context.Context, input *CastSpellInput) (*CastSpellOutput, error)

	// ListSpells returns a caster's developed compositions
	ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error)
}

// ComposeCostInput defines the request for pricing a composition
type ComposeCostInput struct {
	SeedIDs   []string
	Modifiers []seeds.Modifier
}

// ComposeCostOutput defines the response for pricing a composition
type ComposeCostOutput struct {
	// Cost is the development DC, never below the floor
	Cost int32
}

// DevelopSpellInput defines the request for developing a spell
type DevelopSpellInput struct {
	CharacterID string
	Name        string
	SeedIDs     []string
	Modifiers   []seeds.Modifier
}

// DevelopSpellOutput defines the response for developing a spell
type DevelopSpellOutput struct {
	Composition *seeds.Composition
	// Existing is true when the same seed and modifier set was already
	// developed and the original composition is returned
	Existing bool
}

// CastSpellInput defines the request for casting a developed spell
type CastSpellInput struct {
	CharacterID   string
	CompositionID string
}

// CastSpellOutput defines the response for casting a developed spell.
// A failed skill check is a normal outcome, reported here rather than
// as an error; the slot is consumed either way.
type CastSpellOutput struct {
	Snapshot *epic.CharacterSnapshot
	Success  bool
	// Roll is the raw die result, CheckTotal the roll plus skill bonus
	Roll       int32
	CheckTotal int32
	DC         int32
	// SlotsRemaining is the remaining slot count after the cast
	SlotsRemaining int32
}

// ListSpellsInput defines the request for listing a caster's spells
type ListSpellsInput struct {
	CharacterID string
}

// ListSpellsOutput defines the response for listing a caster's spells
type ListSpellsOutput struct {
	Compositions []*seeds.Composition
}
