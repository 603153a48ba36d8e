// Package classes holds the class progression table used by the epic
// progression orchestrator. The table is immutable content loaded at
// construction; derivation logic queries it and never mutates it.
package classes

import (
	"sort"

	"github.com/tbaillis/epic-api/internal/errors"
)

// Class ids
const (
	ClassFighter  = "fighter"
	ClassRogue    = "rogue"
	ClassCleric   = "cleric"
	ClassWizard   = "wizard"
	ClassSorcerer = "sorcerer"
)

// Config describes one class's per-level derivation inputs
type Config struct {
	ID              string
	Name            string
	HitDie          int32 // d4..d12
	SkillPointsBase int32 // before Int modifier
	// Spellcaster marks classes that unlock epic spell slots
	Spellcaster bool
}

// Table is the loaded, immutable class catalog keyed by id
type Table struct {
	byID  map[string]Config
	order []string
}

// NewTable builds a table from the given configs
func NewTable(configs []Config) *Table {
	t := &Table{byID: make(map[string]Config, len(configs))}
	for _, cfg := range configs {
		t.byID[cfg.ID] = cfg
		t.order = append(t.order, cfg.ID)
	}
	sort.Strings(t.order)
	return t
}

// DefaultTable returns the standard class configurations
func DefaultTable() *Table {
	return NewTable([]Config{
		{ID: ClassFighter, Name: "Fighter", HitDie: 10, SkillPointsBase: 2},
		{ID: ClassRogue, Name: "Rogue", HitDie: 6, SkillPointsBase: 8},
		{ID: ClassCleric, Name: "Cleric", HitDie: 8, SkillPointsBase: 2, Spellcaster: true},
		{ID: ClassWizard, Name: "Wizard", HitDie: 4, SkillPointsBase: 2, Spellcaster: true},
		{ID: ClassSorcerer, Name: "Sorcerer", HitDie: 4, SkillPointsBase: 2, Spellcaster: true},
	})
}

// Get returns the config for a class id
func (t *Table) Get(id string) (Config, error) {
	cfg, ok := t.byID[id]
	if !ok {
		return Config{}, errors.NotFoundf("unknown class %q", id)
	}
	return cfg, nil
}

// IDs returns the class ids in sorted order
func (t *Table) IDs() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// HPGain is the hit point delta for one epic level: average hit die
// (rounded up) plus the Constitution modifier, floored at 1.
func HPGain(hitDie, conModifier int32) int32 {
	gain := hitDie/2 + 1 + conModifier
	if gain < 1 {
		return 1
	}
	return gain
}

// SkillPointsGain is the skill point delta for one epic level, floored at 1
func SkillPointsGain(base, intModifier int32) int32 {
	gain := base + intModifier
	if gain < 1 {
		return 1
	}
	return gain
}

// EpicAttackBonusGain returns the epic attack bonus delta at the given
// level. Past level 20 the base attack bonus freezes and every even
// level grants +1 on the epic track.
func EpicAttackBonusGain(level int32) int32 {
	if level > 20 && level%2 == 0 {
		return 1
	}
	return 0
}

// EpicSaveBonusGain returns the epic save bonus delta at the given level.
// The epic save track advances in lockstep with the epic attack track.
func EpicSaveBonusGain(level int32) int32 {
	return EpicAttackBonusGain(level)
}
