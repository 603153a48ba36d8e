// Package epic implements the epic progression entities
package epic

// AbilityScores holds the six ability scores.
// Scores are current totals, including every epic increase already applied.
type AbilityScores struct {
	Strength     int32 `json:"strength"`
	Dexterity    int32 `json:"dexterity"`
	Constitution int32 `json:"constitution"`
	Intelligence int32 `json:"intelligence"`
	Wisdom       int32 `json:"wisdom"`
	Charisma     int32 `json:"charisma"`
}

// Score returns the current total for the given ability
func (a *AbilityScores) Score(ability Ability) int32 {
	switch ability {
	case AbilityStrength:
		return a.Strength
	case AbilityDexterity:
		return a.Dexterity
	case AbilityConstitution:
		return a.Constitution
	case AbilityIntelligence:
		return a.Intelligence
	case AbilityWisdom:
		return a.Wisdom
	case AbilityCharisma:
		return a.Charisma
	default:
		return 0
	}
}

// SetScore sets the current total for the given ability
func (a *AbilityScores) SetScore(ability Ability, value int32) {
	switch ability {
	case AbilityStrength:
		a.Strength = value
	case AbilityDexterity:
		a.Dexterity = value
	case AbilityConstitution:
		a.Constitution = value
	case AbilityIntelligence:
		a.Intelligence = value
	case AbilityWisdom:
		a.Wisdom = value
	case AbilityCharisma:
		a.Charisma = value
	}
}

// Modifier returns the derived modifier for the given ability
func (a *AbilityScores) Modifier(ability Ability) int32 {
	return AbilityModifier(a.Score(ability))
}

// AbilityModifier computes the modifier for a raw score.
// Uses floor division so odd scores below 10 round toward negative.
func AbilityModifier(score int32) int32 {
	mod := score - 10
	if mod < 0 {
		mod--
	}
	return mod / 2
}

// SaveBonuses holds the three saving throw totals
type SaveBonuses struct {
	Fortitude int32 `json:"fortitude"`
	Reflex    int32 `json:"reflex"`
	Will      int32 `json:"will"`
}

// SpellSlots tracks epic spell slots for a caster.
// Remaining is a shared per-character counter with reserve-then-check
// semantics; casts must serialize on the character.
type SpellSlots struct {
	Total     int32 `json:"total"`
	Remaining int32 `json:"remaining"`
}

// CharacterSnapshot is the mutable aggregate under progression.
// NOTE: This is a data-only struct. All rule evaluation lives in the
// rulebook packages and the progression orchestrator; nothing here
// enforces invariants on its own.
type CharacterSnapshot struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	PlayerID         string        `json:"player_id"`
	ClassID          string        `json:"class_id"`
	Level            int32         `json:"level"`
	ExperiencePoints int64         `json:"experience_points"`
	AbilityScores    AbilityScores `json:"ability_scores"`

	HitPoints   int32       `json:"hit_points"`
	SkillPoints int32       `json:"skill_points"`
	AttackBonus int32       `json:"attack_bonus"`
	SaveBonuses SaveBonuses `json:"save_bonuses"`

	// Held capabilities. Feats are the ordinary set; EpicFeats only
	// populate at level 21 and above.
	Feats     []string `json:"feats"`
	EpicFeats []string `json:"epic_feats,omitempty"`

	// EpicAttackBonus is the post-20 attack bonus track, separate from
	// the base AttackBonus which freezes at level 20.
	EpicAttackBonus int32 `json:"epic_attack_bonus,omitempty"`
	EpicSaveBonus   int32 `json:"epic_save_bonus,omitempty"`

	// Spellcasting. SpellcraftRanks of 0 means non-caster.
	SpellcraftRanks   int32       `json:"spellcraft_ranks,omitempty"`
	CastingAbility    Ability     `json:"casting_ability,omitempty"`
	EpicSpellSlots    *SpellSlots `json:"epic_spell_slots,omitempty"`
	KnownCompositions []string    `json:"known_compositions,omitempty"`

	// Divine track. Rank 0 is mortal; immunities and cosmic powers are
	// granted by rank tiers and only ever grow.
	DivineRank   int32    `json:"divine_rank"`
	Immunities   []string `json:"immunities,omitempty"`
	CosmicPowers []string `json:"cosmic_powers,omitempty"`

	// Progression bookkeeping
	AchievedMilestones []string          `json:"achieved_milestones,omitempty"`
	PendingDecisions   []PendingDecision `json:"pending_decisions,omitempty"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// IsEpic reports whether the character has crossed the epic threshold
func (c *CharacterSnapshot) IsEpic() bool {
	return c.Level >= EpicLevelFloor
}

// IsSpellcaster reports whether the character has spellcasting skill
func (c *CharacterSnapshot) IsSpellcaster() bool {
	return c.SpellcraftRanks > 0
}

// HasFeat reports whether the character holds the given ordinary capability
func (c *CharacterSnapshot) HasFeat(id string) bool {
	for _, f := range c.Feats {
		if f == id {
			return true
		}
	}
	return false
}

// HasEpicFeat reports whether the character holds the given epic capability
func (c *CharacterSnapshot) HasEpicFeat(id string) bool {
	for _, f := range c.EpicFeats {
		if f == id {
			return true
		}
	}
	return false
}

// HasCosmicPower reports whether the character holds the given cosmic power
func (c *CharacterSnapshot) HasCosmicPower(id string) bool {
	for _, p := range c.CosmicPowers {
		if p == id {
			return true
		}
	}
	return false
}

// HasAchieved reports whether the milestone id is already in the achieved set
func (c *CharacterSnapshot) HasAchieved(id string) bool {
	for _, m := range c.AchievedMilestones {
		if m == id {
			return true
		}
	}
	return false
}

// KnowsComposition reports whether the caster has developed the composition
func (c *CharacterSnapshot) KnowsComposition(id string) bool {
	for _, k := range c.KnownCompositions {
		if k == id {
			return true
		}
	}
	return false
}

// OpenDecisions returns the pending decisions not yet closed by a selection
func (c *CharacterSnapshot) OpenDecisions() []PendingDecision {
	open := make([]PendingDecision, 0, len(c.PendingDecisions))
	for _, d := range c.PendingDecisions {
		if !d.Resolved {
			open = append(open, d)
		}
	}
	return open
}
