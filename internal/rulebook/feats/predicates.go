package feats

import (
	"fmt"

	"github.com/tbaillis/epic-api/internal/entities/epic"
)

// PredicateType tags one variant of a prerequisite predicate
type PredicateType string

// Predicate types
const (
	PredicateMinLevel      PredicateType = "min_level"
	PredicateMinAbility    PredicateType = "min_ability"
	PredicateHasFeat       PredicateType = "has_feat"
	PredicateHasEpicFeat   PredicateType = "has_epic_feat"
	PredicateMinClassLevel PredicateType = "min_class_level"
	PredicateMinSkillRank  PredicateType = "min_skill_rank"
)

// Skill ids referenced by skill rank predicates
const (
	SkillSpellcraft = "spellcraft"
)

// Predicate is one prerequisite condition, evaluated structurally against
// a character snapshot. Exactly the fields relevant to its Type are set.
type Predicate struct {
	Type    PredicateType `json:"type"`
	Ability epic.Ability  `json:"ability,omitempty"`
	FeatID  string        `json:"feat_id,omitempty"`
	ClassID string        `json:"class_id,omitempty"`
	SkillID string        `json:"skill_id,omitempty"`
	Value   int32         `json:"value,omitempty"`
}

// MinLevel builds a minimum character level predicate
func MinLevel(level int32) Predicate {
	return Predicate{Type: PredicateMinLevel, Value: level}
}

// MinAbility builds a minimum ability score predicate.
// It compares against the snapshot's current total, not the base score.
func MinAbility(ability epic.Ability, score int32) Predicate {
	return Predicate{Type: PredicateMinAbility, Ability: ability, Value: score}
}

// HasFeat builds a held ordinary capability predicate
func HasFeat(id string) Predicate {
	return Predicate{Type: PredicateHasFeat, FeatID: id}
}

// HasEpicFeat builds a held epic capability predicate
func HasEpicFeat(id string) Predicate {
	return Predicate{Type: PredicateHasEpicFeat, FeatID: id}
}

// MinClassLevel builds a minimum class level predicate
func MinClassLevel(classID string, level int32) Predicate {
	return Predicate{Type: PredicateMinClassLevel, ClassID: classID, Value: level}
}

// MinSkillRank builds a minimum skill rank predicate
func MinSkillRank(skillID string, ranks int32) Predicate {
	return Predicate{Type: PredicateMinSkillRank, SkillID: skillID, Value: ranks}
}

// Satisfied evaluates the predicate against the snapshot as of atLevel
func (p Predicate) Satisfied(snapshot *epic.CharacterSnapshot, atLevel int32) bool {
	switch p.Type {
	case PredicateMinLevel:
		return atLevel >= p.Value
	case PredicateMinAbility:
		return snapshot.AbilityScores.Score(p.Ability) >= p.Value
	case PredicateHasFeat:
		return snapshot.HasFeat(p.FeatID)
	case PredicateHasEpicFeat:
		return snapshot.HasEpicFeat(p.FeatID)
	case PredicateMinClassLevel:
		return snapshot.ClassID == p.ClassID && atLevel >= p.Value
	case PredicateMinSkillRank:
		if p.SkillID == SkillSpellcraft {
			return snapshot.SpellcraftRanks >= p.Value
		}
		return false
	default:
		return false
	}
}

// Describe renders the predicate for error reporting, including the
// snapshot's current value where one applies.
func (p Predicate) Describe(snapshot *epic.CharacterSnapshot, atLevel int32) string {
	switch p.Type {
	case PredicateMinLevel:
		return fmt.Sprintf("level %d required, currently %d", p.Value, atLevel)
	case PredicateMinAbility:
		return fmt.Sprintf("%s %d required, currently %d",
			p.Ability, p.Value, snapshot.AbilityScores.Score(p.Ability))
	case PredicateHasFeat:
		return fmt.Sprintf("feat %q required", p.FeatID)
	case PredicateHasEpicFeat:
		return fmt.Sprintf("epic feat %q required", p.FeatID)
	case PredicateMinClassLevel:
		return fmt.Sprintf("%s level %d required", p.ClassID, p.Value)
	case PredicateMinSkillRank:
		return fmt.Sprintf("%s %d ranks required, currently %d",
			p.SkillID, p.Value, snapshot.SpellcraftRanks)
	default:
		return fmt.Sprintf("unknown predicate %q", p.Type)
	}
}
