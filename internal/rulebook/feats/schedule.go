package feats

import (
	"github.com/tbaillis/epic-api/internal/entities/epic"
	"github.com/tbaillis/epic-api/internal/errors"
)

// Epic feat cadence: one slot at level 21 and every third level after
const epicFeatInterval int32 = 3

// Ability increase cadence: one point at level 24 and every fourth level
// after, with an explicit extra point at level 40.
const (
	abilityIncreaseFirst    int32 = 24
	abilityIncreaseInterval int32 = 4
	abilityIncreaseBonusAt  int32 = 40
)

// EpicFeatDue reports whether the given level grants an epic feat slot.
// By level L the character has been granted (L-21)/3 + 1 slots in total.
func EpicFeatDue(level int32) bool {
	if level < epic.EpicLevelFloor {
		return false
	}
	return (level-epic.EpicLevelFloor)%epicFeatInterval == 0
}

// EpicFeatsGrantedBy returns the cumulative epic feat slot count at level
func EpicFeatsGrantedBy(level int32) int32 {
	if level < epic.EpicLevelFloor {
		return 0
	}
	return (level-epic.EpicLevelFloor)/epicFeatInterval + 1
}

// DueIncreases returns the number of ability increase decisions the given
// level surfaces: 1 at every fourth level starting at 24, with level 40
// granting a second as a preserved special case.
func DueIncreases(level int32) int32 {
	if level < abilityIncreaseFirst || level%abilityIncreaseInterval != 0 {
		return 0
	}
	if level == abilityIncreaseBonusAt {
		return 2
	}
	return 1
}

// AbilityCeiling returns the epic ability score ceiling at the given
// level. The ceiling is level-scaled: 40 through level 23, then one more
// point for every four levels past 20.
func AbilityCeiling(level int32) int32 {
	if level <= 20 {
		return 40
	}
	return 40 + (level-20)/4
}

// ApplyIncrease applies a one-point permanent increase amount times to the
// given ability, failing with CapacityExceeded if any single point would
// push the score past the ceiling for the snapshot's level. On failure the
// snapshot is left unmodified.
func ApplyIncrease(snapshot *epic.CharacterSnapshot, ability epic.Ability, amount int32) error {
	if amount <= 0 {
		return errors.InvalidArgumentf("increase amount must be positive, got %d", amount)
	}

	ceiling := AbilityCeiling(snapshot.Level)
	current := snapshot.AbilityScores.Score(ability)
	if current+amount > ceiling {
		return errors.CapacityExceededf("%s would rise to %d, ceiling at level %d is %d",
			ability, current+amount, snapshot.Level, ceiling).
			WithMeta("ability", string(ability)).
			WithMeta("current", current).
			WithMeta("ceiling", ceiling)
	}

	for i := int32(0); i < amount; i++ {
		snapshot.AbilityScores.SetScore(ability, snapshot.AbilityScores.Score(ability)+1)
	}
	return nil
}
