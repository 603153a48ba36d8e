package epic

// Ability identifies one of the six ability scores
type Ability string

// Ability constants
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Abilities lists all six abilities in conventional order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// DecisionType identifies the kind of player decision a progression step surfaces
type DecisionType string

// Decision types
const (
	DecisionTypeEpicFeat        DecisionType = "epic_feat"
	DecisionTypeAbilityIncrease DecisionType = "ability_increase"
)

// Progression boundaries
const (
	// EpicLevelFloor is the first epic level
	EpicLevelFloor int32 = 21

	// MaxLevel is the highest level supported by the progression tables
	MaxLevel int32 = 100

	// MaxDivineRank is the top of the divine rank ladder
	MaxDivineRank int32 = 20
)
