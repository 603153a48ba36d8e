package divine

import "github.com/tbaillis/epic-api/internal/rulebook/feats"

// QuestTrialOfApotheosis is the quest id the default ascension gate requires
const QuestTrialOfApotheosis = "trial-of-apotheosis"

// DefaultLadder returns the standard rank ladder and ascension gate
func DefaultLadder() (*Ladder, error) {
	return NewLadder(defaultTiers(), DefaultGate())
}

// MustDefaultLadder is DefaultLadder for wiring paths where the static
// content is known valid.
func MustDefaultLadder() *Ladder {
	l, err := DefaultLadder()
	if err != nil {
		panic(err)
	}
	return l
}

// DefaultGate returns the standard rank 0 to 1 eligibility gate
func DefaultGate() AscensionGate {
	return AscensionGate{
		MinLevel:      50,
		MinCharisma:   30,
		MinWisdom:     25,
		RequiredFeats: []string{feats.FeatEpicLeadership, feats.FeatLegendaryCommander},
		MinFollowers:  10000,
		MinTemples:    10,
		RequireRealm:  true,
		RequiredQuest: QuestTrialOfApotheosis,
	}
}

// immunityLadder lists the immunity each rank adds on top of the previous
// tier's set, so every tier is a strict superset of the one below it.
var immunityLadder = []string{
	"disease",
	"poison",
	"sleep",
	"paralysis",
	"stunning",
	"ability-damage",
	"ability-drain",
	"energy-drain",
	"fear",
	"mind-affecting",
	"petrification",
	"polymorph",
	"disintegration",
	"death-effects",
	"imprisonment",
	"banishment",
	"soul-binding",
	"temporal-stasis",
	"energy-damage",
	"antimagic",
}

// cosmicPowersByRank lists the cosmic power ids each rank unlocks
var cosmicPowersByRank = map[int32][]string{
	1:  {"alter-size", "divine-aura"},
	3:  {"remote-sensing"},
	5:  {"divine-blast"},
	6:  {"godly-realm"},
	8:  {"avatar"},
	11: {"alter-reality"},
	13: {"divine-creation"},
	16: {"annihilate"},
	18: {"create-lesser-deity"},
	20: {"cosmic-consciousness"},
}

func rankTitle(rank int32) string {
	switch {
	case rank == 0:
		return "Mortal"
	case rank <= 5:
		return "Demigod"
	case rank <= 10:
		return "Lesser Deity"
	case rank <= 15:
		return "Intermediate Deity"
	default:
		return "Greater Deity"
	}
}

func defaultTiers() []Tier {
	tiers := make([]Tier, 0, 21)
	tiers = append(tiers, Tier{Rank: 0, Title: rankTitle(0), MinLevel: 1})

	for rank := int32(1); rank <= 20; rank++ {
		tiers = append(tiers, Tier{
			Rank:           rank,
			Title:          rankTitle(rank),
			MinLevel:       50 + 2*(rank-1),
			Immunities:     append([]string(nil), immunityLadder[:rank]...),
			OffensiveDice:  rank,
			CosmicPowerIDs: cosmicPowersByRank[rank],
		})
	}
	return tiers
}
