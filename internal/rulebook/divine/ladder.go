// Package divine implements the divine rank ladder: a fixed table of rank
// tiers 0 through 20 and the validated transitions between them. Rank
// changes go through Ascend and AdvanceRank only, so the monotonic and
// level-gated invariants cannot be bypassed by direct field mutation.
package divine

import (
	"github.com/tbaillis/epic-api/internal/entities/epic"
	"github.com/tbaillis/epic-api/internal/errors"
)

// Tier is one rung of the divine rank ladder. Immunity sets are strict
// supersets of the previous tier's, so replacing a snapshot's immunities
// with the new tier's set never loses anything.
type Tier struct {
	Rank           int32    `json:"rank"`
	Title          string   `json:"title"`
	MinLevel       int32    `json:"min_level"`
	Immunities     []string `json:"immunities"`
	OffensiveDice  int32    `json:"offensive_dice"`
	CosmicPowerIDs []string `json:"cosmic_power_ids,omitempty"`
}

// AscensionMetrics are the externally-tracked worship and quest inputs the
// rank 0 to 1 gate evaluates. The caller supplies them; this core never
// tracks worship itself.
type AscensionMetrics struct {
	Followers       int64    `json:"followers"`
	Temples         int32    `json:"temples"`
	HasRealm        bool     `json:"has_realm"`
	CompletedQuests []string `json:"completed_quests"`
}

// Ladder is the loaded tier table plus the ascension gate
type Ladder struct {
	tiers [epic.MaxDivineRank + 1]Tier
	gate  AscensionGate
}

// AscensionGate is the composite eligibility gate for the first rank
type AscensionGate struct {
	MinLevel      int32
	MinCharisma   int32
	MinWisdom     int32
	RequiredFeats []string
	MinFollowers  int64
	MinTemples    int32
	RequireRealm  bool
	RequiredQuest string
}

// NewLadder builds a ladder from the given tiers, which must cover ranks
// 0 through 20 in order with monotonically growing immunity sets.
func NewLadder(tiers []Tier, gate AscensionGate) (*Ladder, error) {
	if len(tiers) != int(epic.MaxDivineRank)+1 {
		return nil, errors.InvalidArgumentf("ladder requires %d tiers, got %d",
			epic.MaxDivineRank+1, len(tiers))
	}

	l := &Ladder{gate: gate}
	for i, t := range tiers {
		if t.Rank != int32(i) {
			return nil, errors.InvalidArgumentf("tier at index %d has rank %d", i, t.Rank)
		}
		if i > 0 {
			prev := tiers[i-1]
			if t.MinLevel < prev.MinLevel {
				return nil, errors.InvalidArgumentf("tier %d level gate regresses", t.Rank)
			}
			if len(t.Immunities) <= len(prev.Immunities) {
				return nil, errors.InvalidArgumentf("tier %d immunities must strictly grow", t.Rank)
			}
		}
		l.tiers[i] = t
	}
	return l, nil
}

// Tier returns the tier for a rank
func (l *Ladder) Tier(rank int32) (Tier, error) {
	if rank < 0 || rank > epic.MaxDivineRank {
		return Tier{}, errors.OutOfRangef("rank %d outside ladder range 0..%d", rank, epic.MaxDivineRank)
	}
	return l.tiers[rank], nil
}

// Gate returns the ascension eligibility gate
func (l *Ladder) Gate() AscensionGate {
	return l.gate
}

// CheckAscension evaluates every gate condition and returns a validation
// error listing all unmet conditions, or nil when the character may ascend.
func (l *Ladder) CheckAscension(snapshot *epic.CharacterSnapshot, metrics AscensionMetrics) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateMin("level", snapshot.Level, l.gate.MinLevel, vb)
	errors.ValidateMin("charisma", snapshot.AbilityScores.Charisma, l.gate.MinCharisma, vb)
	errors.ValidateMin("wisdom", snapshot.AbilityScores.Wisdom, l.gate.MinWisdom, vb)

	for _, featID := range l.gate.RequiredFeats {
		if !snapshot.HasEpicFeat(featID) && !snapshot.HasFeat(featID) {
			vb.Fieldf("capabilities", "must hold %q", featID)
		}
	}

	if metrics.Followers < l.gate.MinFollowers {
		vb.Fieldf("followers", "must be at least %d, currently %d", l.gate.MinFollowers, metrics.Followers)
	}
	errors.ValidateMin("temples", metrics.Temples, l.gate.MinTemples, vb)
	if l.gate.RequireRealm && !metrics.HasRealm {
		vb.Field("realm", "a claimed divine realm is required")
	}
	if l.gate.RequiredQuest != "" {
		completed := false
		for _, q := range metrics.CompletedQuests {
			if q == l.gate.RequiredQuest {
				completed = true
				break
			}
		}
		if !completed {
			vb.Fieldf("quests", "quest %q must be completed", l.gate.RequiredQuest)
		}
	}

	return vb.Build()
}

// Ascend transitions the snapshot from rank 0 to rank 1. Permitted only
// once; the composite gate is evaluated at call time and every unmet
// condition is reported. On failure the snapshot is untouched.
func (l *Ladder) Ascend(snapshot *epic.CharacterSnapshot, metrics AscensionMetrics) error {
	if snapshot.DivineRank > 0 {
		return errors.FailedPreconditionf("already divine at rank %d, ascension is permitted only once",
			snapshot.DivineRank)
	}
	if err := l.CheckAscension(snapshot, metrics); err != nil {
		return err
	}

	l.apply(snapshot, l.tiers[1])
	return nil
}

// AdvanceRank transitions the snapshot strictly upward to toRank. Each
// intermediate tier's level gate must independently hold for the
// snapshot's current level. Grants the destination tier's full immunity
// set (a superset, so replacement is safe) and appends every cosmic power
// unlocked by the traversed tiers. On failure the snapshot is untouched.
func (l *Ladder) AdvanceRank(snapshot *epic.CharacterSnapshot, toRank int32) error {
	if snapshot.DivineRank >= epic.MaxDivineRank {
		return errors.MaxRankReached("divine rank is already at its maximum")
	}
	if snapshot.DivineRank == 0 {
		return errors.FailedPrecondition("mortals must ascend before advancing rank")
	}
	if toRank > epic.MaxDivineRank {
		return errors.OutOfRangef("rank %d exceeds the ladder maximum %d", toRank, epic.MaxDivineRank)
	}
	if toRank <= snapshot.DivineRank {
		return errors.InvalidArgumentf("rank must advance strictly upward, currently %d, requested %d",
			snapshot.DivineRank, toRank)
	}

	vb := errors.NewValidationBuilder()
	for rank := snapshot.DivineRank + 1; rank <= toRank; rank++ {
		if snapshot.Level < l.tiers[rank].MinLevel {
			vb.Fieldf("level", "rank %d requires level %d, currently %d",
				rank, l.tiers[rank].MinLevel, snapshot.Level)
		}
	}
	if err := vb.Build(); err != nil {
		return err
	}

	for rank := snapshot.DivineRank + 1; rank <= toRank; rank++ {
		l.apply(snapshot, l.tiers[rank])
	}
	return nil
}

// UnlockedCosmicPowers returns the cosmic power ids available at or below
// the given rank that the snapshot does not yet hold.
func (l *Ladder) UnlockedCosmicPowers(snapshot *epic.CharacterSnapshot, rank int32) []string {
	if rank > epic.MaxDivineRank {
		rank = epic.MaxDivineRank
	}
	var unlocked []string
	for r := int32(1); r <= rank; r++ {
		for _, id := range l.tiers[r].CosmicPowerIDs {
			if !snapshot.HasCosmicPower(id) {
				unlocked = append(unlocked, id)
			}
		}
	}
	return unlocked
}

func (l *Ladder) apply(snapshot *epic.CharacterSnapshot, tier Tier) {
	snapshot.DivineRank = tier.Rank

	immunities := make([]string, len(tier.Immunities))
	copy(immunities, tier.Immunities)
	snapshot.Immunities = immunities

	for _, id := range tier.CosmicPowerIDs {
		if !snapshot.HasCosmicPower(id) {
			snapshot.CosmicPowers = append(snapshot.CosmicPowers, id)
		}
	}
}
