// Package feats implements the epic capability catalog: immutable
// descriptors with structured prerequisite predicates, and the pure
// eligibility queries the progression orchestrator runs against them.
package feats

import (
	"sort"

	"github.com/tbaillis/epic-api/internal/entities/epic"
	"github.com/tbaillis/epic-api/internal/errors"
)

// Category tags a capability descriptor
type Category string

// Categories
const (
	CategoryGeneral     Category = "general"
	CategoryEpic        Category = "epic"
	CategoryEpicAbility Category = "epic_ability"
	CategoryEpicSpell   Category = "epic_spellcasting"
	CategoryEpicDivine  Category = "epic_divine"
)

// Effect describes what taking the capability grants. Descriptors carry at
// most a numeric bonus and an unlock tag; derived-stat application is the
// orchestrator's job.
type Effect struct {
	BonusTarget string `json:"bonus_target,omitempty"`
	Bonus       int32  `json:"bonus,omitempty"`
	Unlock      string `json:"unlock,omitempty"`
	Description string `json:"description"`
}

// Descriptor is one capability entry. Descriptors are immutable content,
// never mutated at runtime.
type Descriptor struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Category      Category    `json:"category"`
	Repeatable    bool        `json:"repeatable"`
	Prerequisites []Predicate `json:"prerequisites,omitempty"`
	Effect        Effect      `json:"effect"`
}

// IsEpic reports whether the descriptor is an epic capability
func (d *Descriptor) IsEpic() bool {
	return d.Category != CategoryGeneral
}

// Catalog is the loaded capability registry. Built once at startup and
// injected into the orchestrator; all queries are pure.
type Catalog struct {
	byID  map[string]*Descriptor
	order []string
	// depth memoizes prerequisite chain depth per descriptor id
	depth map[string]int32
}

// NewCatalog builds a catalog and validates that every capability
// referenced by a prerequisite exists.
func NewCatalog(descriptors []Descriptor) (*Catalog, error) {
	c := &Catalog{
		byID:  make(map[string]*Descriptor, len(descriptors)),
		depth: make(map[string]int32, len(descriptors)),
	}
	for i := range descriptors {
		d := descriptors[i]
		if d.ID == "" {
			return nil, errors.InvalidArgument("descriptor ID cannot be empty")
		}
		if _, exists := c.byID[d.ID]; exists {
			return nil, errors.AlreadyExistsf("duplicate descriptor %q", d.ID)
		}
		c.byID[d.ID] = &d
		c.order = append(c.order, d.ID)
	}
	sort.Strings(c.order)

	for _, id := range c.order {
		for _, p := range c.byID[id].Prerequisites {
			if p.Type != PredicateHasFeat && p.Type != PredicateHasEpicFeat {
				continue
			}
			if _, ok := c.byID[p.FeatID]; !ok {
				return nil, errors.NotFoundf("descriptor %q references unknown capability %q", id, p.FeatID)
			}
		}
	}

	for _, id := range c.order {
		c.chainDepth(id, make(map[string]bool))
	}
	return c, nil
}

// Get returns the descriptor for an id. Unknown ids are a programming
// error given a validated catalog.
func (c *Catalog) Get(id string) (*Descriptor, error) {
	d, ok := c.byID[id]
	if !ok {
		return nil, errors.NotFoundf("unknown capability %q", id)
	}
	return d, nil
}

// IDs returns all descriptor ids in sorted order
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// MeetsPrerequisites evaluates the descriptor's predicate list against the
// snapshot at its current level, with short-circuit AND semantics.
func (c *Catalog) MeetsPrerequisites(snapshot *epic.CharacterSnapshot, d *Descriptor) bool {
	return c.meetsAt(snapshot, snapshot.Level, d)
}

func (c *Catalog) meetsAt(snapshot *epic.CharacterSnapshot, atLevel int32, d *Descriptor) bool {
	for _, p := range d.Prerequisites {
		if !p.Satisfied(snapshot, atLevel) {
			return false
		}
	}
	return true
}

// UnmetPrerequisites returns a description of every failing predicate,
// for presentation-layer error reporting.
func (c *Catalog) UnmetPrerequisites(snapshot *epic.CharacterSnapshot, d *Descriptor) []string {
	var unmet []string
	for _, p := range d.Prerequisites {
		if !p.Satisfied(snapshot, snapshot.Level) {
			unmet = append(unmet, p.Describe(snapshot, snapshot.Level))
		}
	}
	return unmet
}

// ListEligible returns every epic capability whose full predicate list the
// snapshot satisfies as of atLevel, excluding capabilities already held
// unless marked repeatable. Ordering is by power score descending, ties
// broken by id so results are deterministic.
func (c *Catalog) ListEligible(snapshot *epic.CharacterSnapshot, atLevel int32) []*Descriptor {
	var eligible []*Descriptor
	for _, id := range c.order {
		d := c.byID[id]
		if !d.IsEpic() {
			continue
		}
		if snapshot.HasEpicFeat(d.ID) && !d.Repeatable {
			continue
		}
		if c.meetsAt(snapshot, atLevel, d) {
			eligible = append(eligible, d)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		si, sj := c.PowerScore(eligible[i]), c.PowerScore(eligible[j])
		if si != sj {
			return si > sj
		}
		return eligible[i].ID < eligible[j].ID
	})
	return eligible
}

// PowerScore is the ordering heuristic: weighted bonus magnitude plus
// prerequisite chain depth. Deeper chains rank higher because they gate
// stronger capabilities.
func (c *Catalog) PowerScore(d *Descriptor) int32 {
	score := d.Effect.Bonus * 2
	if d.Effect.Unlock != "" {
		score += 10
	}
	score += c.depth[d.ID] * 3
	return score
}

// chainDepth walks held-capability prerequisites, memoizing completed
// results so a capability reachable through several branches contributes
// its full depth from each. The onPath set only guards the current
// recursion path; cycles cannot occur in a validated catalog but the
// guard keeps the walk bounded regardless.
func (c *Catalog) chainDepth(id string, onPath map[string]bool) int32 {
	if d, ok := c.depth[id]; ok {
		return d
	}
	if onPath[id] {
		return 0
	}
	onPath[id] = true

	var deepest int32
	for _, p := range c.byID[id].Prerequisites {
		if p.Type != PredicateHasFeat && p.Type != PredicateHasEpicFeat {
			continue
		}
		if d := c.chainDepth(p.FeatID, onPath) + 1; d > deepest {
			deepest = d
		}
	}
	delete(onPath, id)
	c.depth[id] = deepest
	return deepest
}
