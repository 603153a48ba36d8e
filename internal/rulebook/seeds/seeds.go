// Package seeds implements the spell composition calculator: an immutable
// seed catalog and the cost arithmetic for composed epic spells.
package seeds

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tbaillis/epic-api/internal/entities/epic"
	"github.com/tbaillis/epic-api/internal/errors"
)

// MinimumCost is the floor every composed spell cost clamps to
const MinimumCost int32 = 21

// Seed is one base building block of a composed spell. Immutable content.
type Seed struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	School      string `json:"school"`
	BaseDC      int32  `json:"base_dc"`
	Description string `json:"description"`
}

// Modifier is one optional cost term on a composition, positive or negative
type Modifier struct {
	Name  string `json:"name"`
	Delta int32  `json:"delta"`
}

// Composition is a developed epic spell: an order-insensitive seed set plus
// modifier terms, with the cost computed once at development time and
// immutable afterwards.
type Composition struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	SeedIDs   []string   `json:"seed_ids"`
	Modifiers []Modifier `json:"modifiers,omitempty"`
	StoredDC  int32      `json:"stored_dc"`
	CasterID  string     `json:"caster_id"`
	CreatedAt int64      `json:"created_at"`
}

// Fingerprint returns a canonical key for the seed-set plus modifier-set
// combination, used to make development idempotent. Seed order does not
// matter, so the fingerprint sorts before joining. Every term is quoted so
// separator characters in a name cannot collide with the join.
func Fingerprint(seedIDs []string, modifiers []Modifier) string {
	ids := make([]string, len(seedIDs))
	for i, id := range seedIDs {
		ids[i] = strconv.Quote(id)
	}
	sort.Strings(ids)

	mods := make([]string, 0, len(modifiers))
	for _, m := range modifiers {
		mods = append(mods, strconv.Quote(m.Name)+":"+strconv.FormatInt(int64(m.Delta), 10))
	}
	sort.Strings(mods)

	return strings.Join(ids, ",") + "|" + strings.Join(mods, ",")
}

// Catalog is the loaded seed registry, keyed by id
type Catalog struct {
	byID  map[string]Seed
	order []string
}

// NewCatalog builds a seed catalog
func NewCatalog(list []Seed) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Seed, len(list))}
	for _, s := range list {
		if s.ID == "" {
			return nil, errors.InvalidArgument("seed ID cannot be empty")
		}
		if _, exists := c.byID[s.ID]; exists {
			return nil, errors.AlreadyExistsf("duplicate seed %q", s.ID)
		}
		c.byID[s.ID] = s
		c.order = append(c.order, s.ID)
	}
	sort.Strings(c.order)
	return c, nil
}

// Get returns the seed for an id
func (c *Catalog) Get(id string) (Seed, error) {
	s, ok := c.byID[id]
	if !ok {
		return Seed{}, errors.NotFoundf("unknown seed %q", id)
	}
	return s, nil
}

// IDs returns all seed ids in sorted order
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// ComposeCost sums each seed's base DC plus all modifier deltas and clamps
// the result to the minimum cost. The sum is commutative and associative
// over the seed set, so reordering seeds never changes the total.
func (c *Catalog) ComposeCost(seedIDs []string, modifiers []Modifier) (int32, error) {
	if len(seedIDs) == 0 {
		return 0, errors.InvalidArgument("at least one seed is required")
	}

	var total int32
	for _, id := range seedIDs {
		s, err := c.Get(id)
		if err != nil {
			return 0, err
		}
		total += s.BaseDC
	}
	for _, m := range modifiers {
		total += m.Delta
	}

	if total < MinimumCost {
		total = MinimumCost
	}
	return total, nil
}

// DevelopmentBound is what the caster can develop against: spellcasting
// skill rank plus the casting ability's modifier.
func DevelopmentBound(snapshot *epic.CharacterSnapshot) int32 {
	return snapshot.SpellcraftRanks + snapshot.AbilityScores.Modifier(snapshot.CastingAbility)
}

// CanDevelop reports whether the caster's bound covers the cost
func CanDevelop(snapshot *epic.CharacterSnapshot, cost int32) bool {
	return DevelopmentBound(snapshot) >= cost
}
