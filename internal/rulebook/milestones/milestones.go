// Package milestones implements the progression milestone registry and
// its idempotent evaluation. Predicates are pure functions over the
// character snapshot; once a milestone id is in a character's achieved set
// it is never re-evaluated.
package milestones

import (
	"sort"

	"github.com/tbaillis/epic-api/internal/entities/epic"
	"github.com/tbaillis/epic-api/internal/errors"
)

// Predicate is a pure, side-effect-free condition over a snapshot
type Predicate func(snapshot *epic.CharacterSnapshot) bool

// Descriptor is one milestone entry. Immutable content.
type Descriptor struct {
	ID        string
	Name      string
	Reward    string
	Predicate Predicate
}

// Registry is the loaded milestone catalog
type Registry struct {
	byID  map[string]Descriptor
	order []string
}

// NewRegistry builds a registry from the given descriptors
func NewRegistry(descriptors []Descriptor) (*Registry, error) {
	r := &Registry{byID: make(map[string]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		if d.ID == "" {
			return nil, errors.InvalidArgument("milestone ID cannot be empty")
		}
		if d.Predicate == nil {
			return nil, errors.InvalidArgumentf("milestone %q has no predicate", d.ID)
		}
		if _, exists := r.byID[d.ID]; exists {
			return nil, errors.AlreadyExistsf("duplicate milestone %q", d.ID)
		}
		r.byID[d.ID] = d
		r.order = append(r.order, d.ID)
	}
	sort.Strings(r.order)
	return r, nil
}

// Get returns the descriptor for an id
func (r *Registry) Get(id string) (Descriptor, error) {
	d, ok := r.byID[id]
	if !ok {
		return Descriptor{}, errors.NotFoundf("unknown milestone %q", id)
	}
	return d, nil
}

// IDs returns all milestone ids in sorted order
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Evaluate runs every not-yet-achieved predicate against the snapshot and
// returns the newly satisfied ids in sorted order. The caller merges the
// result into the snapshot's achieved set; re-running against an unchanged
// snapshot therefore yields the empty set.
func (r *Registry) Evaluate(snapshot *epic.CharacterSnapshot) []string {
	var achieved []string
	for _, id := range r.order {
		if snapshot.HasAchieved(id) {
			continue
		}
		if r.byID[id].Predicate(snapshot) {
			achieved = append(achieved, id)
		}
	}
	return achieved
}
