// Package dice provides the die roller used for spellcraft checks
package dice

import "math/rand"

//go:generate mockgen -destination=mock/mock.go -package=dicemock github.com/tbaillis/epic-api/internal/pkg/dice Roller

// Roller rolls a single die
type Roller interface {
	// Roll returns a uniform value in [1, sides]
	Roll(sides int32) int32
}

// Random implements Roller with the default PRNG
type Random struct{}

// Roll returns a uniform value in [1, sides]
func (r *Random) Roll(sides int32) int32 {
	if sides <= 1 {
		return 1
	}
	return rand.Int31n(sides) + 1
}

// New returns the default random roller
func New() Roller {
	return &Random{}
}

// Fixed implements Roller returning a fixed value, for tests
type Fixed struct {
	Value int32
}

// Roll returns the fixed value regardless of sides
func (r *Fixed) Roll(sides int32) int32 {
	return r.Value
}

// NewFixed returns a roller pinned at the given value
func NewFixed(value int32) Roller {
	return &Fixed{Value: value}
}
