// Package dice implements the random rolls behind combat resolution.
package dice

import (
	"errors"
	"math/rand"
	"time"
)

// ErrInvalidSides indicates a die with a non-positive number of sides.
var ErrInvalidSides = errors.New("dice must have positive sides")

// percentileSides is the die used for probability checks.
const percentileSides = 100

// Roller produces the random rolls used by combat.
//
// A Roller is deterministic with respect to its seed: two Rollers created
// with the same non-zero seed produce identical results for the same
// sequence of calls. Seed 0 seeds from the current time.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a Roller from the given seed.
func NewRoller(seed int64) *Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// Roll rolls a single die, returning a value in [1, sides].
func (r *Roller) Roll(sides int) (int, error) {
	if sides <= 0 {
		return 0, ErrInvalidSides
	}
	return rollDie(r.rng, sides), nil
}

// Chance rolls percentile dice against the probability p. Values of p at
// or below 0 never pass; values at or above 1 always pass.
func (r *Roller) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	roll, err := r.Roll(percentileSides)
	if err != nil {
		// Unreachable: percentileSides is a positive constant.
		panic(err)
	}
	return float64(roll) <= p*percentileSides
}

// Pick returns a uniformly random index in [0, n).
// If n is 1 or less, Pick returns 0.
func (r *Roller) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return rollDie(r.rng, n) - 1
}

// rollDie rolls a die with the provided number of sides.
func rollDie(rng *rand.Rand, sides int) int {
	return rng.Intn(sides) + 1
}
