// Package dice manages a player's dice cup: rolling and wild-aware face counting.
package dice

import "math/rand/v2"

const (
	// MinFace is the lowest die face.
	MinFace = 1
	// MaxFace is the highest die face.
	MaxFace = 6
	// WildFace is the face that counts toward any other face outside a
	// special round.
	WildFace = 1
)

// Roller produces dice values. It is the only source of randomness in the
// game; the rule packages stay pure and tests substitute fixed sequences.
type Roller interface {
	// Roll returns n values, each in [1,6].
	Roll(n int) []int
}

// randRoller draws uniform values from math/rand/v2.
type randRoller struct{}

// NewRoller creates the production Roller.
func NewRoller() Roller {
	return randRoller{}
}

func (randRoller) Roll(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = rand.IntN(MaxFace) + 1
	}
	return values
}

// Set is one player's dice. Values is empty before the first roll of a round
// and replaced wholesale on each roll.
type Set struct {
	Count  int
	Values []int
}

// NewSet creates a set of count unrolled dice.
func NewSet(count int) *Set {
	return &Set{Count: count}
}

// Roll replaces Values with Count fresh values from r.
func (s *Set) Roll(r Roller) []int {
	s.Values = r.Roll(s.Count)
	return s.Values
}

// CountFace counts dice showing face. Outside a special round ones are wild
// and count toward every other face; a query for ones counts only literal
// ones regardless of wildsActive.
func (s *Set) CountFace(face int, wildsActive bool) int {
	total := 0
	for _, v := range s.Values {
		if v == face {
			total++
			continue
		}
		if wildsActive && face != WildFace && v == WildFace {
			total++
		}
	}
	return total
}
