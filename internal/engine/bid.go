// Package engine implements the Perudo rule engine: the bid raise grammar
// and the Dudo/Calza resolution over the true dice distribution. Everything
// here is a pure function over plain data; turn order, rolling and I/O live
// in the orchestration layer.
package engine

import (
	"errors"
	"fmt"

	"perudo-game/internal/dice"
)

// Errors for bid validation. Every rejection wraps one of these.
var (
	ErrTooManyDice        = errors.New("cannot bid more dice than are in play")
	ErrInvalidBid         = errors.New("invalid bid values")
	ErrOpenOnWild         = errors.New("cannot open the round on the wild face")
	ErrFaceLocked         = errors.New("face value is locked during the special round")
	ErrQuantityNotRaised  = errors.New("quantity must increase during the special round")
	ErrBelowWildMinimum   = errors.New("quantity too low when switching to the wild face")
	ErrBelowUnwildMinimum = errors.New("quantity too low when switching away from the wild face")
	ErrSameFaceNotRaised  = errors.New("quantity must increase when keeping the same face")
	ErrLowerQuantity      = errors.New("quantity must not decrease when the face value is lower")
	ErrFaceNotHigher      = errors.New("face value must be higher when the quantity is the same")
)

// Bid is a claim that at least Quantity dice showing Face (counting wilds
// outside a special round) are in play. Bids are immutable; every raise is a
// new value.
type Bid struct {
	Quantity int
	Face     int
}

func (b Bid) String() string {
	return fmt.Sprintf("%d %ds", b.Quantity, b.Face)
}

// ValidateRaise decides whether b is a legal raise over prev. prev is nil
// for the opening bid of a round. A nil return means the bid is accepted;
// otherwise the error says why it is not.
//
// The check order matters: the total-dice ceiling applies before everything
// else (including opening bids), and the special-round branch replaces the
// wild-switching arithmetic entirely.
func (b Bid) ValidateRaise(prev *Bid, palifico bool, totalDice int) error {
	if totalDice > 0 && b.Quantity > totalDice {
		return fmt.Errorf("%w: only %d dice in play", ErrTooManyDice, totalDice)
	}

	if prev == nil {
		if b.Quantity < 1 || b.Face < dice.MinFace || b.Face > dice.MaxFace {
			return ErrInvalidBid
		}
		if b.Face == dice.WildFace {
			return ErrOpenOnWild
		}
		return nil
	}

	// Special round: the face is frozen for the whole round and only the
	// quantity can grow. Wild counting is suspended in the resolver, not
	// here.
	if palifico {
		if b.Face != prev.Face {
			return fmt.Errorf("%w: face stays %d", ErrFaceLocked, prev.Face)
		}
		if b.Quantity <= prev.Quantity {
			return ErrQuantityNotRaised
		}
		return nil
	}

	// Switching onto the wild face halves the quantity floor, rounded up.
	if b.Face == dice.WildFace && prev.Face != dice.WildFace {
		min := (prev.Quantity + 1) / 2
		if b.Quantity < min {
			return fmt.Errorf("%w: must be at least %d", ErrBelowWildMinimum, min)
		}
		return nil
	}

	// Switching away from the wild face doubles it and adds one.
	if prev.Face == dice.WildFace && b.Face != dice.WildFace {
		min := prev.Quantity*2 + 1
		if b.Quantity < min {
			return fmt.Errorf("%w: must be at least %d", ErrBelowUnwildMinimum, min)
		}
		return nil
	}

	if b.Face == prev.Face {
		if b.Quantity <= prev.Quantity {
			return ErrSameFaceNotRaised
		}
		return nil
	}

	if b.Quantity < prev.Quantity {
		return ErrLowerQuantity
	}
	if b.Quantity == prev.Quantity && b.Face <= prev.Face {
		return ErrFaceNotHigher
	}
	return nil
}
