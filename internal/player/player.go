// Package player holds per-player game state and the die transfer mutators.
package player

import (
	"fmt"

	"perudo-game/internal/dice"
)

const (
	// StartingDice is the standard opening allotment per player.
	StartingDice = 5
	// MaxDice is the hard cap on a player's dice count. Gaining a die at
	// the cap is a no-op.
	MaxDice = 5
)

// Player is one seat at the table. Active flips to false permanently when
// the dice count reaches zero. UsedPalifico is one-way: once a player's
// special round has run, returning to one die never triggers another.
type Player struct {
	Name         string
	Dice         *dice.Set
	Active       bool
	UsedPalifico bool
}

// New creates an active player with the standard dice allotment.
func New(name string) *Player {
	return NewWithDice(name, StartingDice)
}

// NewWithDice creates an active player with a custom allotment, clamped to
// MaxDice.
func NewWithDice(name string, count int) *Player {
	if count > MaxDice {
		count = MaxDice
	}
	return &Player{
		Name:   name,
		Dice:   dice.NewSet(count),
		Active: true,
	}
}

// RollDice rerolls the player's cup. Eliminated players keep empty values.
func (p *Player) RollDice(r dice.Roller) {
	if p.Active {
		p.Dice.Roll(r)
	}
}

// LoseDie removes one die. Reaching zero eliminates the player for good.
func (p *Player) LoseDie() {
	if p.Dice.Count == 0 {
		return
	}
	p.Dice.Count--
	if p.Dice.Count == 0 {
		p.Active = false
	}
}

// GainDie adds one die up to MaxDice. Elimination is permanent, so an
// inactive player never regains dice.
func (p *Player) GainDie() {
	if p.Active && p.Dice.Count < MaxDice {
		p.Dice.Count++
	}
}

// InPalifico reports whether this player triggers the special round: exactly
// one die left and their one-shot not yet consumed.
func (p *Player) InPalifico() bool {
	return p.Dice.Count == 1 && !p.UsedPalifico
}

// TriggerPalifico consumes the player's one-shot special round.
func (p *Player) TriggerPalifico() {
	p.UsedPalifico = true
}

func (p *Player) String() string {
	status := "Active"
	if !p.Active {
		status = "Eliminated"
	}
	return fmt.Sprintf("%s (%d dice) - %s", p.Name, p.Dice.Count, status)
}
