package engine

import (
	"testing"

	"pgregory.net/rapid"
)

// TestBidCeilingProperty checks that a bid above the dice in play is
// rejected no matter what the previous bid or the special-round flag is.
func TestBidCeilingProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		totalDice := rapid.IntRange(1, 30).Draw(t, "totalDice")
		quantity := rapid.IntRange(totalDice+1, totalDice+20).Draw(t, "quantity")
		face := rapid.IntRange(1, 6).Draw(t, "face")
		palifico := rapid.Bool().Draw(t, "palifico")

		bid := Bid{Quantity: quantity, Face: face}

		var prev *Bid
		if rapid.Bool().Draw(t, "hasPrev") {
			prev = &Bid{
				Quantity: rapid.IntRange(1, totalDice).Draw(t, "prevQuantity"),
				Face:     rapid.IntRange(1, 6).Draw(t, "prevFace"),
			}
		}

		if err := bid.ValidateRaise(prev, palifico, totalDice); err == nil {
			t.Fatalf("bid %v accepted with only %d dice in play (prev=%v palifico=%v)",
				bid, totalDice, prev, palifico)
		}
	})
}

// TestWildSwitchBoundaryProperty checks the halving rule: ceil(p/2) is
// always accepted when switching onto ones, ceil(p/2)-1 never is.
func TestWildSwitchBoundaryProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prevQuantity := rapid.IntRange(2, 30).Draw(t, "prevQuantity")
		prevFace := rapid.IntRange(2, 6).Draw(t, "prevFace")
		prev := Bid{Quantity: prevQuantity, Face: prevFace}

		min := (prevQuantity + 1) / 2
		totalDice := prevQuantity + 10

		if err := (Bid{Quantity: min, Face: 1}).ValidateRaise(&prev, false, totalDice); err != nil {
			t.Fatalf("switch onto ones at minimum %d after %v rejected: %v", min, prev, err)
		}
		if err := (Bid{Quantity: min - 1, Face: 1}).ValidateRaise(&prev, false, totalDice); err == nil {
			t.Fatalf("switch onto ones below minimum (%d) after %v accepted", min-1, prev)
		}
	})
}

// TestUnwildSwitchBoundaryProperty checks the doubling rule: 2p+1 is always
// accepted when switching away from ones, 2p never is.
func TestUnwildSwitchBoundaryProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prevQuantity := rapid.IntRange(1, 14).Draw(t, "prevQuantity")
		face := rapid.IntRange(2, 6).Draw(t, "face")
		prev := Bid{Quantity: prevQuantity, Face: 1}

		min := prevQuantity*2 + 1
		totalDice := min + 5

		if err := (Bid{Quantity: min, Face: face}).ValidateRaise(&prev, false, totalDice); err != nil {
			t.Fatalf("switch away from ones at minimum %d after %v rejected: %v", min, prev, err)
		}
		if err := (Bid{Quantity: min - 1, Face: face}).ValidateRaise(&prev, false, totalDice); err == nil {
			t.Fatalf("switch away from ones below minimum (%d) after %v accepted", min-1, prev)
		}
	})
}

// TestPalificoLockProperty checks that during the special round any face
// change is rejected regardless of quantity, and any non-increase of the
// quantity is rejected regardless of face.
func TestPalificoLockProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prevQuantity := rapid.IntRange(1, 10).Draw(t, "prevQuantity")
		prevFace := rapid.IntRange(1, 6).Draw(t, "prevFace")
		prev := Bid{Quantity: prevQuantity, Face: prevFace}
		totalDice := prevQuantity + 15

		otherFace := rapid.IntRange(1, 6).Filter(func(f int) bool {
			return f != prevFace
		}).Draw(t, "otherFace")
		quantity := rapid.IntRange(1, totalDice).Draw(t, "quantity")

		if err := (Bid{Quantity: quantity, Face: otherFace}).ValidateRaise(&prev, true, totalDice); err == nil {
			t.Fatalf("face change %d->%d accepted during special round", prevFace, otherFace)
		}

		lowQuantity := rapid.IntRange(1, prevQuantity).Draw(t, "lowQuantity")
		if err := (Bid{Quantity: lowQuantity, Face: prevFace}).ValidateRaise(&prev, true, totalDice); err == nil {
			t.Fatalf("quantity %d <= %d accepted during special round", lowQuantity, prevQuantity)
		}

		if err := (Bid{Quantity: prevQuantity + 1, Face: prevFace}).ValidateRaise(&prev, true, totalDice); err != nil {
			t.Fatalf("minimal raise rejected during special round: %v", err)
		}
	})
}
