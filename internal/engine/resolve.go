package engine

import (
	"fmt"

	"perudo-game/internal/player"
)

// DudoResult is the outcome of a Dudo challenge.
type DudoResult struct {
	BidCorrect bool
	LoserIndex int
	Message    string
}

// CalzaResult is the outcome of a Calza call.
type CalzaResult struct {
	Exact   bool
	Message string
}

// CountMatching sums, over active players with dice, the dice showing face.
// With wilds active every literal one also counts toward any non-one face;
// a query for ones counts only literal ones either way.
func CountMatching(players []*player.Player, face int, wildsActive bool) int {
	total := 0
	for _, p := range players {
		if p.Active && p.Dice.Count > 0 {
			total += p.Dice.CountFace(face, wildsActive)
		}
	}
	return total
}

// ResolveDudo adjudicates a challenge of bid. An actual count at or above
// the bid quantity means the bid stands and the challenger loses a die; ties
// favor the bidder. The engine never mutates players; the caller applies the
// die loss to LoserIndex.
func ResolveDudo(players []*player.Player, bid Bid, bidderIdx, challengerIdx int, wildsActive bool) DudoResult {
	actual := CountMatching(players, bid.Face, wildsActive)

	if actual >= bid.Quantity {
		return DudoResult{
			BidCorrect: true,
			LoserIndex: challengerIdx,
			Message: fmt.Sprintf("Bid was correct! There are %d %ds. %s loses a die.",
				actual, bid.Face, players[challengerIdx].Name),
		}
	}
	return DudoResult{
		BidCorrect: false,
		LoserIndex: bidderIdx,
		Message: fmt.Sprintf("Bid was wrong! There are only %d %ds. %s loses a die.",
			actual, bid.Face, players[bidderIdx].Name),
	}
}

// ResolveCalza adjudicates an exact call on bid. Only exact equality rewards
// the caller; higher and lower counts both lose. The caller applies the die
// gain or loss.
func ResolveCalza(players []*player.Player, bid Bid, callerIdx int, wildsActive bool) CalzaResult {
	actual := CountMatching(players, bid.Face, wildsActive)

	if actual == bid.Quantity {
		return CalzaResult{
			Exact: true,
			Message: fmt.Sprintf("Calza! Exactly %d %ds! %s gains a die.",
				actual, bid.Face, players[callerIdx].Name),
		}
	}
	return CalzaResult{
		Exact: false,
		Message: fmt.Sprintf("Not exact! There are %d %ds, not %d. %s loses a die.",
			actual, bid.Face, bid.Quantity, players[callerIdx].Name),
	}
}

// CheckPalificoTrigger returns the index of the first player, in list order,
// holding exactly one die with their special round unused, or -1. Only one
// trigger is honored per round; later qualifiers wait.
func CheckPalificoTrigger(players []*player.Player) int {
	for i, p := range players {
		if p.InPalifico() {
			return i
		}
	}
	return -1
}

// CheckWinner returns the index of the sole remaining active player, or -1
// while the game is still running.
func CheckWinner(players []*player.Player) int {
	winner := -1
	for i, p := range players {
		if p.Active {
			if winner >= 0 {
				return -1
			}
			winner = i
		}
	}
	return winner
}

// TotalDice sums dice counts over active players.
func TotalDice(players []*player.Player) int {
	total := 0
	for _, p := range players {
		if p.Active {
			total += p.Dice.Count
		}
	}
	return total
}
