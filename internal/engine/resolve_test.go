package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perudo-game/internal/player"
)

// tablePlayers builds a roster with fixed hands. An empty hand means an
// eliminated player.
func tablePlayers(hands ...[]int) []*player.Player {
	players := make([]*player.Player, 0, len(hands))
	for i, hand := range hands {
		p := player.New(fmt.Sprintf("Player %d", i+1))
		p.Dice.Count = len(hand)
		p.Dice.Values = hand
		if len(hand) == 0 {
			p.Active = false
		}
		players = append(players, p)
	}
	return players
}

func TestCountMatching(t *testing.T) {
	tests := []struct {
		name        string
		hands       [][]int
		face        int
		wildsActive bool
		want        int
	}{
		{"wilds count toward other faces", [][]int{{1, 3, 3, 4, 1}}, 3, true, 4},
		{"wilds suspended", [][]int{{1, 3, 3, 4, 1}}, 3, false, 2},
		{"querying ones counts literal ones only", [][]int{{1, 3, 3, 4, 1}}, 1, true, 2},
		{"querying ones ignores wildsActive", [][]int{{1, 3, 3, 4, 1}}, 1, false, 2},
		{"sums across players", [][]int{{2, 2, 5}, {1, 2, 6}}, 2, true, 4},
		{"eliminated player excluded", [][]int{{2, 2}, {}, {2, 1}}, 2, true, 4},
		{"no matches", [][]int{{4, 5, 6}}, 2, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := tablePlayers(tt.hands...)
			assert.Equal(t, tt.want, CountMatching(players, tt.face, tt.wildsActive))
		})
	}
}

func TestResolveDudo(t *testing.T) {
	tests := []struct {
		name        string
		hands       [][]int
		bid         Bid
		wildsActive bool
		wantCorrect bool
		wantLoser   int
	}{
		// Two 3s plus two wilds in each hand: 4 + 4 = 8 threes under wilds.
		{"bid met challenger loses", [][]int{{1, 3, 3, 4, 1}, {1, 3, 3, 4, 1}}, Bid{7, 3}, true, true, 1},
		{"exact count favors bidder", [][]int{{1, 3, 3, 4, 1}, {1, 3, 3, 4, 1}}, Bid{8, 3}, true, true, 1},
		{"bid short bidder loses", [][]int{{1, 3, 3, 4, 1}, {1, 3, 3, 4, 1}}, Bid{9, 3}, true, false, 0},
		{"wilds suspended changes verdict", [][]int{{1, 3, 3, 4, 1}, {1, 3, 3, 4, 1}}, Bid{5, 3}, false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := tablePlayers(tt.hands...)
			res := ResolveDudo(players, tt.bid, 0, 1, tt.wildsActive)
			assert.Equal(t, tt.wantCorrect, res.BidCorrect)
			assert.Equal(t, tt.wantLoser, res.LoserIndex)
			assert.NotEmpty(t, res.Message)
		})
	}
}

// TestResolveDudo_Scenario plays the concrete roster from the rules: four
// total 3s under wilds, bid of four 3s challenged.
func TestResolveDudo_Scenario(t *testing.T) {
	players := tablePlayers([]int{1, 3, 3, 4, 1}, []int{2, 5, 6, 4, 2})

	res := ResolveDudo(players, Bid{4, 3}, 0, 1, true)
	require.True(t, res.BidCorrect)
	assert.Equal(t, 1, res.LoserIndex)
}

func TestResolveCalza(t *testing.T) {
	// 4 threes under wilds.
	hands := [][]int{{1, 3, 3, 4, 1}, {2, 5, 6, 4, 2}}

	tests := []struct {
		name      string
		bid       Bid
		wantExact bool
	}{
		{"exact count rewards caller", Bid{4, 3}, true},
		{"undercount loses", Bid{3, 3}, false},
		{"overcount loses", Bid{5, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := tablePlayers(hands...)
			res := ResolveCalza(players, tt.bid, 1, true)
			assert.Equal(t, tt.wantExact, res.Exact)
			assert.NotEmpty(t, res.Message)
		})
	}
}

func TestCheckPalificoTrigger(t *testing.T) {
	t.Run("no trigger", func(t *testing.T) {
		players := tablePlayers([]int{2, 3}, []int{4, 5, 6})
		assert.Equal(t, -1, CheckPalificoTrigger(players))
	})

	t.Run("single die triggers", func(t *testing.T) {
		players := tablePlayers([]int{2, 3}, []int{4})
		assert.Equal(t, 1, CheckPalificoTrigger(players))
	})

	t.Run("first in list order wins", func(t *testing.T) {
		players := tablePlayers([]int{2}, []int{4})
		assert.Equal(t, 0, CheckPalificoTrigger(players))
	})

	t.Run("consumed trigger never fires again", func(t *testing.T) {
		players := tablePlayers([]int{4}, []int{2, 3})
		players[0].TriggerPalifico()
		assert.Equal(t, -1, CheckPalificoTrigger(players))

		// Regaining and re-losing dice does not rearm it.
		players[0].GainDie()
		players[0].LoseDie()
		assert.Equal(t, -1, CheckPalificoTrigger(players))
	})
}

func TestCheckWinner(t *testing.T) {
	t.Run("game running", func(t *testing.T) {
		players := tablePlayers([]int{2}, []int{3})
		assert.Equal(t, -1, CheckWinner(players))
	})

	t.Run("sole survivor", func(t *testing.T) {
		players := tablePlayers([]int{}, []int{3}, []int{})
		assert.Equal(t, 1, CheckWinner(players))
	})
}

func TestTotalDice(t *testing.T) {
	players := tablePlayers([]int{1, 2, 3}, []int{}, []int{4, 5})
	assert.Equal(t, 5, TotalDice(players))
}
