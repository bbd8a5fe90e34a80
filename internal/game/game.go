// Package game drives a Perudo session: round setup, turn rotation, and the
// application of engine verdicts to the player roster. All input and output
// goes through the UI interface so the loop is testable with a scripted
// implementation and a fixed dice roller.
package game

import (
	"github.com/rs/zerolog/log"

	"perudo-game/internal/dice"
	"perudo-game/internal/engine"
	"perudo-game/internal/player"
)

// Action is a player's choice on their turn.
type Action string

const (
	ActionBid   Action = "bid"
	ActionDudo  Action = "dudo"
	ActionCalza Action = "calza"
)

// UI is the presentation surface the game loop drives. Implementations own
// all interactive state; the loop passes plain data in and reads plain data
// out.
type UI interface {
	// ShowMessage displays a one-line notice.
	ShowMessage(msg string)

	// ShowRoundStart announces a new round.
	ShowRoundStart(round int)

	// PromptHandoff pauses until the named player has the screen to
	// themselves (hot-seat play).
	PromptHandoff(p *player.Player)

	// ShowPlayerDice reveals a player's own dice to them.
	ShowPlayerDice(p *player.Player)

	// ShowGameState renders the table: per-player dice counts, the
	// standing bid, and the special-round marker.
	ShowGameState(players []*player.Player, current *engine.Bid, currentIdx int, palifico bool)

	// PromptAction asks the current player what to do. hasBid is false on
	// the opening turn of a round, when only bidding is possible.
	PromptAction(p *player.Player, hasBid bool) Action

	// PromptBid reads a candidate bid from the current player.
	PromptBid(current *engine.Bid, palifico bool) engine.Bid

	// ShowAllDice reveals every active player's dice after a call.
	ShowAllDice(players []*player.Player)

	// ShowWinner announces the last player standing.
	ShowWinner(p *player.Player)
}

// Config holds session setup options.
type Config struct {
	// StartingDice is each player's opening allotment. Zero means the
	// standard five.
	StartingDice int
}

// Game is the round-orchestrating session owner. One Game owns its roster
// for the whole session; calls are strictly serial.
type Game struct {
	players    []*player.Player
	ui         UI
	roller     dice.Roller
	round      int
	currentIdx int
	lastBidder int
	currentBid *engine.Bid
	palifico   bool
}

// New creates a session for the named players.
func New(cfg *Config, names []string, ui UI, roller dice.Roller) *Game {
	startingDice := player.StartingDice
	if cfg != nil && cfg.StartingDice > 0 {
		startingDice = cfg.StartingDice
	}

	players := make([]*player.Player, 0, len(names))
	for _, name := range names {
		players = append(players, player.NewWithDice(name, startingDice))
	}
	return &Game{
		players:    players,
		ui:         ui,
		roller:     roller,
		lastBidder: -1,
	}
}

// Players exposes the roster, mainly for tests and final presentation.
func (g *Game) Players() []*player.Player {
	return g.players
}

// Run plays rounds until one player remains, then announces the winner.
func (g *Game) Run() {
	for {
		if winner := engine.CheckWinner(g.players); winner >= 0 {
			g.finish(winner)
			return
		}

		g.startRound()

		for g.playTurn() {
			if winner := engine.CheckWinner(g.players); winner >= 0 {
				g.finish(winner)
				return
			}
		}
	}
}

func (g *Game) finish(winner int) {
	log.Info().Str("player", g.players[winner].Name).Msg("game over")
	g.ui.ShowWinner(g.players[winner])
}

// startRound rolls every active player's dice, consumes at most one Palifico
// trigger, and resets the bid state.
func (g *Game) startRound() {
	g.round++
	g.ui.ShowRoundStart(g.round)

	for _, p := range g.players {
		p.RollDice(g.roller)
	}

	if idx := engine.CheckPalificoTrigger(g.players); idx >= 0 {
		g.palifico = true
		g.players[idx].TriggerPalifico()
		log.Info().Int("round", g.round).Str("player", g.players[idx].Name).Msg("palifico triggered")
		g.ui.ShowMessage(g.players[idx].Name +
			" has triggered PALIFICO! Face value is locked this round and ones are NOT wild.")
	} else {
		g.palifico = false
	}

	g.currentBid = nil
	g.lastBidder = -1

	log.Debug().Int("round", g.round).Int("total_dice", engine.TotalDice(g.players)).
		Bool("palifico", g.palifico).Msg("round started")

	for _, p := range g.players {
		if p.Active {
			g.ui.PromptHandoff(p)
			g.ui.ShowPlayerDice(p)
		}
	}
}

// playTurn runs one player's turn. It returns false once a call ends the
// round.
func (g *Game) playTurn() bool {
	current := g.players[g.currentIdx]

	g.ui.PromptHandoff(current)
	g.ui.ShowGameState(g.players, g.currentBid, g.currentIdx, g.palifico)
	g.ui.ShowPlayerDice(current)

	switch g.ui.PromptAction(current, g.currentBid != nil) {
	case ActionBid:
		g.handleBid()
		return true
	case ActionDudo:
		return !g.handleDudo()
	case ActionCalza:
		return !g.handleCalza()
	}
	return true
}

// handleBid prompts until the current player produces a legal raise, then
// installs it and advances the turn.
func (g *Game) handleBid() {
	for {
		bid := g.ui.PromptBid(g.currentBid, g.palifico)

		// The terminal UI bounds its input already; this keeps a bid with
		// a phantom face or empty quantity out of the round no matter
		// which UI produced it.
		if bid.Face < dice.MinFace || bid.Face > dice.MaxFace || bid.Quantity < 1 {
			log.Debug().Str("bid", bid.String()).Msg("bid rejected")
			g.ui.ShowMessage("Invalid bid: " + engine.ErrInvalidBid.Error())
			continue
		}

		if err := bid.ValidateRaise(g.currentBid, g.palifico, engine.TotalDice(g.players)); err != nil {
			log.Debug().Str("bid", bid.String()).Err(err).Msg("bid rejected")
			g.ui.ShowMessage("Invalid bid: " + err.Error())
			continue
		}

		g.currentBid = &bid
		g.lastBidder = g.currentIdx
		log.Info().Str("player", g.players[g.currentIdx].Name).Str("bid", bid.String()).Msg("bid accepted")
		g.ui.ShowMessage(g.players[g.currentIdx].Name + " bids: " + bid.String())
		g.currentIdx = g.nextActive(g.currentIdx)
		return
	}
}

// handleDudo resolves a challenge of the standing bid. It returns true when
// the round ended.
func (g *Game) handleDudo() bool {
	if g.currentBid == nil {
		g.ui.ShowMessage("Cannot call Dudo - no bid yet!")
		return false
	}

	g.ui.ShowMessage(g.players[g.currentIdx].Name + " calls DUDO!")
	g.ui.ShowAllDice(g.players)

	res := engine.ResolveDudo(g.players, *g.currentBid, g.lastBidder, g.currentIdx, !g.palifico)
	log.Info().Str("bid", g.currentBid.String()).Bool("bid_correct", res.BidCorrect).
		Str("loser", g.players[res.LoserIndex].Name).Msg("dudo resolved")

	g.ui.ShowMessage(res.Message)
	g.players[res.LoserIndex].LoseDie()
	if !g.players[res.LoserIndex].Active {
		log.Info().Str("player", g.players[res.LoserIndex].Name).Msg("player eliminated")
	}

	// The loser opens the next round, or the next seat if they are out.
	if g.players[res.LoserIndex].Active {
		g.currentIdx = res.LoserIndex
	} else {
		g.currentIdx = g.nextActive(res.LoserIndex)
	}
	return true
}

// handleCalza resolves an exact call on the standing bid. It returns true
// when the round ended.
func (g *Game) handleCalza() bool {
	if g.currentBid == nil {
		g.ui.ShowMessage("Cannot call Calza - no bid yet!")
		return false
	}

	caller := g.currentIdx
	g.ui.ShowMessage(g.players[caller].Name + " calls CALZA!")
	g.ui.ShowAllDice(g.players)

	res := engine.ResolveCalza(g.players, *g.currentBid, caller, !g.palifico)
	log.Info().Str("bid", g.currentBid.String()).Bool("exact", res.Exact).
		Str("caller", g.players[caller].Name).Msg("calza resolved")

	g.ui.ShowMessage(res.Message)

	if res.Exact {
		g.players[caller].GainDie()
		// The caller opens the next round.
	} else {
		g.players[caller].LoseDie()
		if !g.players[caller].Active {
			log.Info().Str("player", g.players[caller].Name).Msg("player eliminated")
			g.currentIdx = g.nextActive(caller)
		}
	}
	return true
}

// nextActive returns the next active seat after idx, wrapping around.
func (g *Game) nextActive(idx int) int {
	next := (idx + 1) % len(g.players)
	for !g.players[next].Active {
		next = (next + 1) % len(g.players)
	}
	return next
}
