// Package ui renders the hot-seat terminal interface with pterm. It owns
// all interactive state; the game loop only sees plain data.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"perudo-game/internal/dice"
	"perudo-game/internal/engine"
	"perudo-game/internal/game"
	"perudo-game/internal/player"
)

// Unicode pips for dice faces 1-6.
var diceFaces = [7]string{"", "⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// Terminal is the pterm implementation of game.UI.
type Terminal struct{}

// New creates the terminal UI. plain disables styling for dumb terminals.
func New(plain bool) *Terminal {
	if plain {
		pterm.DisableColor()
	}
	return &Terminal{}
}

// ShowBanner prints the game banner and a rules summary.
func (t *Terminal) ShowBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("PER", pterm.FgMagenta.ToStyle()),
		putils.LettersFromStringWithStyle("UDO", pterm.FgCyan.ToStyle()),
	).Render()
	pterm.DefaultCenter.Println(pterm.LightCyan("The Game of Bluff and Deception"))

	rules := strings.Join([]string{
		"Ones are " + pterm.LightRed("WILD") + " (except during Palifico)",
		"Raise with a higher quantity OR a higher face value",
		"Call " + pterm.LightRed("dudo") + " to challenge, " + pterm.LightGreen("calza") + " for an exact match",
		pterm.LightMagenta("Palifico") + ": reduced to 1 die, the face value locks for the round",
	}, "\n")
	pterm.DefaultBox.WithTitle("Quick Rules").WithTitleTopCenter().
		WithHorizontalPadding(2).Println(rules)
	pterm.Println()
}

// PromptPlayerCount asks how many players are at the table.
func (t *Terminal) PromptPlayerCount(min, max int) int {
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("Enter number of players (%d-%d)", min, max)).
			Show()
		count, err := strconv.Atoi(strings.TrimSpace(raw))
		if err == nil && count >= min && count <= max {
			return count
		}
		pterm.Error.Printfln("Please enter a number between %d and %d.", min, max)
	}
}

// PromptPlayerNames collects one name per seat, defaulting empty entries.
func (t *Terminal) PromptPlayerNames(count int) []string {
	names := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		fallback := fmt.Sprintf("Player %d", i)
		raw, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("Enter name for Player %d", i)).
			WithDefaultValue(fallback).
			Show()
		name := strings.TrimSpace(raw)
		if name == "" {
			name = fallback
		}
		names = append(names, name)
	}
	return names
}

func (t *Terminal) ShowMessage(msg string) {
	pterm.Info.Println(msg)
}

func (t *Terminal) ShowRoundStart(round int) {
	pterm.DefaultSection.Printfln("Round %d", round)
}

// PromptHandoff blocks until the named player confirms they have the screen.
func (t *Terminal) PromptHandoff(p *player.Player) {
	pterm.DefaultInteractiveTextInput.
		WithDefaultText(fmt.Sprintf("Pass the screen to %s, then press Enter", p.Name)).
		Show()
	pterm.Print("\033[H\033[2J")
}

func (t *Terminal) ShowPlayerDice(p *player.Player) {
	pips := make([]string, 0, len(p.Dice.Values))
	for _, v := range p.Dice.Values {
		pips = append(pips, diceFaces[v])
	}
	pterm.DefaultBox.WithTitle(pterm.LightYellow(p.Name)).WithTitleTopCenter().
		WithHorizontalPadding(2).
		Printfln("Your dice:  %s\n%v", strings.Join(pips, " "), p.Dice.Values)
}

func (t *Terminal) ShowGameState(players []*player.Player, current *engine.Bid, currentIdx int, palifico bool) {
	data := pterm.TableData{{"Player", "Dice", "Status"}}
	for i, p := range players {
		status := "Active"
		if !p.Active {
			status = pterm.FgGray.Sprint("Eliminated")
		}
		name := p.Name
		if i == currentIdx {
			name = pterm.LightCyan("> " + name)
		}
		data = append(data, []string{name, strconv.Itoa(p.Dice.Count), status})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	if current != nil {
		pterm.Info.Printfln("Current bid: %s", current)
	} else {
		pterm.Info.Println("No bid yet this round.")
	}
	if palifico {
		pterm.Warning.Println("PALIFICO round: face value locked, ones are not wild.")
	}
}

func (t *Terminal) PromptAction(p *player.Player, hasBid bool) game.Action {
	options := []string{string(game.ActionBid)}
	if hasBid {
		options = append(options, string(game.ActionDudo), string(game.ActionCalza))
	}
	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText(fmt.Sprintf("%s, select your action", p.Name)).
		WithOptions(options).
		Show()
	return game.Action(choice)
}

// PromptBid reads quantity and face, retrying until both are numbers and
// the face is a real die face. Raise-grammar checks stay with the engine;
// this only guards the input boundary. During the special round the face is
// locked, so only the quantity is asked for.
func (t *Terminal) PromptBid(current *engine.Bid, palifico bool) engine.Bid {
	if palifico && current != nil {
		pterm.Warning.Printfln("Face value is locked at %d this round.", current.Face)
		return engine.Bid{
			Quantity: t.promptInt("Bid quantity"),
			Face:     current.Face,
		}
	}
	return engine.Bid{
		Quantity: t.promptInt("Bid quantity"),
		Face:     t.promptIntRange("Bid face value (1-6)", dice.MinFace, dice.MaxFace),
	}
}

func (t *Terminal) promptInt(label string) int {
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(label).Show()
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err == nil {
			return n
		}
		pterm.Error.Println("Please enter a number.")
	}
}

func (t *Terminal) promptIntRange(label string, lo, hi int) int {
	for {
		n := t.promptInt(label)
		if n >= lo && n <= hi {
			return n
		}
		pterm.Error.Printfln("Please enter a number between %d and %d.", lo, hi)
	}
}

func (t *Terminal) ShowAllDice(players []*player.Player) {
	data := pterm.TableData{{"Player", "Dice"}}
	for _, p := range players {
		if !p.Active {
			continue
		}
		pips := make([]string, 0, len(p.Dice.Values))
		for _, v := range p.Dice.Values {
			pips = append(pips, diceFaces[v])
		}
		data = append(data, []string{p.Name, strings.Join(pips, " ")})
	}
	pterm.DefaultSection.WithLevel(2).Println("Reveal")
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (t *Terminal) ShowWinner(p *player.Player) {
	pterm.DefaultBox.WithTitle(pterm.LightGreen("WINNER")).WithTitleTopCenter().
		WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1).
		Printfln("%s wins the game!", pterm.LightCyan(p.Name))
}
