// Package hud formats the text panel under the waveform.
package hud

import (
	"fmt"
	"strings"
	"trading_game/internal/game/bias"
	"trading_game/internal/game/session"
	"trading_game/internal/model"
)

// Snapshot is what the panel shows for one frame.
type Snapshot struct {
	Session  session.Session
	Function bias.Function
	Stats    model.GameStats
	StatsErr error
	Notice   string
}

// Lines renders the panel top to bottom.
func Lines(s Snapshot) []string {
	lines := []string{
		functionLine(s),
	}
	if c, ok := s.Session.Coefficients(); ok && s.Function.Key == bias.RandomCombination {
		lines = append(lines, fmt.Sprintf("amp %.2f  c1 %.2f  c2 %.2f  c3 %.2f  shift %.2f   [N] new random",
			c.Amp, c.C1, c.C2, c.C3, c.Shift))
	}
	lines = append(lines,
		stateLine(s.Session),
		settingsLine(s.Session),
		statsLine(s.Stats, s.StatsErr),
		"[Click/Enter] trade  [Space] play/pause  [R] reset round  [X] reset stats  [Esc] quit",
	)
	if s.Notice != "" {
		lines = append(lines, s.Notice)
	}
	return lines
}

func functionLine(s Snapshot) string {
	keys := make([]string, 0, len(bias.Keys))
	for i, k := range bias.Keys {
		mark := " "
		if k == s.Function.Key {
			mark = "*"
		}
		keys = append(keys, fmt.Sprintf("%s%d", mark, i+1))
	}
	return fmt.Sprintf("%s  EV %.3f  theoretical win rate %.1f%%   [%s]",
		s.Function.Name, s.Function.ExpectedValue, s.Function.TheoreticalWinRate(), strings.Join(keys, " "))
}

func stateLine(s session.Session) string {
	switch s.State() {
	case session.Active:
		line := fmt.Sprintf("ACTIVE  %.1fs left", s.TimeRemaining())
		if v, ok := s.EntryValue(); ok {
			line += fmt.Sprintf("  entry value %.3f", v)
		}
		return line
	case session.Won:
		return "YOU WON!   [R] play again"
	case session.Lost:
		return "YOU LOST!  [R] play again"
	}
	return "Click the graph to enter a trade at the rightmost point"
}

func settingsLine(s session.Session) string {
	line := fmt.Sprintf("Duration %ds [Up/Down]  Speed %.1fx [Left/Right]", s.DurationSeconds(), s.Speed())
	if !s.Playing() {
		line += "  PAUSED"
	}
	return line
}

func statsLine(st model.GameStats, err error) string {
	line := fmt.Sprintf("Wins %d  Losses %d  Total %d  Win rate %.1f%%", st.Wins, st.Losses, st.Total, st.WinRate())
	if err != nil {
		line += "  (stats offline)"
	}
	return line
}
