package finger

import "fmt"

// Statistics tracks per-session round counters and the history the
// predictor feeds on. One instance per session, owned by the session loop.
type Statistics struct {
	TotalTurns int
	WinTurns   int
	LoseTurns  int
	DrawTurns  int

	// AfterWinning counts, per finger, how often the player chose it on the
	// round immediately following a player win.
	AfterWinning map[Finger]int

	// LastFinger is the player's previous move, empty before the first round.
	LastFinger Finger

	// LastWin records whether the previous round was a player win.
	LastWin bool
}

// NewStatistics returns zeroed statistics with every finger present in the
// AfterWinning map.
func NewStatistics() *Statistics {
	after := make(map[Finger]int, len(Fingers))
	for _, f := range Fingers {
		after[f] = 0
	}
	return &Statistics{AfterWinning: after}
}

// Update folds one completed round into the statistics. The AfterWinning
// increment must read the win flag from the round before this one, so it
// happens before LastWin is overwritten.
func (s *Statistics) Update(userFinger Finger, outcome Outcome) {
	s.TotalTurns++
	switch outcome {
	case Win:
		s.WinTurns++
	case Lose:
		s.LoseTurns++
	case Draw:
		s.DrawTurns++
	default:
		panic(fmt.Sprintf("finger: impossible outcome %d", outcome))
	}

	if s.LastWin {
		s.AfterWinning[userFinger]++
	}

	s.LastFinger = userFinger
	s.LastWin = outcome == Win
}

// Validate checks the accounting invariants.
func (s *Statistics) Validate() error {
	if s.TotalTurns != s.WinTurns+s.LoseTurns+s.DrawTurns {
		return fmt.Errorf("turn mismatch: total=%d, win=%d, lose=%d, draw=%d",
			s.TotalTurns, s.WinTurns, s.LoseTurns, s.DrawTurns)
	}
	afterTotal := 0
	for f, n := range s.AfterWinning {
		if n < 0 {
			return fmt.Errorf("negative after-winning count for %s: %d", f, n)
		}
		afterTotal += n
	}
	if afterTotal > s.WinTurns {
		return fmt.Errorf("after-winning total (%d) exceeds wins (%d)", afterTotal, s.WinTurns)
	}
	return nil
}

// Summary renders the end-of-game statistics block.
func (s *Statistics) Summary() string {
	return fmt.Sprintf(
		"游戏结束, 统计信息如下:\n\t总游戏数:\t%d;\t赢的次数:\t%d;\t输的次数:\t%d;\t平局次数:\t%d;",
		s.TotalTurns, s.WinTurns, s.LoseTurns, s.DrawTurns)
}
