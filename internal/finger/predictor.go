package finger

import (
	rand "math/rand/v2"
	"sort"

	"github.com/hzlu/coursework/internal/randutil"
)

// Branch probabilities for the computer's move selection.
const (
	counterAfterWinProb = 0.8  // counter a predicted move after a player win
	counterSwitchProb   = 0.75 // otherwise assume the player switches fingers
)

// Predict chooses the computer's move from the session history. The rng is
// injected so sessions replay deterministically under a fixed seed.
//
// After a player win the player tends to repeat whatever has been working,
// so most of the time we counter one of their two favourite post-win
// fingers. Otherwise players tend to switch away from their last move, so
// most of the time we counter a uniformly guessed different finger. A small
// remainder of fully random picks keeps the computer from being exploitable.
func Predict(rng *rand.Rand, stats *Statistics) Finger {
	if stats.LastWin {
		if randutil.Chance(rng, counterAfterWinProb) {
			predicted := randutil.Pick(rng, topAfterWinning(stats, 2))
			return WinnerOver(predicted)
		}
		return randutil.Pick(rng, Fingers)
	}

	if randutil.Chance(rng, counterSwitchProb) {
		// Before the first round LastFinger is empty and matches nothing,
		// so this degenerates to a uniform guess over all five fingers.
		remaining := make([]Finger, 0, len(Fingers))
		for _, f := range Fingers {
			if f != stats.LastFinger {
				remaining = append(remaining, f)
			}
		}
		return WinnerOver(randutil.Pick(rng, remaining))
	}
	return randutil.Pick(rng, Fingers)
}

// topAfterWinning returns the n fingers with the highest post-win counts.
// Ties break by canonical finger order via the stable sort.
func topAfterWinning(stats *Statistics, n int) []Finger {
	ranked := append([]Finger(nil), Fingers...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return stats.AfterWinning[ranked[i]] > stats.AfterWinning[ranked[j]]
	})
	return ranked[:n]
}
