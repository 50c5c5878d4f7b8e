// Package finger implements the finger-pressing guessing game: a five-move
// cyclic variant of rock-paper-scissors where the computer predicts the
// player's next move from round history.
package finger

import "fmt"

// Finger is one of the five playable moves. The labels themselves are the
// wire format: they are what the player types at the prompt.
type Finger string

const (
	Thumb  Finger = "拇指"
	Index  Finger = "食指"
	Middle Finger = "中指"
	Ring   Finger = "无名指"
	Little Finger = "小指"
)

// Fingers lists all moves in canonical order. The order is load-bearing: it
// is the prompt order and the tie-break order for the predictor.
var Fingers = []Finger{Thumb, Index, Middle, Ring, Little}

// beatsPairs is the fixed directed 5-cycle: each entry is (winner, loser).
// Every finger appears exactly once as winner and once as loser.
var beatsPairs = [...][2]Finger{
	{Thumb, Index},
	{Index, Middle},
	{Middle, Ring},
	{Ring, Little},
	{Little, Thumb},
}

// Valid reports whether s is one of the five finger labels.
func Valid(s string) bool {
	for _, f := range Fingers {
		if string(f) == s {
			return true
		}
	}
	return false
}

// beats reports whether a defeats b under the fixed relation.
func beats(a, b Finger) bool {
	for _, pair := range beatsPairs {
		if pair[0] == a && pair[1] == b {
			return true
		}
	}
	return false
}

// WinnerOver returns the finger that beats f. The relation is a closed cycle
// over all five fingers, so a miss means the tables themselves are broken.
func WinnerOver(f Finger) Finger {
	for _, pair := range beatsPairs {
		if pair[1] == f {
			return pair[0]
		}
	}
	panic(fmt.Sprintf("finger: no winner over %q in beats relation", f))
}
