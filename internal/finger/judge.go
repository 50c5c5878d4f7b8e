package finger

// Outcome classifies a completed round from the player's perspective.
type Outcome int

const (
	Draw Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Draw:
		return "draw"
	case Win:
		return "win"
	case Lose:
		return "lose"
	}
	return "unknown"
}

// Judge classifies a round. It is a pure function of the fixed beats
// relation: the same pair of moves always yields the same outcome. Neither
// side beating the other implies equal moves, since the relation covers
// every distinct pair through the cycle.
func Judge(user, computer Finger) Outcome {
	switch {
	case beats(user, computer):
		return Win
	case beats(computer, user):
		return Lose
	default:
		return Draw
	}
}
