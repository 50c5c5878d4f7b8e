package finger

import "testing"

func TestBeatsRelationIsClosedCycle(t *testing.T) {
	winners := map[Finger]int{}
	losers := map[Finger]int{}
	for _, pair := range beatsPairs {
		winners[pair[0]]++
		losers[pair[1]]++
	}
	for _, f := range Fingers {
		if winners[f] != 1 {
			t.Errorf("%s appears %d times as winner, want 1", f, winners[f])
		}
		if losers[f] != 1 {
			t.Errorf("%s appears %d times as loser, want 1", f, losers[f])
		}
	}
}

func TestWinnerOverEveryFinger(t *testing.T) {
	seen := map[Finger]bool{}
	for _, f := range Fingers {
		w := WinnerOver(f)
		if !beats(w, f) {
			t.Errorf("WinnerOver(%s) = %s does not beat %s", f, w, f)
		}
		if seen[w] {
			t.Errorf("%s beats more than one finger", w)
		}
		seen[w] = true
	}
}

func TestWinnerOverUnknownFingerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for finger outside the relation")
		}
	}()
	WinnerOver(Finger("脚趾"))
}

func TestValid(t *testing.T) {
	for _, f := range Fingers {
		if !Valid(string(f)) {
			t.Errorf("Valid(%s) = false, want true", f)
		}
	}
	for _, s := range []string{"", "exit", "thumb", "拇指 "} {
		if Valid(s) {
			t.Errorf("Valid(%q) = true, want false", s)
		}
	}
}
