package finger

import (
	"bufio"
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// ExitToken ends the session when entered at the prompt.
const ExitToken = "exit"

// exitDelay is how long the summary stays on screen before Run returns.
const exitDelay = 5 * time.Second

// Session runs one interactive game: a single-threaded loop that prompts,
// predicts, judges and updates statistics until the player exits.
type Session struct {
	stats  *Statistics
	in     *bufio.Scanner
	out    io.Writer
	rng    *rand.Rand
	clock  quartz.Clock
	logger *log.Logger
}

// NewSession wires a session over the given streams. The rng drives the
// predictor and the clock drives the post-summary exit delay; both are
// injected so tests can use a seeded rng and a mock clock.
func NewSession(in io.Reader, out io.Writer, rng *rand.Rand, clock quartz.Clock, logger *log.Logger) *Session {
	return &Session{
		stats:  NewStatistics(),
		in:     bufio.NewScanner(in),
		out:    out,
		rng:    rng,
		clock:  clock,
		logger: logger.WithPrefix("finger"),
	}
}

// Stats exposes the session statistics.
func (s *Session) Stats() *Statistics {
	return s.stats
}

// Run plays rounds until the player enters the exit token (or input ends),
// then prints the summary and holds it on screen for the exit delay.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, "压手指游戏开始! 祝你玩的愉快!")
	for {
		input, ok := s.readMove()
		if !ok || input == ExitToken {
			break
		}
		s.playRound(Finger(input))
	}

	fmt.Fprintln(s.out, s.stats.Summary())
	fmt.Fprintf(s.out, "\n程序将在 %d 秒后退出.\n", int(exitDelay.Seconds()))
	s.waitBeforeExit()
	return nil
}

func (s *Session) playRound(user Finger) {
	computer := Predict(s.rng, s.stats)
	fmt.Fprintf(s.out, "计算机选择出 %s!\n", computer)

	outcome := Judge(user, computer)
	fmt.Fprintln(s.out, outcomeText(outcome))

	s.stats.Update(user, outcome)
	s.logger.Debug("round complete",
		"user", user, "computer", computer, "outcome", outcome,
		"turn", s.stats.TotalTurns)
}

// readMove prompts until the player enters the exit token or a valid finger.
// The second return is false when input is exhausted, which ends the game
// the same way as the exit token.
func (s *Session) readMove() (string, bool) {
	prompt := fmt.Sprintf("请输入出哪个手指，可选 %v 之一，输入 %s 退出游戏: ", Fingers, ExitToken)
	for {
		fmt.Fprint(s.out, prompt)
		if !s.in.Scan() {
			return "", false
		}
		input := s.in.Text()
		if input == ExitToken || Valid(input) {
			return input, true
		}
		fmt.Fprintln(s.out, "输入错误，请重新输入。")
	}
}

func (s *Session) waitBeforeExit() {
	fired := make(chan struct{})
	s.clock.AfterFunc(exitDelay, func() {
		close(fired)
	})
	<-fired
}

func outcomeText(o Outcome) string {
	switch o {
	case Win:
		return "你赢了"
	case Lose:
		return "你输了"
	case Draw:
		return "平局"
	}
	panic(fmt.Sprintf("finger: impossible outcome %d", o))
}
