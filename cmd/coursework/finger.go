package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"

	"github.com/hzlu/coursework/cmd/coursework/shared"
	"github.com/hzlu/coursework/internal/finger"
	"github.com/hzlu/coursework/internal/randutil"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

// FingerCmd runs the interactive guessing game
type FingerCmd struct {
	Seed  *int64 `kong:"help='Deterministic RNG seed for the computer player (optional)'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (c *FingerCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		logger.Info("using deterministic seed", "seed", seed)
	} else {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	fmt.Print(titleStyle.Render(" 压手指 "))
	fmt.Println()
	fmt.Println()

	sess := finger.NewSession(os.Stdin, os.Stdout, rng, quartz.NewReal(), logger)
	return sess.Run()
}
