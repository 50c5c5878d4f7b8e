package main

import (
	"fmt"
	"sync"
	"time"
)

// DotProgress renders batch progress as dots instead of verbose logging:
// one dot per processed file, an x for failures, a summary line per phase.
type DotProgress struct {
	mu         sync.Mutex
	done       int
	failed     int
	total      int
	phaseStart time.Time
}

// NewDotProgress creates a dot progress reporter for batch phases
func NewDotProgress() *DotProgress {
	return &DotProgress{}
}

func (p *DotProgress) PhaseStart(phase string, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done = 0
	p.failed = 0
	p.total = total
	p.phaseStart = time.Now()
	fmt.Printf("%s (%d files) ", phase, total)
}

func (p *DotProgress) FileDone(name string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	if err != nil {
		p.failed++
		fmt.Print("x")
		return
	}
	fmt.Print(".")
}

func (p *DotProgress) PhaseComplete(phase string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	elapsed := time.Since(p.phaseStart)
	if p.failed > 0 {
		fmt.Printf(" ✓ %s complete, %d/%d ok (%.1fs)\n", phase, p.done-p.failed, p.done, elapsed.Seconds())
		return
	}
	fmt.Printf(" ✓ %s complete (%.1fs)\n", phase, elapsed.Seconds())
}
