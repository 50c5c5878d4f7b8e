package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hzlu/coursework/cmd/coursework/shared"
	"github.com/hzlu/coursework/internal/fileutil"
	"github.com/hzlu/coursework/internal/wordfreq"
)

// WordFreqCmd counts and merges word frequencies across two documents
type WordFreqCmd struct {
	File1  string `kong:"arg,help='First text file'"`
	File2  string `kong:"arg,help='Second text file'"`
	Output string `kong:"short='o',help='Write the report to a file instead of stdout'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *WordFreqCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	raw1, err := os.ReadFile(c.File1)
	if err != nil {
		return fmt.Errorf("one of the provided file paths does not exist: %w", err)
	}
	raw2, err := os.ReadFile(c.File2)
	if err != nil {
		return fmt.Errorf("one of the provided file paths does not exist: %w", err)
	}

	if c.Output == "" {
		return wordfreq.Report(os.Stdout, string(raw1), string(raw2))
	}

	var buf bytes.Buffer
	if err := wordfreq.Report(&buf, string(raw1), string(raw2)); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(c.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	logger.Info("report written", "path", c.Output)
	return nil
}
