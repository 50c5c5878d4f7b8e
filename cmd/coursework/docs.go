package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hzlu/coursework/cmd/coursework/shared"
	"github.com/hzlu/coursework/internal/docbatch"
)

// DocsCmd runs the document batch: spreadsheet aggregation, Word conversion
// and watermarked PDF merging
type DocsCmd struct {
	Config    string `kong:"default='docbatch.hcl',help='Path to the HCL batch configuration'"`
	Input     string `kong:"help='Override the input folder'"`
	Output    string `kong:"help='Override the output folder'"`
	Soffice   string `kong:"help='Override the soffice binary used for Word conversion'"`
	NoExcel   bool   `kong:"name='no-excel',help='Skip spreadsheet aggregation'"`
	NoConvert bool   `kong:"name='no-convert',help='Skip Word conversion and PDF merging'"`
	Quiet     bool   `kong:"short='q',help='Disable the progress display'"`
	Debug     bool   `kong:"help='Enable debug logging'"`
}

func (c *DocsCmd) Run(kctx *kong.Context) error {
	// Skipping every phase leaves nothing to do: show usage instead.
	if c.NoExcel && c.NoConvert {
		return kctx.PrintUsage(false)
	}

	logger := shared.SetupLogger(c.Debug)
	ctx := shared.SetupSignalHandlerWithLogger(logger)

	cfg, err := docbatch.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Input != "" {
		cfg.Batch.InputDir = c.Input
	}
	if c.Output != "" {
		cfg.Batch.OutputDir = c.Output
	}
	if c.Soffice != "" {
		cfg.Batch.SofficeBin = c.Soffice
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := os.MkdirAll(cfg.Batch.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output folder: %w", err)
	}

	var progress docbatch.Progress = NewDotProgress()
	if c.Quiet {
		progress = docbatch.NopProgress{}
	}

	if !c.NoExcel {
		if err := docbatch.AggregateExcel(cfg, logger, progress); err != nil {
			logger.Error("spreadsheet aggregation failed", "error", err)
		}
	}

	if !c.NoConvert {
		if err := docbatch.ConvertWordFiles(ctx, cfg, logger, progress); err != nil {
			return err
		}
		if err := docbatch.MergeWithWatermark(cfg, logger, progress); err != nil {
			logger.Error("PDF merge failed", "error", err)
		}
	}

	return nil
}
