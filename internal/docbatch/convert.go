package docbatch

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// ConvertWordFiles converts every .docx in the input folder to a sibling PDF
// using the configured soffice binary. Conversions run concurrently up to
// the configured job limit; per-file failures are logged and skipped.
func ConvertWordFiles(ctx context.Context, cfg *Config, logger *log.Logger, progress Progress) error {
	logger.Info("converting Word files to PDF")
	docs, err := listFiles(cfg.Batch.InputDir, ".docx")
	if err != nil {
		return fmt.Errorf("listing input folder: %w", err)
	}
	if len(docs) == 0 {
		logger.Info("no Word files to convert")
		return nil
	}

	progress.PhaseStart("convert", len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Batch.ConvertJobs)
	for _, doc := range docs {
		doc := doc
		g.Go(func() error {
			err := convertOne(ctx, cfg, doc, logger)
			if err != nil {
				logger.Error("error converting document", "file", doc, "error", err)
			} else {
				logger.Info("converted document",
					"file", doc, "pdf", strings.TrimSuffix(doc, ".docx")+".pdf")
			}
			progress.FileDone(doc, err)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	progress.PhaseComplete("convert")
	return nil
}

func convertOne(ctx context.Context, cfg *Config, docPath string, logger *log.Logger) error {
	cmd := exec.CommandContext(ctx, cfg.Batch.SofficeBin,
		"--headless", "--convert-to", "pdf", "--outdir", cfg.Batch.InputDir, docPath)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", cfg.Batch.SofficeBin, err)
	}

	s := bufio.NewScanner(stdout)
	for s.Scan() {
		logger.Debug("soffice", "file", docPath, "line", s.Text())
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("%s exited: %w", cfg.Batch.SofficeBin, err)
	}
	return nil
}
