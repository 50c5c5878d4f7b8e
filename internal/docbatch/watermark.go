package docbatch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// wmDescription stamps the watermark page centred at its native size on
// every page.
const wmDescription = "pos:c, scale:1 abs, rot:0"

// MergeWithWatermark stamps every PDF in the input folder (except the
// watermark file itself) with the watermark PDF and appends them all into a
// single document in the output folder. Per-file stamp failures are logged
// and the file is skipped.
func MergeWithWatermark(cfg *Config, logger *log.Logger, progress Progress) error {
	if _, err := os.Stat(cfg.Batch.Watermark); err != nil {
		return fmt.Errorf("watermark file: %w", err)
	}

	pdfs, err := listFiles(cfg.Batch.InputDir, ".pdf")
	if err != nil {
		return fmt.Errorf("listing input folder: %w", err)
	}
	wmBase := filepath.Base(cfg.Batch.Watermark)
	inputs := pdfs[:0]
	for _, p := range pdfs {
		if filepath.Base(p) != wmBase {
			inputs = append(inputs, p)
		}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no PDF files to merge in %s", cfg.Batch.InputDir)
	}

	wm, err := api.PDFWatermark(cfg.Batch.Watermark, wmDescription, true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("loading watermark: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "docbatch-stamped-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	progress.PhaseStart("watermark", len(inputs))
	var stamped []string
	for _, p := range inputs {
		out := filepath.Join(tmpDir, filepath.Base(p))
		err := api.AddWatermarksFile(p, out, nil, wm, nil)
		if err != nil {
			logger.Error("error stamping PDF", "file", p, "error", err)
		} else {
			stamped = append(stamped, out)
		}
		progress.FileDone(p, err)
	}
	if len(stamped) == 0 {
		return fmt.Errorf("no PDFs could be stamped")
	}

	outPath := filepath.Join(cfg.Batch.OutputDir, cfg.Batch.MergedPDF)
	if err := api.MergeCreateFile(stamped, outPath, false, nil); err != nil {
		return fmt.Errorf("merging PDFs: %w", err)
	}
	progress.PhaseComplete("watermark")
	logger.Info("created merged PDF with watermark", "path", outPath)
	return nil
}
