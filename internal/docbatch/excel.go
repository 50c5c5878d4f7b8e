package docbatch

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/charmbracelet/log"
	"github.com/xuri/excelize/v2"
)

// chartAnchor is where the per-year chart is placed on each summary sheet.
const chartAnchor = "A20"

var yearPattern = regexp.MustCompile(`\d{4}`)

// sheetData accumulates aggregated rows for one configured sheet, keyed by
// the unique key column. Last write wins; first-seen order is preserved for
// the summary layout.
type sheetData struct {
	order []string
	rows  map[string][]string
}

func newSheetData() *sheetData {
	return &sheetData{rows: make(map[string][]string)}
}

func (d *sheetData) set(key string, tail []string) {
	if _, ok := d.rows[key]; !ok {
		d.order = append(d.order, key)
	}
	d.rows[key] = tail
}

// AggregateExcel reads every workbook in the input folder, aggregates the
// configured sheets and writes a summary workbook with per-year counts and a
// chart. Per-file read errors are logged and skipped; having no input
// workbooks at all is an error.
func AggregateExcel(cfg *Config, logger *log.Logger, progress Progress) error {
	files, err := listFiles(cfg.Batch.InputDir, ".xlsx")
	if err != nil {
		return fmt.Errorf("listing input folder: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no Excel files found in %s", cfg.Batch.InputDir)
	}

	summary := make(map[string]*sheetData, len(cfg.Sheets))
	for _, sheet := range cfg.Sheets {
		summary[sheet.Name] = newSheetData()
	}

	progress.PhaseStart("excel", len(files))
	for _, file := range files {
		err := readWorkbook(cfg, file, summary, logger)
		if err != nil {
			logger.Error("error processing workbook", "file", file, "error", err)
		}
		progress.FileDone(file, err)
	}

	outPath := filepath.Join(cfg.Batch.OutputDir, cfg.Batch.SummaryWorkbook)
	if err := writeSummary(cfg, summary, outPath, logger); err != nil {
		return err
	}
	progress.PhaseComplete("excel")
	logger.Info("summary workbook saved", "path", outPath)
	return nil
}

func readWorkbook(cfg *Config, path string, summary map[string]*sheetData, logger *log.Logger) error {
	logger.Info("processing workbook", "file", path)
	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, sheet := range cfg.Sheets {
		rows, err := f.GetRows(sheet.Name)
		if err != nil {
			return fmt.Errorf("sheet %s: %w", sheet.Name, err)
		}
		if len(rows) == 0 {
			continue
		}

		data := summary[sheet.Name]
		first := padRow(rows[0], len(sheet.Columns))
		if first[0] != sheet.UniqueKey {
			// No header row: the first row is already data.
			logger.Warn("no header found, using default columns",
				"file", filepath.Base(path), "sheet", sheet.Name)
			data.set(first[0], first[1:])
		}
		for _, row := range rows[1:] {
			padded := padRow(row, len(sheet.Columns))
			data.set(padded[0], padded[1:])
		}
	}
	return nil
}

func writeSummary(cfg *Config, summary map[string]*sheetData, outPath string, logger *log.Logger) error {
	out := excelize.NewFile()
	defer out.Close()

	for i, sheet := range cfg.Sheets {
		name := sheet.Name + "汇总表"
		if i == 0 {
			if err := out.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else {
			if _, err := out.NewSheet(name); err != nil {
				return err
			}
		}
		if err := writeSummarySheet(out, name, &cfg.Sheets[i], summary[sheet.Name], logger); err != nil {
			return fmt.Errorf("sheet %s: %w", name, err)
		}
	}

	if err := out.SaveAs(outPath); err != nil {
		return fmt.Errorf("saving summary workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(out *excelize.File, name string, sheet *SheetConfig, data *sheetData, logger *log.Logger) error {
	if err := setRow(out, name, 1, sheet.Columns); err != nil {
		return err
	}
	for idx, width := range sheet.ColumnWidths {
		col, err := excelize.ColumnNumberToName(idx + 1)
		if err != nil {
			return err
		}
		if err := out.SetColWidth(name, col, col, float64(width)); err != nil {
			return err
		}
	}

	rowNum := 2
	dateIdx := sheet.DateColumnIndex()
	yearCounts := make(map[string]int)
	var yearOrder []string
	for _, key := range data.order {
		row := append([]string{key}, data.rows[key]...)
		if err := setRow(out, name, rowNum, row); err != nil {
			return err
		}
		rowNum++

		year := yearPattern.FindString(row[dateIdx])
		if year == "" {
			logger.Warn("no year found in date cell", "sheet", name, "key", key, "cell", row[dateIdx])
			continue
		}
		if _, ok := yearCounts[year]; !ok {
			yearOrder = append(yearOrder, year)
		}
		yearCounts[year]++
	}

	if err := setRow(out, name, rowNum, []string{"年份", "数量"}); err != nil {
		return err
	}
	firstYearRow := rowNum + 1
	rowNum++
	for _, year := range yearOrder {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := out.SetSheetRow(name, cell, &[]interface{}{year, yearCounts[year]}); err != nil {
			return err
		}
		rowNum++
	}

	if len(yearOrder) == 0 {
		return nil
	}
	lastYearRow := firstYearRow + len(yearOrder) - 1
	chart := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       "年度数量统计",
				Categories: fmt.Sprintf("'%s'!$A$%d:$A$%d", name, firstYearRow, lastYearRow),
				Values:     fmt.Sprintf("'%s'!$B$%d:$B$%d", name, firstYearRow, lastYearRow),
			},
		},
		Title: []excelize.RichTextRun{{Text: "年度数量统计"}},
		XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "年份"}}},
		YAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "数量"}}},
	}
	return out.AddChart(name, chartAnchor, chart)
}

func setRow(out *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return out.SetSheetRow(sheet, cell, &cells)
}

// padRow extends row with empty cells up to width; excelize drops trailing
// empty cells when reading.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
