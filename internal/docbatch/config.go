// Package docbatch aggregates Excel workbooks into a summary workbook,
// converts Word documents to PDF and merges the PDFs under a watermark.
package docbatch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete batch configuration
type Config struct {
	Batch  BatchSettings `hcl:"batch,block"`
	Sheets []SheetConfig `hcl:"sheet,block"`
}

// BatchSettings contains folder layout and tool settings
type BatchSettings struct {
	InputDir        string `hcl:"input_dir,optional"`
	OutputDir       string `hcl:"output_dir,optional"`
	Watermark       string `hcl:"watermark,optional"`
	SofficeBin      string `hcl:"soffice_bin,optional"`
	SummaryWorkbook string `hcl:"summary_workbook,optional"`
	MergedPDF       string `hcl:"merged_pdf,optional"`
	ConvertJobs     int    `hcl:"convert_jobs,optional"`
}

// SheetConfig defines one worksheet to aggregate across input workbooks
type SheetConfig struct {
	Name         string   `hcl:"name,label"`
	Columns      []string `hcl:"columns"`
	UniqueKey    string   `hcl:"unique_key,optional"`
	DateColumn   string   `hcl:"date_column"`
	ColumnWidths []int    `hcl:"column_widths,optional"`
}

// DefaultConfig returns the stock configuration: the 论文/专利 sheet pair and
// the files/ folder layout.
func DefaultConfig() *Config {
	return &Config{
		Batch: BatchSettings{
			InputDir:        "files",
			OutputDir:       filepath.Join("files", "汇总"),
			Watermark:       filepath.Join("files", "水印文件.pdf"),
			SofficeBin:      "soffice",
			SummaryWorkbook: "汇总Excel.xlsx",
			MergedPDF:       "打印文档汇总.pdf",
			ConvertJobs:     2,
		},
		Sheets: []SheetConfig{
			{
				Name:         "论文",
				Columns:      []string{"论文名称", "作者列表", "作者单位", "发表日期", "论文级别"},
				UniqueKey:    "论文名称",
				DateColumn:   "发表日期",
				ColumnWidths: []int{50, 20, 50, 20, 20},
			},
			{
				Name:         "专利",
				Columns:      []string{"专利名称", "专利授权号", "被授权人", "被授权人单位", "授权日期"},
				UniqueKey:    "专利名称",
				DateColumn:   "授权日期",
				ColumnWidths: []int{50, 20, 20, 20, 20},
			},
		},
	}
}

// LoadConfig loads batch configuration from an HCL file, falling back to the
// default configuration when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Config) {
	def := DefaultConfig()

	if config.Batch.InputDir == "" {
		config.Batch.InputDir = def.Batch.InputDir
	}
	if config.Batch.OutputDir == "" {
		config.Batch.OutputDir = def.Batch.OutputDir
	}
	if config.Batch.Watermark == "" {
		config.Batch.Watermark = filepath.Join(config.Batch.InputDir, "水印文件.pdf")
	}
	if config.Batch.SofficeBin == "" {
		config.Batch.SofficeBin = def.Batch.SofficeBin
	}
	if config.Batch.SummaryWorkbook == "" {
		config.Batch.SummaryWorkbook = def.Batch.SummaryWorkbook
	}
	if config.Batch.MergedPDF == "" {
		config.Batch.MergedPDF = def.Batch.MergedPDF
	}
	if config.Batch.ConvertJobs == 0 {
		config.Batch.ConvertJobs = def.Batch.ConvertJobs
	}

	if len(config.Sheets) == 0 {
		config.Sheets = def.Sheets
	}
	for i := range config.Sheets {
		if config.Sheets[i].UniqueKey == "" && len(config.Sheets[i].Columns) > 0 {
			config.Sheets[i].UniqueKey = config.Sheets[i].Columns[0]
		}
	}
}

// Validate validates the batch configuration
func (c *Config) Validate() error {
	if c.Batch.InputDir == "" {
		return fmt.Errorf("input_dir must be set")
	}
	if c.Batch.OutputDir == "" {
		return fmt.Errorf("output_dir must be set")
	}
	if len(c.Sheets) == 0 {
		return fmt.Errorf("at least one sheet must be configured")
	}

	for _, sheet := range c.Sheets {
		if len(sheet.Columns) == 0 {
			return fmt.Errorf("sheet %s: columns must not be empty", sheet.Name)
		}
		if sheet.UniqueKey != sheet.Columns[0] {
			return fmt.Errorf("sheet %s: unique_key %q must be the first column", sheet.Name, sheet.UniqueKey)
		}
		if !contains(sheet.Columns, sheet.DateColumn) {
			return fmt.Errorf("sheet %s: date_column %q is not a configured column", sheet.Name, sheet.DateColumn)
		}
		if len(sheet.ColumnWidths) != 0 && len(sheet.ColumnWidths) != len(sheet.Columns) {
			return fmt.Errorf("sheet %s: column_widths has %d entries for %d columns",
				sheet.Name, len(sheet.ColumnWidths), len(sheet.Columns))
		}
	}
	return nil
}

// DateColumnIndex returns the position of the sheet's date column.
func (s *SheetConfig) DateColumnIndex() int {
	for i, col := range s.Columns {
		if col == s.DateColumn {
			return i
		}
	}
	return -1
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
