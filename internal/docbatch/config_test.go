package docbatch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "files", cfg.Batch.InputDir)
	assert.Equal(t, filepath.Join("files", "汇总"), cfg.Batch.OutputDir)
	assert.Equal(t, "汇总Excel.xlsx", cfg.Batch.SummaryWorkbook)
	require.Len(t, cfg.Sheets, 2)
	assert.Equal(t, "论文", cfg.Sheets[0].Name)
	assert.Equal(t, "论文名称", cfg.Sheets[0].UniqueKey)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigParsesHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.hcl")
	content := `
batch {
  input_dir  = "in"
  output_dir = "out"
}

sheet "报告" {
  columns       = ["报告名称", "作者", "日期"]
  date_column   = "日期"
  column_widths = [40, 20, 20]
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "in", cfg.Batch.InputDir)
	assert.Equal(t, "out", cfg.Batch.OutputDir)
	// Unset batch fields fall back to defaults.
	assert.Equal(t, "soffice", cfg.Batch.SofficeBin)
	assert.Equal(t, filepath.Join("in", "水印文件.pdf"), cfg.Batch.Watermark)
	assert.Equal(t, 2, cfg.Batch.ConvertJobs)

	require.Len(t, cfg.Sheets, 1)
	sheet := cfg.Sheets[0]
	assert.Equal(t, "报告", sheet.Name)
	// unique_key defaults to the first column.
	assert.Equal(t, "报告名称", sheet.UniqueKey)
	assert.Equal(t, 2, sheet.DateColumnIndex())
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigRejectsBadHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte("batch {"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	bad := DefaultConfig()
	bad.Sheets[0].DateColumn = "不存在"
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Sheets[0].ColumnWidths = []int{1, 2}
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Sheets[0].UniqueKey = "作者列表"
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Sheets = nil
	assert.Error(t, bad.Validate())
}
