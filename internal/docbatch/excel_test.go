package docbatch

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Batch.InputDir = filepath.Join(t.TempDir(), "in")
	cfg.Batch.OutputDir = filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(cfg.Batch.InputDir, 0o755))
	require.NoError(t, os.MkdirAll(cfg.Batch.OutputDir, 0o755))
	return cfg
}

func writeWorkbook(t *testing.T, cfg *Config, name string, papers, patents [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "论文"))
	writeRows(t, f, "论文", cfg.Sheets[0].Columns, papers)

	_, err := f.NewSheet("专利")
	require.NoError(t, err)
	writeRows(t, f, "专利", cfg.Sheets[1].Columns, patents)

	require.NoError(t, f.SaveAs(filepath.Join(cfg.Batch.InputDir, name)))
}

func writeRows(t *testing.T, f *excelize.File, sheet string, header []string, rows [][]interface{}) {
	t.Helper()
	headerCells := make([]interface{}, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &headerCells))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
}

func TestAggregateExcelNoInputFiles(t *testing.T) {
	cfg := testConfig(t)
	err := AggregateExcel(cfg, testLogger(), NopProgress{})
	assert.ErrorContains(t, err, "no Excel files found")
}

func TestAggregateExcelWritesSummary(t *testing.T) {
	cfg := testConfig(t)

	writeWorkbook(t, cfg, "a.xlsx",
		[][]interface{}{
			{"论文A", "张三", "大学一", "2023-04-01", "核心"},
			{"论文B", "李四", "大学二", "2023-09-12", "普通"},
		},
		[][]interface{}{
			{"专利X", "ZL001", "王五", "公司一", "2022-01-20"},
		})
	writeWorkbook(t, cfg, "b.xlsx",
		[][]interface{}{
			// Duplicate unique key: the later file wins.
			{"论文A", "张三", "大学一改", "2024-02-03", "核心"},
			{"论文C", "赵六", "大学三", "2024-05-05", "普通"},
		},
		[][]interface{}{
			{"专利Y", "ZL002", "钱七", "公司二", "2022-11-11"},
		})

	require.NoError(t, AggregateExcel(cfg, testLogger(), NopProgress{}))

	summary, err := excelize.OpenFile(filepath.Join(cfg.Batch.OutputDir, cfg.Batch.SummaryWorkbook))
	require.NoError(t, err)
	defer summary.Close()

	rows, err := summary.GetRows("论文汇总表")
	require.NoError(t, err)

	// Header + 3 unique papers + year header + 2 year rows.
	require.GreaterOrEqual(t, len(rows), 6)
	assert.Equal(t, cfg.Sheets[0].Columns, rows[0])

	// 论文A keeps the values from the last workbook read.
	assert.Equal(t, "论文A", rows[1][0])
	assert.Equal(t, "大学一改", rows[1][2])
	assert.Equal(t, "论文B", rows[2][0])
	assert.Equal(t, "论文C", rows[3][0])

	assert.Equal(t, []string{"年份", "数量"}, rows[4][:2])
	yearRows := map[string]string{}
	for _, row := range rows[5:] {
		if len(row) >= 2 {
			yearRows[row[0]] = row[1]
		}
	}
	assert.Equal(t, "1", yearRows["2023"], "论文B only, 论文A moved to 2024")
	assert.Equal(t, "2", yearRows["2024"])

	// Configured column widths applied.
	width, err := summary.GetColWidth("论文汇总表", "A")
	require.NoError(t, err)
	assert.InDelta(t, 50, width, 1)

	// Patent sheet aggregated across both files.
	patentRows, err := summary.GetRows("专利汇总表")
	require.NoError(t, err)
	assert.Equal(t, "专利X", patentRows[1][0])
	assert.Equal(t, "专利Y", patentRows[2][0])

	// Chart carries its title and the 年份/数量 axis titles. excelize has no
	// chart read API, so inspect the chart parts of the package directly.
	chartXML := readChartXML(t, filepath.Join(cfg.Batch.OutputDir, cfg.Batch.SummaryWorkbook))
	assert.Contains(t, chartXML, "年度数量统计")
	assert.Contains(t, chartXML, "年份")
	assert.Contains(t, chartXML, "数量")
}

func readChartXML(t *testing.T, path string) string {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	var xml strings.Builder
	for _, f := range r.File {
		if !strings.HasPrefix(f.Name, "xl/charts/chart") {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		xml.Write(data)
	}
	require.NotEmpty(t, xml.String(), "no chart parts found in %s", path)
	return xml.String()
}

func TestAggregateExcelSkipsUnreadableWorkbook(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Batch.InputDir, "broken.xlsx"), []byte("not a workbook"), 0o644))
	writeWorkbook(t, cfg, "good.xlsx",
		[][]interface{}{{"论文A", "张三", "大学一", "2023-04-01", "核心"}},
		[][]interface{}{{"专利X", "ZL001", "王五", "公司一", "2022-01-20"}})

	require.NoError(t, AggregateExcel(cfg, testLogger(), NopProgress{}))

	summary, err := excelize.OpenFile(filepath.Join(cfg.Batch.OutputDir, cfg.Batch.SummaryWorkbook))
	require.NoError(t, err)
	defer summary.Close()

	rows, err := summary.GetRows("论文汇总表")
	require.NoError(t, err)
	assert.Equal(t, "论文A", rows[1][0])
}
