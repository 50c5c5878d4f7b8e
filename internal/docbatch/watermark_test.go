package docbatch

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeWithWatermarkMissingWatermark(t *testing.T) {
	cfg := testConfig(t)
	cfg.Batch.Watermark = filepath.Join(cfg.Batch.InputDir, "水印文件.pdf")

	err := MergeWithWatermark(cfg, testLogger(), NopProgress{})
	assert.ErrorContains(t, err, "watermark file")
}

func TestListFilesFiltersByExtension(t *testing.T) {
	cfg := testConfig(t)
	dir := cfg.Batch.InputDir
	writeWorkbook(t, cfg, "a.xlsx", nil, nil)

	files, err := listFiles(dir, ".xlsx")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "a.xlsx"), files[0])

	none, err := listFiles(dir, ".pdf")
	require.NoError(t, err)
	assert.Empty(t, none)
}
