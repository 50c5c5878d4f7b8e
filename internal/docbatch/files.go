package docbatch

import (
	"os"
	"path/filepath"
	"strings"
)

// Progress receives batch progress callbacks so the CLI can render them.
type Progress interface {
	PhaseStart(phase string, total int)
	FileDone(name string, err error)
	PhaseComplete(phase string)
}

// NopProgress discards all progress callbacks.
type NopProgress struct{}

func (NopProgress) PhaseStart(string, int) {}
func (NopProgress) FileDone(string, error) {}
func (NopProgress) PhaseComplete(string)   {}

// listFiles returns the paths of regular files in dir with the given
// extension, in directory order (sorted by name).
func listFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ext) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
