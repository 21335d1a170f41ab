package render

import (
	"fmt"

	"github.com/google/renameio/v2"
	"github.com/hightemp/countrygen/internal/config"
)

// WriteFile replaces path with data. The file is written to a temporary
// file in the same directory and renamed over path, so a failed write
// leaves any previous file intact.
func WriteFile(path string, data []byte) error {
	if err := config.EnsureParentDir(path); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := renameio.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
