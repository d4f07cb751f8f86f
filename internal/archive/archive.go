// Package archive moves a finished output directory aside so that the next
// run starts from an empty one.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/snonux/quintus/internal/logging"
)

// ArchiveOutput moves outputDir to <parent>/archive/<name>-<timestamp> and
// returns the new location
func ArchiveOutput(outputDir string) (string, error) {
	info, err := os.Stat(outputDir)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("output directory does not exist: %s", outputDir)
	}
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", outputDir)
	}

	abs, err := filepath.Abs(outputDir)
	if err != nil {
		return "", err
	}
	name := filepath.Base(abs)
	archiveDir := filepath.Join(filepath.Dir(abs), "archive")

	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	now := time.Now()
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s", name, now.Format("20060102-150405")))

	// Two archives within the same second get microseconds appended
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s", name, now.Format("20060102-150405.000000")))
	}

	if err := os.Rename(abs, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive output directory: %w", err)
	}

	logging.Info("archived output directory", "from", abs, "to", archivePath)
	return archivePath, nil
}
