// ABOUTME: Snapshot discovery over timestamp-named directories
// ABOUTME: Lists captured snapshots and pairs consecutive ones for diffing

package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atomicul/website-differ/core/domain"
	"github.com/atomicul/website-differ/core/errors"
)

// TimestampLayout is the directory name layout written by Capture.
const TimestampLayout = "20060102T150405"

// Layouts accepted when parsing existing snapshot directory names. Names
// that match none of these still work; ordering then falls back to the
// lexical directory order.
var timestampLayouts = []string{
	TimestampLayout,
	"20060102-150405",
	"2006-01-02T15-04-05",
	"2006-01-02",
	time.RFC3339,
}

// Discover lists the snapshots under root, oldest first. Each snapshot is a
// subdirectory holding one HTML file; subdirectories without an HTML file
// are skipped. Directory names sort lexically, which for timestamp names is
// chronological order.
func Discover(root string) ([]domain.Snapshot, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.WrapError(err, "reading snapshot root")
	}

	var snapshots []domain.Snapshot
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path, ok := findSnapshotFile(filepath.Join(root, entry.Name()))
		if !ok {
			continue
		}
		snapshots = append(snapshots, domain.Snapshot{
			Name:      entry.Name(),
			Path:      path,
			Timestamp: parseTimestamp(entry.Name()),
		})
	}
	return snapshots, nil
}

// Pairs returns the consecutive snapshot pairs of an ordered snapshot list.
func Pairs(snapshots []domain.Snapshot) []domain.SnapshotPair {
	if len(snapshots) < 2 {
		return nil
	}
	pairs := make([]domain.SnapshotPair, 0, len(snapshots)-1)
	for i := 1; i < len(snapshots); i++ {
		pairs = append(pairs, domain.SnapshotPair{
			Old: snapshots[i-1],
			New: snapshots[i],
		})
	}
	return pairs
}

// findSnapshotFile returns the first HTML file directly inside dir.
func findSnapshotFile(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".html" || ext == ".htm" {
			return filepath.Join(dir, entry.Name()), true
		}
	}
	return "", false
}

func parseTimestamp(name string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, name); err == nil {
			return t
		}
	}
	return time.Time{}
}
