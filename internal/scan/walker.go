package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"confsync/internal/logger"

	"go.uber.org/zap"
)

// ListFiles returns the full path of every file under root, recursively.
// Symlinked files are included, symlinked directories are not descended into.
// Pipes, sockets and devices are never listed since opening a FIFO blocks.
// Unreadable or missing roots and subdirectories are skipped silently.
// Any path segment below root that matches a glob in ignore is excluded.
func ListFiles(root string, ignore []string) []string {
	files := []string{}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		logger.Log.Debug("folder not walkable",
			zap.String("root", root),
			zap.Error(err))
		return files
	}

	// WalkDir does not follow a symlinked root, so walk its target and map
	// every result back under the caller's root.
	walkRoot := root
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		walkRoot = resolved
	}

	_ = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Log.Debug("skipping unreadable entry",
				zap.String("path", path),
				zap.Error(err))
			return nil
		}

		rel, relErr := filepath.Rel(walkRoot, path)
		if relErr != nil {
			return nil
		}

		if rel != "." && shouldIgnore(rel, ignore) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || !isFileEntry(path, d) {
			return nil
		}

		files = append(files, filepath.Join(root, rel))
		return nil
	})

	return files
}

func isFileEntry(path string, d fs.DirEntry) bool {
	switch {
	case d.Type().IsRegular():
		return true
	case d.Type()&fs.ModeSymlink != 0:
		target, err := os.Stat(path)
		return err != nil || target.Mode().IsRegular()
	default:
		return false
	}
}

func shouldIgnore(path string, ignoreList []string) bool {
	if len(ignoreList) == 0 {
		return false
	}

	parts := strings.Split(filepath.ToSlash(path), "/")

	for _, part := range parts {
		for _, pattern := range ignoreList {
			matched, err := filepath.Match(pattern, part)
			if err == nil && matched {
				return true
			}
		}
	}

	return false
}
