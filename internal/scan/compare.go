package scan

import (
	"path/filepath"

	"confsync/internal/logger"
	"confsync/internal/watchlist"

	"go.uber.org/zap"
)

// Comparator checks watched paths under ConfigDir against the same relative
// paths under MirrorDir. Only the config side is ever walked, so files that
// exist solely in the mirror are never reported.
type Comparator struct {
	ConfigDir string
	MirrorDir string
	Ignore    []string
}

func NewComparator(configDir, mirrorDir string, ignore []string) *Comparator {
	return &Comparator{
		ConfigDir: configDir,
		MirrorDir: mirrorDir,
		Ignore:    ignore,
	}
}

// Watched expands spec into relative slash-separated paths: every file found
// under each folder, in folder order, followed by the individual files as
// declared. Duplicates are kept.
func (c *Comparator) Watched(spec watchlist.Spec) []string {
	watched := []string{}

	for _, folder := range spec.Folders {
		for _, full := range ListFiles(filepath.Join(c.ConfigDir, folder), c.Ignore) {
			rel, err := filepath.Rel(c.ConfigDir, full)
			if err != nil {
				continue
			}
			watched = append(watched, filepath.ToSlash(rel))
		}
	}

	watched = append(watched, spec.Files...)

	logger.Log.Debug("expanded watch list",
		zap.Int("folders", len(spec.Folders)),
		zap.Int("files", len(spec.Files)),
		zap.Int("watched", len(watched)))

	return watched
}

// Mismatches returns, in order, the watched paths whose digests differ
// between the two roots.
func (c *Comparator) Mismatches(watched []string) []string {
	mismatched := []string{}

	for _, rel := range watched {
		if c.Differs(rel) {
			mismatched = append(mismatched, rel)
		}
	}

	return mismatched
}

func (c *Comparator) Differs(rel string) bool {
	primary := Hash(filepath.Join(c.ConfigDir, rel))
	mirror := Hash(filepath.Join(c.MirrorDir, rel))

	if primary == mirror {
		return false
	}

	logger.Log.Debug("mismatch",
		zap.String("path", rel),
		zap.String("reason", reason(primary, mirror)),
		zap.Stringer("config", primary),
		zap.Stringer("mirror", mirror))

	return true
}

func reason(primary, mirror Digest) string {
	switch {
	case !mirror.Present:
		return "missing in mirror"
	case !primary.Present:
		return "missing in config"
	default:
		return "differs"
	}
}
