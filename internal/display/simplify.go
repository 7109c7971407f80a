// Package display renders mismatched paths for the widget tooltip.
package display

import (
	"strings"
)

// Simplify returns the shortest trailing run of path's segments that no other
// entry in pool ends with. Pool entries equal to path are not collisions.
// When every suffix collides, path is returned unchanged.
func Simplify(path string, pool []string) string {
	parts := strings.Split(path, "/")

	for depth := 1; depth <= len(parts); depth++ {
		candidate := strings.Join(parts[len(parts)-depth:], "/")
		if !collides(candidate, path, pool) {
			return candidate
		}
	}

	return path
}

func collides(candidate, path string, pool []string) bool {
	for _, p := range pool {
		if p != path && strings.HasSuffix(p, candidate) {
			return true
		}
	}
	return false
}
