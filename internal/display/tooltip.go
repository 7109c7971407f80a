package display

import (
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// AppLabel is the first segment of path with its first letter upper-cased and
// the rest lower-cased.
func AppLabel(path string) string {
	app, _, _ := strings.Cut(path, "/")
	if app == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(app)
	return string(unicode.ToTitle(r)) + strings.ToLower(app[size:])
}

// Tooltip groups mismatched paths by AppLabel. Each group is a "<Label> -"
// line followed by its simplified paths, one per line. Labels and the paths
// within a group are sorted.
func Tooltip(mismatched, pool []string) string {
	grouped := make(map[string][]string)
	for _, path := range mismatched {
		app := AppLabel(path)
		grouped[app] = append(grouped[app], Simplify(path, pool))
	}

	var lines []string
	for _, app := range slices.Sorted(maps.Keys(grouped)) {
		files := grouped[app]
		slices.Sort(files)

		lines = append(lines, app+" -")
		lines = append(lines, files...)
	}

	return strings.Join(lines, "\n")
}
