// Package watchlist reads the folders and files a sync script declares.
//
// The script is never executed or parsed as shell. An array is found by
// textually matching `name=( ... )`, possibly across lines, and its elements
// are the double-quoted tokens between the parentheses.
package watchlist

import (
	"fmt"
	"os"
	"regexp"
)

var quoted = regexp.MustCompile(`"([^"]+)"`)

type Spec struct {
	Folders []string
	Files   []string
}

// ParseArray returns the quoted elements of the first `name=(...)` in content,
// in order. It returns an empty slice when the array is absent.
func ParseArray(content, name string) []string {
	re := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(name) + `=\((.*?)\)`)

	m := re.FindStringSubmatch(content)
	if m == nil {
		return []string{}
	}

	items := []string{}
	for _, q := range quoted.FindAllStringSubmatch(m[1], -1) {
		items = append(items, q[1])
	}

	return items
}

func Parse(content string) Spec {
	return Spec{
		Folders: ParseArray(content, "folders"),
		Files:   ParseArray(content, "files"),
	}
}

func Load(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("failed to read sync script: %w", err)
	}

	return Parse(string(data)), nil
}
