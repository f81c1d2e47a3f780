package export

import (
	"sort"
	"strings"
)

// Manifest lists a batch of exported files as plain text, one per line
// under an optional "# title" heading. Order is deterministic.
func Manifest(title string, artifacts []*Artifact) string {
	names := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		if a != nil {
			names = append(names, a.Filename)
		}
	}
	sort.Strings(names)

	lines := []string{}
	if title != "" {
		lines = append(lines, "# "+title)
	}
	lines = append(lines, names...)
	return strings.Join(lines, "\n") + "\n"
}
