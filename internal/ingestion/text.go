// Package ingestion turns raw job posting and resume files into the
// structured records the matching engine consumes.
package ingestion

import (
	"regexp"
	"strings"
)

var multiBlankLines = regexp.MustCompile(`\n{3,}`)

// normalizeText standardizes line endings, strips HTML entity leftovers, and
// collapses runs of blank lines. Line structure is preserved because evidence
// collection works at line level.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, " ", " ")
	text = multiBlankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// cleanLines splits text into trimmed, non-empty lines.
func cleanLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
