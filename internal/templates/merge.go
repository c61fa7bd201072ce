package templates

import (
	"iter"
	"strings"
)

// Stats describes what a merge kept and dropped.
type Stats struct {
	Templates  int `json:"templates"`
	Lines      int `json:"lines"`
	Patterns   int `json:"patterns"`
	Duplicates int `json:"duplicates"`
}

// Merge combines templates in order into a single text.
//
// Blank lines and comments are always emitted unmodified. Pattern lines are
// deduplicated across all templates by their trimmed text; the first
// occurrence is emitted in its original form and later ones are dropped.
// Comparison is case-sensitive. Every emitted line ends with "\n".
func Merge(texts []string) string {
	out, _ := MergeWithStats(texts)
	return out
}

// MergeWithStats is Merge that also reports counts.
func MergeWithStats(texts []string) (string, Stats) {
	stats := Stats{Templates: len(texts)}
	seen := make(map[string]struct{})

	var b strings.Builder
	for _, text := range texts {
		for line := range splitLines(text) {
			trimmed := strings.TrimSpace(line)
			if !IsStructural(line) {
				if _, dup := seen[trimmed]; dup {
					stats.Duplicates++
					continue
				}
				seen[trimmed] = struct{}{}
				stats.Patterns++
			}
			b.WriteString(line)
			b.WriteByte('\n')
			stats.Lines++
		}
	}

	return b.String(), stats
}

// IsStructural reports whether a line is blank or a comment.
func IsStructural(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// splitLines yields the lines of text without terminators. A "\r\n" ending
// counts as one terminator and a final terminator does not start a new line.
func splitLines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(text) {
			if stripped, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(stripped, "\r")
			}
			if !yield(line) {
				return
			}
		}
	}
}
