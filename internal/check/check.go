// Package check previews which paths a generated .gitignore would ignore.
package check

import (
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// Result reports the outcome for one path.
type Result struct {
	Path    string `json:"path"`
	Ignored bool   `json:"ignored"`
	Rule    string `json:"rule,omitempty"`
	Line    int    `json:"line,omitempty"`
}

// Matcher tests paths against compiled gitignore content.
type Matcher struct {
	ignore *gitignore.GitIgnore
}

// New compiles gitignore content.
func New(content string) *Matcher {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	return &Matcher{ignore: gitignore.CompileIgnoreLines(lines...)}
}

// Match reports whether path is ignored and by which rule.
// Directory paths should carry a trailing slash.
func (m *Matcher) Match(path string) Result {
	ignored, pattern := m.ignore.MatchesPathHow(path)

	result := Result{Path: path, Ignored: ignored}
	if ignored && pattern != nil {
		result.Rule = pattern.Line
		result.Line = pattern.LineNo
	}
	return result
}

// Paths matches every path against content in order.
func Paths(content string, paths []string) []Result {
	m := New(content)
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		results = append(results, m.Match(path))
	}
	return results
}

// CountIgnored returns how many results are ignored.
func CountIgnored(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Ignored {
			n++
		}
	}
	return n
}
