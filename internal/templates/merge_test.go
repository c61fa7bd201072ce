package templates

import "testing"

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  string
	}{
		{
			name:  "empty list",
			texts: nil,
			want:  "",
		},
		{
			name:  "single template",
			texts: []string{"# Comment\n*.log\n"},
			want:  "# Comment\n*.log\n",
		},
		{
			name:  "deduplicates patterns across templates",
			texts: []string{"# First\n*.log\n", "# Second\n*.log\n*.txt\n"},
			want:  "# First\n*.log\n# Second\n*.txt\n",
		},
		{
			name:  "repeated comment kept, pattern dropped",
			texts: []string{"# c\n*.log\n", "# c\n*.log\n"},
			want:  "# c\n*.log\n# c\n",
		},
		{
			name:  "identical comments preserved",
			texts: []string{"# Same comment\n*.a\n", "# Same comment\n*.b\n"},
			want:  "# Same comment\n*.a\n# Same comment\n*.b\n",
		},
		{
			name:  "blank lines preserved",
			texts: []string{"*.a\n\n*.b\n", "*.c\n\n*.d\n"},
			want:  "*.a\n\n*.b\n*.c\n\n*.d\n",
		},
		{
			name:  "case-sensitive patterns",
			texts: []string{"*.log\n", "*.LOG\n"},
			want:  "*.log\n*.LOG\n",
		},
		{
			name:  "duplicates within one template",
			texts: []string{"*.o\n*.o\n"},
			want:  "*.o\n",
		},
		{
			name:  "first occurrence keeps original whitespace",
			texts: []string{"  build/  \n", "build/\n"},
			want:  "  build/  \n",
		},
		{
			name:  "indented comment is structural",
			texts: []string{"   # note\n", "   # note\n"},
			want:  "   # note\n   # note\n",
		},
		{
			name:  "whitespace-only line is structural",
			texts: []string{"a\n \t\nb\n"},
			want:  "a\n \t\nb\n",
		},
		{
			name:  "missing final newline is added",
			texts: []string{"*.a", "*.b"},
			want:  "*.a\n*.b\n",
		},
		{
			name:  "crlf line endings normalized",
			texts: []string{"# win\r\n*.exe\r\n", "*.exe\n"},
			want:  "# win\n*.exe\n",
		},
		{
			name:  "empty template contributes nothing",
			texts: []string{"", "*.a\n"},
			want:  "*.a\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Merge(tt.texts); got != tt.want {
				t.Errorf("Merge() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMergeWithStats(t *testing.T) {
	_, stats := MergeWithStats([]string{
		"# Go\n*.exe\n*.dll\n\n",
		"# C\n*.exe\n*.o\n*.dll\n",
	})

	want := Stats{Templates: 2, Lines: 6, Patterns: 3, Duplicates: 2}
	if stats != want {
		t.Errorf("MergeWithStats() stats = %+v, want %+v", stats, want)
	}
}

func TestIsStructural(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{line: "", want: true},
		{line: "   ", want: true},
		{line: "# comment", want: true},
		{line: "\t#indented", want: true},
		{line: "*.log", want: false},
		{line: "\\#literal-hash", want: false},
		{line: "!keep.me", want: false},
	}

	for _, tt := range tests {
		if got := IsStructural(tt.line); got != tt.want {
			t.Errorf("IsStructural(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
