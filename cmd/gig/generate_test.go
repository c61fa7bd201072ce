package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gorewood/gig/internal/output"
)

const goRustMerged = "# Binaries\n*.exe\n*.test\n\n# Output\nbin/\n# Build\ntarget/\n"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestGenerate_WritesMergedFile(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "nested", ".gitignore")

	stdout, stderr, err := runCLI(t, fixtureLoader, "Go, RUST", path)
	if err != nil {
		t.Fatalf("Execute() error = %v (stderr %q)", err, stderr)
	}

	if diff := cmp.Diff(goRustMerged, readFile(t, path)); diff != "" {
		t.Errorf("file content mismatch (-want +got):\n%s", diff)
	}

	want := "Created " + path + " from go, rust (1 duplicate pattern removed)"
	if !strings.Contains(stdout, want) {
		t.Errorf("stdout = %q, want it to contain %q", stdout, want)
	}
}

func TestGenerate_DefaultOutputPath(t *testing.T) {
	isolateEnv(t)
	t.Chdir(t.TempDir())

	if _, _, err := runCLI(t, fixtureLoader, "ruby"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := readFile(t, ".gitignore"); got != rubyTemplate {
		t.Errorf(".gitignore = %q, want %q", got, rubyTemplate)
	}
}

func TestGenerate_RefusesOverwrite(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), ".gitignore")
	writeFile(t, path, "keep me\n")

	_, stderr, err := runCLI(t, fixtureLoader, "go", path)
	if code := output.GetExitCode(err); code != output.ExitConflict {
		t.Fatalf("exit code = %d, want %d", code, output.ExitConflict)
	}
	if !strings.Contains(stderr, "already exists") {
		t.Errorf("stderr = %q", stderr)
	}
	if got := readFile(t, path); got != "keep me\n" {
		t.Errorf("existing file modified: %q", got)
	}

	if _, _, err := runCLI(t, fixtureLoader, "--force", "go", path); err != nil {
		t.Fatalf("--force error = %v", err)
	}
	if got := readFile(t, path); got != goTemplate {
		t.Errorf("after --force = %q, want %q", got, goTemplate)
	}
}

func TestGenerate_Stdout(t *testing.T) {
	isolateEnv(t)

	stdout, _, err := runCLI(t, fixtureLoader, "go,rust", "-")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if diff := cmp.Diff(goRustMerged, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_StdoutJSON(t *testing.T) {
	isolateEnv(t)

	stdout, _, err := runCLI(t, fixtureLoader, "--json", "go,rust", "-")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	result := decodeJSON(t, stdout)
	if result["content"] != goRustMerged {
		t.Errorf("content = %q", result["content"])
	}
	if result["duplicates"] != float64(1) {
		t.Errorf("duplicates = %v, want 1", result["duplicates"])
	}
	if result["patterns"] != float64(4) {
		t.Errorf("patterns = %v, want 4", result["patterns"])
	}
}

func TestGenerate_OutputFromEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("GIG_OUTPUT", "-")

	stdout, _, err := runCLI(t, fixtureLoader, "ruby")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != rubyTemplate {
		t.Errorf("stdout = %q, want %q", stdout, rubyTemplate)
	}
}

func TestGenerate_Aliases(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{"sequence", "aliases:\n  mac-go: [go, global.macos]\n"},
		{"comma string", "aliases:\n  mac-go: go, global.macos\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolateEnv(t)
			writeFile(t, filepath.Join(dir, "config.yaml"), tt.config)

			stdout, _, err := runCLI(t, fixtureLoader, "Mac-Go", "-")
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if want := goTemplate + macosTemplate; stdout != want {
				t.Errorf("stdout = %q, want %q", stdout, want)
			}

			if _, _, err := runCLI(t, fixtureLoader, "list"); err != nil {
				t.Errorf("list with alias config error = %v", err)
			}
		})
	}
}

func TestGenerate_ResolutionErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "not found",
			args: []string{"cobol", "-"},
			want: []string{`no template found for language "cobol"`, listHint},
		},
		{
			name: "ambiguous",
			args: []string{"ru", "-"},
			want: []string{`ambiguous language "ru"; matches: ruby, rust`, listHint},
		},
		{
			name: "empty segment",
			args: []string{"go,,rust", "-"},
			want: []string{"empty language in list"},
		},
		{
			name:    "fail fast stops at first failure",
			args:    []string{"cobol,ru", "-"},
			want:    []string{`"cobol"`},
			notWant: []string{`"ru"`},
		},
		{
			name: "collect all reports every failure",
			args: []string{"--on-error", "collect-all", "cobol,go,ru", "-"},
			want: []string{`"cobol"`, `"ru"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)

			stdout, stderr, err := runCLI(t, fixtureLoader, tt.args...)
			if code := output.GetExitCode(err); code != output.ExitUserError {
				t.Fatalf("exit code = %d, want %d", code, output.ExitUserError)
			}
			if stdout != "" {
				t.Errorf("no partial output expected, got %q", stdout)
			}
			for _, want := range tt.want {
				if !strings.Contains(stderr, want) {
					t.Errorf("stderr = %q, want it to contain %q", stderr, want)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(stderr, notWant) {
					t.Errorf("stderr = %q, should not contain %q", stderr, notWant)
				}
			}
		})
	}
}

func TestGenerate_CollectAllFromEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("GIG_ON_ERROR", "collect_all")

	_, stderr, err := runCLI(t, fixtureLoader, "cobol,ru", "-")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(stderr, `"cobol"`) || !strings.Contains(stderr, `"ru"`) {
		t.Errorf("stderr should list both failures: %q", stderr)
	}
}

func TestGenerateMessage(t *testing.T) {
	tests := []struct {
		duplicates int
		want       string
	}{
		{0, "Created .gitignore from go, rust"},
		{1, "Created .gitignore from go, rust (1 duplicate pattern removed)"},
		{3, "Created .gitignore from go, rust (3 duplicate patterns removed)"},
	}
	for _, tt := range tests {
		if got := generateMessage(".gitignore", []string{"go", "rust"}, tt.duplicates); got != tt.want {
			t.Errorf("generateMessage(%d) = %q, want %q", tt.duplicates, got, tt.want)
		}
	}
}
