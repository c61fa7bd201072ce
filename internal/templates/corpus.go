package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"unicode/utf8"
)

// Suffix is the file suffix every corpus template carries.
const Suffix = ".gitignore"

// The corpus is a curated subset of github/gitignore. Refresh it with the
// full upstream collection by running go generate.
//
//go:generate go run ./corpusgen --out corpus

//go:embed corpus
var corpusFS embed.FS

// defaultIndex builds the embedded index at most once per process.
var defaultIndex = sync.OnceValues(func() (*Index, error) {
	sub, err := fs.Sub(corpusFS, "corpus")
	if err != nil {
		return nil, fmt.Errorf("opening embedded corpus: %w", err)
	}
	return Load(sub)
})

// Default returns the index built from the embedded template corpus.
// Call it once in the entry point and pass the result along.
func Default() (*Index, error) {
	return defaultIndex()
}

// Load walks fsys and builds an Index from every <name>.gitignore file in it.
// Names are scoped by directory (see ScopedName). Files that are not valid
// UTF-8 are skipped.
func Load(fsys fs.FS) (*Index, error) {
	entries, err := Collect(fsys)
	if err != nil {
		return nil, err
	}
	return Build(entries), nil
}

// Collect returns the corpus entries of fsys in walk order.
func Collect(fsys fs.FS) ([]Entry, error) {
	var entries []Entry

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		bare, ok := strings.CutSuffix(d.Name(), Suffix)
		if !ok || bare == "" {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}
		if !utf8.Valid(data) {
			return nil
		}

		entries = append(entries, Entry{
			Name:    ScopedName(path.Dir(p), bare),
			Path:    p,
			Content: string(data),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking template corpus: %w", err)
	}

	return entries, nil
}

// ScopedName computes a template name from its directory and bare file name:
//
//	.                   Go         -> Go
//	Global              macOS      -> global.macOS
//	community/Golang    Hugo       -> community.Golang.Hugo
//	community           Foo        -> community.Foo
//	other/dir           Bar        -> other.dir.Bar
func ScopedName(dir, bare string) string {
	if dir == "" || dir == "." {
		return bare
	}

	parts := strings.Split(dir, "/")
	switch {
	case strings.EqualFold(parts[0], "global"):
		return "global." + bare
	case strings.EqualFold(parts[0], "community"):
		if len(parts) > 1 {
			return "community." + parts[1] + "." + bare
		}
		return "community." + bare
	default:
		return strings.Join(parts, ".") + "." + bare
	}
}
