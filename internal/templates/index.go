package templates

import (
	"slices"
	"strings"
)

// Entry is one named template from a corpus.
type Entry struct {
	Name    string // display name, e.g. "Go" or "global.macOS"
	Path    string // location in the corpus, empty for in-memory entries
	Content string
}

// Collision records two corpus entries that normalize to the same key.
// The later entry wins.
type Collision struct {
	Key     string
	Kept    string
	Dropped string
}

// Index is an immutable mapping from lowercase template name to content.
type Index struct {
	content    map[string]string
	source     map[string]string // key -> display name of the entry kept
	keys       []string          // sorted
	collisions []Collision
}

// Build creates an Index from entries in order. When two entries share a
// lowercase name, the later one overwrites the earlier and a Collision is
// recorded. Entries with an empty name are skipped.
func Build(entries []Entry) *Index {
	idx := &Index{
		content: make(map[string]string, len(entries)),
		source:  make(map[string]string, len(entries)),
	}

	for _, entry := range entries {
		key := normalize(entry.Name)
		if key == "" {
			continue
		}
		if prev, exists := idx.source[key]; exists {
			idx.collisions = append(idx.collisions, Collision{
				Key:     key,
				Kept:    entry.Name,
				Dropped: prev,
			})
		}
		idx.content[key] = entry.Content
		idx.source[key] = entry.Name
	}

	idx.keys = make([]string, 0, len(idx.content))
	for key := range idx.content {
		idx.keys = append(idx.keys, key)
	}
	slices.Sort(idx.keys)

	return idx
}

// Lookup returns the content of the template matching name.
// See Resolve for the matching rules.
func (idx *Index) Lookup(name string) (string, error) {
	_, content, err := idx.Resolve(name)
	return content, err
}

// Resolve finds the template for name and returns its key and content.
//
// Matching is case-insensitive. An exact key wins; otherwise name must be a
// prefix of exactly one key. Zero candidates yields *NotFoundError, several
// yield *AmbiguousError.
func (idx *Index) Resolve(name string) (key, content string, err error) {
	key = normalize(name)
	if key == "" {
		return "", "", ErrEmptyName
	}

	if text, ok := idx.content[key]; ok {
		return key, text, nil
	}

	matches := idx.prefixMatches(key)
	switch len(matches) {
	case 0:
		return "", "", &NotFoundError{Name: name}
	case 1:
		return matches[0], idx.content[matches[0]], nil
	default:
		return "", "", &AmbiguousError{Name: name, Matches: matches}
	}
}

// List returns all template keys in lexicographic order.
func (idx *Index) List() []string {
	return slices.Clone(idx.keys)
}

// ListPrefix returns the sorted keys that start with prefix (case-insensitive).
// An empty prefix returns every key.
func (idx *Index) ListPrefix(prefix string) []string {
	key := normalize(prefix)
	if key == "" {
		return idx.List()
	}
	return idx.prefixMatches(key)
}

// Len returns the number of templates.
func (idx *Index) Len() int {
	return len(idx.keys)
}

// Source returns the display name of the entry stored under key.
func (idx *Index) Source(key string) string {
	return idx.source[normalize(key)]
}

// Collisions returns the name collisions seen while building the index.
func (idx *Index) Collisions() []Collision {
	return slices.Clone(idx.collisions)
}

// prefixMatches returns the sorted keys having prefix as a string prefix.
func (idx *Index) prefixMatches(prefix string) []string {
	start, _ := slices.BinarySearch(idx.keys, prefix)

	var matches []string
	for _, key := range idx.keys[start:] {
		if !strings.HasPrefix(key, prefix) {
			break
		}
		matches = append(matches, key)
	}
	return matches
}

// normalize lowercases and trims a template name.
func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
