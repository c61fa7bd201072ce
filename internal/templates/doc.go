// Package templates resolves and merges gitignore templates.
//
// The package has two halves that share nothing but data:
//
// # Index
//
// An Index maps lowercase template names to template text. It is built once
// from a corpus (normally the embedded copy of github/gitignore) and never
// mutated afterward, so a single Index can be shared by any number of readers:
//
//	idx, err := templates.Default()
//	content, err := idx.Lookup("Python") // exact, case-insensitive
//	content, err = idx.Lookup("pyth")    // unique prefix
//
// Lookup failures are typed: ErrEmptyName, *NotFoundError and *AmbiguousError
// (whose Matches field lists every candidate in sorted order).
//
// # Merge
//
// Merge combines several templates into one. Comment and blank lines are kept
// verbatim and in order; pattern lines are deduplicated across the whole merge
// by their trimmed text, first occurrence wins:
//
//	out := templates.Merge([]string{goText, rustText})
//
// # Corpus names
//
// Load derives names from the corpus layout: top-level files keep their bare
// name, Global/X becomes global.X and community/<sub>/X becomes
// community.<sub>.X.
package templates
