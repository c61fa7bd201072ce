package templates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyName is returned when a template name is empty after trimming.
var ErrEmptyName = errors.New("template name is empty")

// ErrEmptyNameInList is returned by ParseNames for a list with an empty segment.
var ErrEmptyNameInList = errors.New("empty language in list")

// ErrNotFound matches any *NotFoundError via errors.Is.
var ErrNotFound = errors.New("template not found")

// ErrAmbiguous matches any *AmbiguousError via errors.Is.
var ErrAmbiguous = errors.New("ambiguous template name")

// NotFoundError reports a name that matches no key exactly or by prefix.
type NotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no template found for language %q", e.Name)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AmbiguousError reports a name that is a prefix of more than one key.
type AmbiguousError struct {
	Name    string
	Matches []string // sorted
}

// Error implements the error interface.
func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous language %q; matches: %s", e.Name, strings.Join(e.Matches, ", "))
}

// Is reports whether target is ErrAmbiguous.
func (e *AmbiguousError) Is(target error) bool {
	return target == ErrAmbiguous
}
