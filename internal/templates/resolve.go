package templates

import (
	"errors"
	"fmt"
	"strings"
)

// Policy controls how ResolveAll reacts to names that fail to resolve.
type Policy int

const (
	// FailFast stops at the first name that fails.
	FailFast Policy = iota
	// CollectAll resolves every name and reports all failures together.
	CollectAll
)

// String returns the configuration spelling of the policy.
func (p Policy) String() string {
	switch p {
	case CollectAll:
		return "collect_all"
	default:
		return "fail_fast"
	}
}

// ParsePolicy parses "fail_fast" or "collect_all" (hyphens also accepted).
// An empty string yields FailFast.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "", "fail_fast":
		return FailFast, nil
	case "collect_all":
		return CollectAll, nil
	default:
		return FailFast, fmt.Errorf("unknown on_error policy %q (want fail_fast or collect_all)", s)
	}
}

// Resolved is one name resolved against an Index.
type Resolved struct {
	Query   string `json:"query"`
	Key     string `json:"key"`
	Content string `json:"-"`
}

// ParseNames splits a comma-separated list and trims each element.
// Any empty element is an error.
func ParseNames(input string) ([]string, error) {
	parts := strings.Split(input, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			return nil, ErrEmptyNameInList
		}
		names = append(names, name)
	}
	return names, nil
}

// ResolveAll resolves names in order. With FailFast the first failure is
// returned as is; with CollectAll every failure is joined with errors.Join.
// On any failure no results are returned.
func (idx *Index) ResolveAll(names []string, policy Policy) ([]Resolved, error) {
	resolved := make([]Resolved, 0, len(names))
	var errs []error

	for _, name := range names {
		key, content, err := idx.Resolve(name)
		if err != nil {
			if policy == FailFast {
				return nil, err
			}
			errs = append(errs, err)
			continue
		}
		resolved = append(resolved, Resolved{Query: name, Key: key, Content: content})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return resolved, nil
}

// Contents returns the content of each resolved template in order.
func Contents(resolved []Resolved) []string {
	texts := make([]string, len(resolved))
	for i, r := range resolved {
		texts[i] = r.Content
	}
	return texts
}

// Keys returns the key of each resolved template in order.
func Keys(resolved []Resolved) []string {
	keys := make([]string, len(resolved))
	for i, r := range resolved {
		keys[i] = r.Key
	}
	return keys
}
