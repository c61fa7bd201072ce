package templates

// Result is the outcome of Generate.
type Result struct {
	Templates []Resolved
	Content   string
	Stats     Stats
}

// Generate resolves names with the given policy and merges the templates.
func (idx *Index) Generate(names []string, policy Policy) (*Result, error) {
	resolved, err := idx.ResolveAll(names, policy)
	if err != nil {
		return nil, err
	}

	content, stats := MergeWithStats(Contents(resolved))
	return &Result{
		Templates: resolved,
		Content:   content,
		Stats:     stats,
	}, nil
}
