package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/gig/internal/check"
	"github.com/gorewood/gig/internal/output"
	"github.com/gorewood/gig/internal/templates"
)

// newCheckCmd creates the check command.
func newCheckCmd(loadIndex indexLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "check <languages> <path>...",
		Short: "Preview which paths a generated .gitignore would ignore",
		Long: `Merge templates in memory and test paths against the result.

Nothing is written. Paths are slash-separated and relative to the directory
holding the .gitignore; end directories with "/".

Examples:
  gig check go,global.macos bin/app.exe .DS_Store main.go
  gig check node node_modules/ src/index.js --json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, loadIndex, args[0], args[1:])
		},
	}
}

// runCheck merges the languages and reports each path's status.
func runCheck(cmd *cobra.Command, loadIndex indexLoader, languages string, paths []string) error {
	a, err := newApp(cmd, loadIndex)
	if err != nil {
		return err
	}

	names, err := templates.ParseNames(languages)
	if err != nil {
		userErr := output.NewUserErrorWithCause(err.Error(), err)
		a.printer.Error(userErr)
		return userErr
	}

	result, err := a.index.Generate(a.cfg.Expand(names), a.policy)
	if err != nil {
		return a.resolveError(err)
	}

	results := check.Paths(result.Content, paths)

	if a.printer.IsJSON() {
		return a.printer.Success(map[string]any{
			"templates": templates.Keys(result.Templates),
			"ignored":   check.CountIgnored(results),
			"results":   results,
		})
	}

	for _, r := range results {
		if r.Ignored {
			a.printer.KeyValue("ignored", fmt.Sprintf("%s  (line %d: %s)", r.Path, r.Line, r.Rule))
			continue
		}
		a.printer.KeyValue("kept", r.Path)
	}
	return nil
}
