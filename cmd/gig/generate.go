package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/gig/internal/outfile"
	"github.com/gorewood/gig/internal/output"
	"github.com/gorewood/gig/internal/templates"
)

// runGenerate resolves the languages in args[0], merges them and writes the
// result to args[1] (or the configured default output).
func runGenerate(cmd *cobra.Command, loadIndex indexLoader, args []string, force bool) error {
	a, err := newApp(cmd, loadIndex)
	if err != nil {
		return err
	}

	names, err := templates.ParseNames(args[0])
	if err != nil {
		userErr := output.NewUserErrorWithCause(err.Error(), err)
		a.printer.Error(userErr)
		return userErr
	}
	names = a.cfg.Expand(names)

	a.log.Debug().Strs("names", names).Str("policy", a.policy.String()).Msg("resolving templates")
	result, err := a.index.Generate(names, a.policy)
	if err != nil {
		return a.resolveError(err)
	}
	keys := templates.Keys(result.Templates)
	a.log.Debug().
		Strs("keys", keys).
		Int("patterns", result.Stats.Patterns).
		Int("duplicates", result.Stats.Duplicates).
		Msg("templates merged")

	path := a.cfg.Output
	if len(args) > 1 {
		path = args[1]
	}

	if path == outfile.Stdout {
		if a.printer.IsJSON() {
			return a.printer.Success(generateData(path, keys, result))
		}
		a.printer.Raw(result.Content)
		return nil
	}

	if err := outfile.Write(path, result.Content, force); err != nil {
		a.printer.Error(err)
		return err
	}
	a.log.Debug().Str("path", path).Bool("force", force).Msg("output written")

	return a.printer.Success(generateData(path, keys, result))
}

// generateData builds the success payload for a generate run.
func generateData(path string, keys []string, result *templates.Result) map[string]any {
	data := map[string]any{
		"message":    generateMessage(path, keys, result.Stats.Duplicates),
		"path":       path,
		"templates":  keys,
		"patterns":   result.Stats.Patterns,
		"duplicates": result.Stats.Duplicates,
	}
	if path == outfile.Stdout {
		data["content"] = result.Content
	}
	return data
}

// generateMessage is the human summary line for a generate run.
func generateMessage(path string, keys []string, duplicates int) string {
	msg := fmt.Sprintf("Created %s from %s", path, strings.Join(keys, ", "))
	switch duplicates {
	case 0:
		return msg
	case 1:
		return msg + " (1 duplicate pattern removed)"
	default:
		return fmt.Sprintf("%s (%d duplicate patterns removed)", msg, duplicates)
	}
}
