// Package main provides the entry point for the gig CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/gig/internal/output"
	"github.com/gorewood/gig/internal/templates"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// indexLoader returns the template index. Production code passes
// templates.Default; tests pass a fixture.
type indexLoader func() (*templates.Index, error)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command backed by the embedded corpus.
func newRootCmd() *cobra.Command {
	return newRootCmdInternal(templates.Default)
}

// newRootCmdInternal creates the root command with an injected index loader.
func newRootCmdInternal(loadIndex indexLoader) *cobra.Command {
	var listFlag bool
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "gig <languages> [output]",
		Short: "Generate .gitignore files from GitHub's template collection",
		Long: `gig - generate .gitignore files from GitHub's template collection

Arguments:
  languages  Comma-separated list of language/tool templates (e.g., python or go,godot,node)
  output     Path to write the .gitignore file (default: .gitignore, "-" for stdout)

Names are case-insensitive and may be abbreviated to any unique prefix.
Patterns shared by several templates are written once; comments and blank
lines are kept so each section stays readable.

Examples:
  gig python                   Create .gitignore for Python
  gig go,godot,node            Create .gitignore for Go + Godot + Node
  gig rust src/.gitignore      Create .gitignore for Rust in src/
  gig go,global.macos -        Print the merged result instead of writing it

Templates are sourced from https://github.com/github/gitignore`,
		Version:       buildVersion(),
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listFlag {
				return runList(cmd, loadIndex, "", false)
			}
			if len(args) == 0 {
				if isJSONMode(cmd) {
					printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
					err := output.NewUserError(languagesRequired)
					printer.Error(err)
					return err
				}
				return cmd.Help()
			}
			return runGenerate(cmd, loadIndex, args, forceFlag)
		},
	}

	cmd.Flags().BoolVar(&listFlag, "list", false, "List all available language templates")
	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite the output file if it exists")
	cmd.Flags().BoolP("version", "V", false, "Show version information")

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "", "Color output: auto, always or never")
	cmd.PersistentFlags().String("on-error", "", "Multi-name failures: fail_fast or collect_all")
	cmd.PersistentFlags().String("config", "", "Config file (default: $GIG_CONFIG_HOME/config.yaml)")
	cmd.PersistentFlags().CountP("verbose", "v", "Log diagnostics to stderr (repeat for more)")

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newListCmd(loadIndex))
	cmd.AddCommand(newShowCmd(loadIndex))
	cmd.AddCommand(newCheckCmd(loadIndex))
	cmd.AddCommand(newServeCmd(loadIndex))

	return cmd
}
