package main

import (
	"github.com/spf13/cobra"
)

// newShowCmd creates the show command.
func newShowCmd(loadIndex indexLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "show <language>",
		Short: "Print a single template",
		Long: `Print the content of one template without writing any file.

Examples:
  gig show go
  gig show pyth            # Unique prefixes resolve too`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, loadIndex, args[0])
		},
	}
}

// runShow resolves name and prints its content.
func runShow(cmd *cobra.Command, loadIndex indexLoader, name string) error {
	a, err := newApp(cmd, loadIndex)
	if err != nil {
		return err
	}

	key, content, err := a.index.Resolve(name)
	if err != nil {
		return a.resolveError(err)
	}

	if a.printer.IsJSON() {
		return a.printer.Success(map[string]any{
			"key":     key,
			"content": content,
		})
	}
	a.printer.Raw(content)
	return nil
}
