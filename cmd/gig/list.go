package main

import (
	"github.com/spf13/cobra"
)

// newListCmd creates the list command.
func newListCmd(loadIndex indexLoader) *cobra.Command {
	var longFlag bool

	cmd := &cobra.Command{
		Use:   "list [prefix]",
		Short: "List available language templates",
		Long: `List available language templates, one per line.

With a prefix, only names starting with it are listed, which shows what an
abbreviated name would match.

Examples:
  gig list                 # Everything
  gig list global          # Editor and OS templates
  gig list --long          # Include the corpus name of each template`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) > 0 {
				prefix = args[0]
			}
			return runList(cmd, loadIndex, prefix, longFlag)
		},
	}

	cmd.Flags().BoolVarP(&longFlag, "long", "l", false, "Show the corpus name next to each key")

	return cmd
}

// runList prints template keys starting with prefix.
func runList(cmd *cobra.Command, loadIndex indexLoader, prefix string, long bool) error {
	a, err := newApp(cmd, loadIndex)
	if err != nil {
		return err
	}

	keys := a.index.ListPrefix(prefix)
	if keys == nil {
		keys = []string{}
	}

	if a.printer.IsJSON() {
		return a.printer.Success(map[string]any{
			"count":     len(keys),
			"templates": keys,
		})
	}

	if long {
		rows := make([][]string, 0, len(keys))
		for _, key := range keys {
			rows = append(rows, []string{key, a.index.Source(key)})
		}
		a.printer.Table([]string{"KEY", "NAME"}, rows)
		return nil
	}

	for _, key := range keys {
		a.printer.Println(key)
	}
	return nil
}
