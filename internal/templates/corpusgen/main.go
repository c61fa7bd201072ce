// Command corpusgen refreshes the embedded template corpus from a checkout of
// github/gitignore. It is run through go generate in the templates package:
//
//	go generate ./internal/templates
//
// By default it shallow-clones the upstream repository into a temporary
// directory. Pass --src to copy from an existing checkout instead.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gorewood/gig/internal/logging"
	"github.com/gorewood/gig/internal/templates"
)

const upstream = "https://github.com/github/gitignore.git"

func main() {
	if err := newCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "corpusgen:", err)
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var repo, ref, src, out string
	var verbose int

	cmd := &cobra.Command{
		Use:           "corpusgen",
		Short:         "Refresh the embedded gitignore corpus",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logging.New(cmd.ErrOrStderr(), verbose, false)

			if src == "" {
				dir, err := os.MkdirTemp("", "gig-corpus-*")
				if err != nil {
					return fmt.Errorf("creating temp dir: %w", err)
				}
				defer func() { _ = os.RemoveAll(dir) }()

				if err := clone(cmd.Context(), repo, ref, dir); err != nil {
					return err
				}
				src = dir
			}

			n, err := copyCorpus(src, out, log)
			if err != nil {
				return err
			}
			idx, err := templates.Load(os.DirFS(out))
			if err != nil {
				return fmt.Errorf("loading refreshed corpus: %w", err)
			}
			for _, c := range idx.Collisions() {
				log.Warn().Str("key", c.Key).Str("kept", c.Kept).Str("dropped", c.Dropped).Msg("template name collision")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "copied %d templates into %s (%d keys)\n", n, out, idx.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", upstream, "Repository to clone")
	cmd.Flags().StringVar(&ref, "ref", "", "Branch or tag to clone (default: repository default)")
	cmd.Flags().StringVar(&src, "src", "", "Existing checkout to copy from instead of cloning")
	cmd.Flags().StringVar(&out, "out", "corpus", "Corpus directory to replace")
	cmd.Flags().CountVarP(&verbose, "verbose", "v", "Log each copied file")

	return cmd
}

// clone shallow-clones repo into dir.
func clone(ctx context.Context, repo, ref, dir string) error {
	args := []string{"clone", "--depth=1"}
	if ref != "" {
		args = append(args, "--branch", ref)
	}
	args = append(args, repo, dir)

	cmd := exec.CommandContext(ctx, "git", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git clone %s: %w: %s", repo, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// copyCorpus replaces out with every <name>.gitignore file under src, keeping the
// directory layout the index derives scoped names from. Hidden directories
// and files that are not valid UTF-8 are skipped.
func copyCorpus(src, out string, log zerolog.Logger) (int, error) {
	if out == "" || filepath.Clean(out) == string(filepath.Separator) {
		return 0, errors.New("refusing to replace an empty or root output directory")
	}
	if err := os.RemoveAll(out); err != nil {
		return 0, fmt.Errorf("clearing %s: %w", out, err)
	}

	copied := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != src && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		bare, ok := strings.CutSuffix(d.Name(), templates.Suffix)
		if !ok || bare == "" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if !utf8.Valid(data) {
			log.Debug().Str("path", path).Msg("skipping non-UTF-8 template")
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(out, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(dest), err)
		}
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}
		log.Debug().Str("template", filepath.ToSlash(rel)).Msg("copied")
		copied++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("copying templates from %s: %w", src, err)
	}
	return copied, nil
}
