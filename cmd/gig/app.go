package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gorewood/gig/internal/config"
	"github.com/gorewood/gig/internal/logging"
	"github.com/gorewood/gig/internal/output"
	"github.com/gorewood/gig/internal/templates"
)

const (
	languagesRequired = "languages required (e.g., gig python or gig go,godot,node)"
	listHint          = "Run 'gig --list' to see available languages."
)

// app bundles what a command needs once flags and config are resolved.
type app struct {
	cfg     *config.Config
	index   *templates.Index
	policy  templates.Policy
	printer *output.Printer
	log     zerolog.Logger
}

// newApp loads config and the template index for cmd. Failures are printed
// through the printer before being returned.
func newApp(cmd *cobra.Command, loadIndex indexLoader) (*app, error) {
	out := cmd.OutOrStdout()

	cfg, cfgErr := config.Load(configPath(cmd))
	if cfgErr != nil {
		cfg = config.Default()
	}

	colorMode := cfg.Color
	if cmd.Flags().Changed("color") {
		colorMode, _ = cmd.Flags().GetString("color")
	}
	color := output.ResolveColorMode(colorMode, output.IsTTY(out))
	printer := output.NewPrinter(out, isJSONMode(cmd), color).WithStderr(cmd.ErrOrStderr())

	fail := func(err error) (*app, error) {
		printer.Error(err)
		return nil, err
	}

	if cfgErr != nil {
		return fail(output.NewUserErrorWithCause(cfgErr.Error(), cfgErr))
	}
	if _, err := output.ParseColorMode(colorMode); err != nil {
		return fail(output.NewUserErrorWithCause(err.Error(), err))
	}

	policy := cfg.Policy()
	if cmd.Flags().Changed("on-error") {
		value, _ := cmd.Flags().GetString("on-error")
		parsed, err := templates.ParsePolicy(value)
		if err != nil {
			return fail(output.NewUserErrorWithCause(err.Error(), err))
		}
		policy = parsed
	}

	verbosity, _ := cmd.Flags().GetCount("verbose")
	logger := logging.New(cmd.ErrOrStderr(), verbosity, !output.IsTTY(cmd.ErrOrStderr()))

	index, err := loadIndex()
	if err != nil {
		return fail(output.NewSystemErrorWithCause("failed to load templates: "+err.Error(), err))
	}

	indexLog := logging.Component(logger, "index")
	indexLog.Debug().Int("templates", index.Len()).Msg("index loaded")
	for _, c := range index.Collisions() {
		indexLog.Warn().Str("key", c.Key).Str("kept", c.Kept).Str("dropped", c.Dropped).Msg("template name collision")
	}

	return &app{
		cfg:     cfg,
		index:   index,
		policy:  policy,
		printer: printer,
		log:     logger,
	}, nil
}

// configPath returns the --config value or the default location.
func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.DefaultPath()
}

// resolveError converts a template resolution failure into a user error,
// prints it with the list hint, and returns it.
func (a *app) resolveError(err error) error {
	userErr := output.NewUserErrorWithCause(err.Error(), err)
	a.printer.Error(userErr)
	a.printer.Hint("%s", listHint)
	return userErr
}
