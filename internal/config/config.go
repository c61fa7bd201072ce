package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/gig/internal/output"
	"github.com/gorewood/gig/internal/templates"
)

// DefaultOutput is the file written when no output path is given.
const DefaultOutput = ".gitignore"

// Config holds user settings from config.yaml.
type Config struct {
	// OnError selects the multi-name resolution policy: fail_fast or collect_all.
	OnError string `yaml:"on_error"`
	// Output is the default output path.
	Output string `yaml:"output"`
	// Color is auto, always or never.
	Color string `yaml:"color"`
	// Aliases map a short name to a list of template names.
	Aliases map[string]Targets `yaml:"aliases"`
}

// Targets is the template list of an alias. In YAML it is either a
// comma-separated string ("node,global.macos") or a sequence.
type Targets []string

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (t *Targets) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*t = nil
			return nil
		}
		*t = Targets{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*t = list
		return nil
	default:
		return fmt.Errorf("line %d: alias must be a string or a list of strings", node.Line)
	}
}

// names splits every target on commas and trims it.
func (t Targets) names() ([]string, error) {
	var out []string
	for _, target := range t {
		names, err := templates.ParseNames(target)
		if err != nil {
			return nil, err
		}
		out = append(out, names...)
	}
	return out, nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		OnError: templates.FailFast.String(),
		Output:  DefaultOutput,
		Color:   string(output.ColorAuto),
	}
}

// Load reads the YAML config at path on top of the defaults, then applies
// GIG_ON_ERROR and GIG_OUTPUT from the environment. A missing file is not an
// error; an empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("GIG_ON_ERROR"); v != "" {
		cfg.OnError = v
	}
	if v := os.Getenv("GIG_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config (%s): %w", sources(path), err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := templates.ParsePolicy(c.OnError); err != nil {
		return err
	}
	if _, err := output.ParseColorMode(c.Color); err != nil {
		return err
	}
	for name, targets := range c.Aliases {
		if strings.TrimSpace(name) == "" {
			return errors.New("alias with empty name")
		}
		if len(targets) == 0 {
			return fmt.Errorf("alias %q has no templates", name)
		}
		if _, err := targets.names(); err != nil {
			return fmt.Errorf("alias %q: %w", name, err)
		}
	}
	return nil
}

// sources names where the settings came from, for error messages.
func sources(path string) string {
	var from []string
	if path != "" {
		from = append(from, path)
	}
	for _, key := range []string{"GIG_ON_ERROR", "GIG_OUTPUT"} {
		if os.Getenv(key) != "" {
			from = append(from, key)
		}
	}
	if len(from) == 0 {
		return "defaults"
	}
	return strings.Join(from, ", ")
}

// Policy returns the parsed on_error policy.
func (c *Config) Policy() templates.Policy {
	policy, _ := templates.ParsePolicy(c.OnError)
	return policy
}

// Expand replaces alias names with their template lists, in place.
// Alias names match case-insensitively; expansion is not recursive.
// Comma-separated targets are split. Call Validate first; a target that
// fails to split is passed through unchanged.
func (c *Config) Expand(names []string) []string {
	if len(c.Aliases) == 0 {
		return names
	}

	aliases := make(map[string]Targets, len(c.Aliases))
	for name, targets := range c.Aliases {
		aliases[strings.ToLower(strings.TrimSpace(name))] = targets
	}

	expanded := make([]string, 0, len(names))
	for _, name := range names {
		if targets, ok := aliases[strings.ToLower(name)]; ok {
			if split, err := targets.names(); err == nil {
				expanded = append(expanded, split...)
			} else {
				expanded = append(expanded, targets...)
			}
			continue
		}
		expanded = append(expanded, name)
	}
	return expanded
}
