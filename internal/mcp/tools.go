package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/gig/internal/check"
	"github.com/gorewood/gig/internal/templates"
)

// --- Shared types ---

// TemplateRef names a resolved template.
type TemplateRef struct {
	Query string `json:"query" jsonschema:"name as requested"`
	Key   string `json:"key"   jsonschema:"template key it resolved to"`
}

// --- List tool ---

// ListInput is the input for the list tool.
type ListInput struct {
	Prefix string `json:"prefix,omitempty" jsonschema:"only list names starting with this prefix (case-insensitive)"`
}

// ListOutput is the output for the list tool.
type ListOutput struct {
	Count     int      `json:"count"     jsonschema:"number of templates listed"`
	Templates []string `json:"templates" jsonschema:"sorted template names"`
}

func handleList(index *templates.Index) mcp.ToolHandlerFor[ListInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
		names := index.ListPrefix(input.Prefix)
		if names == nil {
			names = []string{}
		}
		return nil, ListOutput{Count: len(names), Templates: names}, nil
	}
}

// --- Show tool ---

// ShowInput is the input for the show tool.
type ShowInput struct {
	Name string `json:"name" jsonschema:"template name or unique prefix, e.g. go or pyth"`
}

// ShowOutput is the output for the show tool.
type ShowOutput struct {
	Key     string `json:"key"     jsonschema:"template key"`
	Content string `json:"content" jsonschema:"template content"`
}

func handleShow(index *templates.Index) mcp.ToolHandlerFor[ShowInput, ShowOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
		key, content, err := index.Resolve(input.Name)
		if err != nil {
			return nil, ShowOutput{}, err
		}
		return nil, ShowOutput{Key: key, Content: content}, nil
	}
}

// --- Generate tool ---

// GenerateInput is the input for the generate tool.
type GenerateInput struct {
	Names   []string `json:"names"              jsonschema:"template names in merge order"`
	OnError string   `json:"on_error,omitempty" jsonschema:"fail_fast (default) or collect_all"`
}

// GenerateOutput is the output for the generate tool.
type GenerateOutput struct {
	Templates []TemplateRef   `json:"templates" jsonschema:"templates merged, in order"`
	Content   string          `json:"content"   jsonschema:"merged .gitignore content"`
	Stats     templates.Stats `json:"stats"     jsonschema:"line counts for the merge"`
}

func handleGenerate(index *templates.Index, policy templates.Policy) mcp.ToolHandlerFor[GenerateInput, GenerateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
		result, err := generate(index, input.Names, input.OnError, policy)
		if err != nil {
			return nil, GenerateOutput{}, err
		}
		return nil, GenerateOutput{
			Templates: toTemplateRefs(result.Templates),
			Content:   result.Content,
			Stats:     result.Stats,
		}, nil
	}
}

// --- Check tool ---

// CheckInput is the input for the check tool.
type CheckInput struct {
	Names   []string `json:"names"              jsonschema:"template names in merge order"`
	Paths   []string `json:"paths"              jsonschema:"slash-separated paths to test; end directories with /"`
	OnError string   `json:"on_error,omitempty" jsonschema:"fail_fast (default) or collect_all"`
}

// CheckOutput is the output for the check tool.
type CheckOutput struct {
	Ignored int            `json:"ignored" jsonschema:"number of paths that would be ignored"`
	Results []check.Result `json:"results" jsonschema:"per-path outcome in input order"`
}

func handleCheck(index *templates.Index, policy templates.Policy) mcp.ToolHandlerFor[CheckInput, CheckOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CheckInput) (*mcp.CallToolResult, CheckOutput, error) {
		if len(input.Paths) == 0 {
			return nil, CheckOutput{}, errors.New("paths must not be empty")
		}
		result, err := generate(index, input.Names, input.OnError, policy)
		if err != nil {
			return nil, CheckOutput{}, err
		}
		results := check.Paths(result.Content, input.Paths)
		return nil, CheckOutput{Ignored: check.CountIgnored(results), Results: results}, nil
	}
}

// generate resolves and merges names, honoring an optional per-call policy.
func generate(index *templates.Index, names []string, onError string, fallback templates.Policy) (*templates.Result, error) {
	if len(names) == 0 {
		return nil, errors.New("names must not be empty")
	}

	policy := fallback
	if onError != "" {
		parsed, err := templates.ParsePolicy(onError)
		if err != nil {
			return nil, err
		}
		policy = parsed
	}

	result, err := index.Generate(names, policy)
	if err != nil {
		return nil, fmt.Errorf("resolving templates: %w", err)
	}
	return result, nil
}

// toTemplateRefs converts resolved templates to output references.
func toTemplateRefs(resolved []templates.Resolved) []TemplateRef {
	refs := make([]TemplateRef, 0, len(resolved))
	for _, r := range resolved {
		refs = append(refs, TemplateRef{Query: r.Query, Key: r.Key})
	}
	return refs
}
