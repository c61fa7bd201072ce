// Package mcp provides a Model Context Protocol server for gig.
// It exposes template lookup and merging as read-only MCP tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/gig/internal/templates"
)

// NewServer creates an MCP server with all gig tools registered.
// policy is the default resolution policy when a call does not set on_error.
func NewServer(version string, index *templates.Index, policy templates.Policy) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "gig",
		Version: version,
	}, nil)
	registerTools(server, index, policy)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all gig tools to the server.
func registerTools(server *mcp.Server, index *templates.Index, policy templates.Policy) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list",
		Description: "List available gitignore template names, optionally only those starting with a prefix.",
		Annotations: readOnlyAnnotations(),
	}, handleList(index))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show",
		Description: "Resolve one template name (case-insensitive, unique prefixes allowed) and return its content.",
		Annotations: readOnlyAnnotations(),
	}, handleShow(index))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Merge several templates into .gitignore content. Duplicate patterns are removed; comments and blank lines are kept. Does not write files.",
		Annotations: readOnlyAnnotations(),
	}, handleGenerate(index, policy))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check",
		Description: "Merge templates and report which of the given paths the result would ignore, and by which rule.",
		Annotations: readOnlyAnnotations(),
	}, handleCheck(index, policy))
}
