// Package mcp provides a Model Context Protocol server for guestmail.
// It exposes template management and email rendering as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/gorewood/guestmail/internal/templates"
)

// NewServer creates an MCP server with all guestmail tools registered.
func NewServer(version string, store *templates.Store, logger zerolog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "guestmail",
		Version: version,
	}, nil)
	registerTools(server, &guardedStore{store: store, logger: logger})
	return server
}

// guardedStore serializes tool calls into a Store, which is not safe for
// concurrent use.
type guardedStore struct {
	mu     sync.Mutex
	store  *templates.Store
	logger zerolog.Logger
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

// writeAnnotations returns annotations for tools that create or modify
// templates.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// deleteAnnotations returns annotations for tools that remove templates.
func deleteAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  false,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all guestmail tools to the server.
func registerTools(server *mcp.Server, gs *guardedStore) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_templates",
		Description: "List every email template with its subject pattern and the guest detail fields it needs.",
		Annotations: readOnlyAnnotations(),
	}, handleListTemplates(gs))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show_template",
		Description: "Show one template's subject and body patterns and its required fields.",
		Annotations: readOnlyAnnotations(),
	}, handleShowTemplate(gs))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "required_fields",
		Description: "List the guest detail fields a template needs before it can be rendered, sorted by name.",
		Annotations: readOnlyAnnotations(),
	}, handleRequiredFields(gs))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_email",
		Description: "Render a template with guest details. Fails listing every missing field if any are absent. guest_email becomes the To address.",
		Annotations: readOnlyAnnotations(),
	}, handleRenderEmail(gs))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_template",
		Description: "Create a new template. Names use lowercase letters, digits and underscores. Placeholders are $field or ${field}.",
		Annotations: writeAnnotations(),
	}, handleAddTemplate(gs))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_template",
		Description: "Replace the subject, the body, or both of an existing template. Omitted parts are kept.",
		Annotations: writeAnnotations(),
	}, handleUpdateTemplate(gs))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_template",
		Description: "Delete a template and its stored file.",
		Annotations: deleteAnnotations(),
	}, handleDeleteTemplate(gs))
}
