package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/guestmail/internal/render"
	"github.com/gorewood/guestmail/internal/templates"
)

// --- Shared types ---

// TemplateSummary is a template as listed.
type TemplateSummary struct {
	Name    string   `json:"name"    jsonschema:"template name"`
	Subject string   `json:"subject" jsonschema:"subject pattern"`
	Fields  []string `json:"fields"  jsonschema:"required guest detail fields, sorted"`
}

// NameInput selects a template by name.
type NameInput struct {
	Name string `json:"name" jsonschema:"template name, e.g. booking_confirmation"`
}

// NameOutput reports the template a write tool acted on.
type NameOutput struct {
	Name string `json:"name" jsonschema:"template name"`
}

// --- list_templates ---

// ListInput is the input for the list_templates tool (no parameters needed).
type ListInput struct{}

// ListOutput is the output for the list_templates tool.
type ListOutput struct {
	Count     int               `json:"count"     jsonschema:"number of templates"`
	Templates []TemplateSummary `json:"templates" jsonschema:"templates in insertion order"`
}

func handleListTemplates(gs *guardedStore) mcp.ToolHandlerFor[ListInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, ListOutput, error) {
		gs.mu.Lock()
		defer gs.mu.Unlock()

		names := gs.store.Names()
		out := ListOutput{Count: len(names), Templates: make([]TemplateSummary, 0, len(names))}
		for _, name := range names {
			tmpl, err := gs.store.Get(name)
			if err != nil {
				return nil, ListOutput{}, err
			}
			out.Templates = append(out.Templates, TemplateSummary{
				Name:    tmpl.Name,
				Subject: tmpl.Subject,
				Fields:  nonNil(render.RequiredFields(tmpl)),
			})
		}
		return nil, out, nil
	}
}

// --- show_template ---

// ShowOutput is the output for the show_template tool.
type ShowOutput struct {
	Name    string   `json:"name"    jsonschema:"template name"`
	Subject string   `json:"subject" jsonschema:"subject pattern"`
	Body    string   `json:"body"    jsonschema:"body pattern"`
	Fields  []string `json:"fields"  jsonschema:"required guest detail fields, sorted"`
}

func handleShowTemplate(gs *guardedStore) mcp.ToolHandlerFor[NameInput, ShowOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input NameInput) (*mcp.CallToolResult, ShowOutput, error) {
		gs.mu.Lock()
		defer gs.mu.Unlock()

		tmpl, err := gs.store.Get(input.Name)
		if err != nil {
			return nil, ShowOutput{}, err
		}
		return nil, ShowOutput{
			Name:    tmpl.Name,
			Subject: tmpl.Subject,
			Body:    tmpl.Body,
			Fields:  nonNil(render.RequiredFields(tmpl)),
		}, nil
	}
}

// --- required_fields ---

// FieldsOutput is the output for the required_fields tool.
type FieldsOutput struct {
	Name   string   `json:"name"   jsonschema:"template name"`
	Fields []string `json:"fields" jsonschema:"required guest detail fields, sorted"`
}

func handleRequiredFields(gs *guardedStore) mcp.ToolHandlerFor[NameInput, FieldsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input NameInput) (*mcp.CallToolResult, FieldsOutput, error) {
		gs.mu.Lock()
		defer gs.mu.Unlock()

		tmpl, err := gs.store.Get(input.Name)
		if err != nil {
			return nil, FieldsOutput{}, err
		}
		return nil, FieldsOutput{Name: tmpl.Name, Fields: nonNil(render.RequiredFields(tmpl))}, nil
	}
}

// --- render_email ---

// RenderInput is the input for the render_email tool.
type RenderInput struct {
	Name   string            `json:"name"   jsonschema:"template name"`
	Values map[string]string `json:"values" jsonschema:"guest details keyed by field name; guest_email sets the recipient"`
}

// RenderOutput is the output for the render_email tool.
type RenderOutput struct {
	To      string `json:"to"      jsonschema:"recipient address, empty when guest_email was not given"`
	Subject string `json:"subject" jsonschema:"rendered subject"`
	Body    string `json:"body"    jsonschema:"rendered body"`
}

func handleRenderEmail(gs *guardedStore) mcp.ToolHandlerFor[RenderInput, RenderOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		gs.mu.Lock()
		tmpl, err := gs.store.Get(input.Name)
		gs.mu.Unlock()
		if err != nil {
			return nil, RenderOutput{}, err
		}

		email, err := render.Render(tmpl, input.Values)
		if err != nil {
			return nil, RenderOutput{}, err
		}
		return nil, RenderOutput(email), nil
	}
}

// --- add_template ---

// AddInput is the input for the add_template tool.
type AddInput struct {
	Name    string `json:"name"    jsonschema:"new template name: lowercase letters, digits, underscores"`
	Subject string `json:"subject" jsonschema:"subject pattern"`
	Body    string `json:"body"    jsonschema:"body pattern"`
}

func handleAddTemplate(gs *guardedStore) mcp.ToolHandlerFor[AddInput, NameOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input AddInput) (*mcp.CallToolResult, NameOutput, error) {
		gs.mu.Lock()
		defer gs.mu.Unlock()

		name, err := gs.store.Add(input.Name, input.Subject, input.Body)
		if err != nil {
			return nil, NameOutput{}, err
		}
		gs.logger.Info().Str("tool", "add_template").Str("template", name).Msg("tool call")
		return nil, NameOutput{Name: name}, nil
	}
}

// --- update_template ---

// UpdateInput is the input for the update_template tool.
type UpdateInput struct {
	Name    string  `json:"name"              jsonschema:"template name"`
	Subject *string `json:"subject,omitempty" jsonschema:"new subject pattern; omit to keep the current one"`
	Body    *string `json:"body,omitempty"    jsonschema:"new body pattern; omit to keep the current one"`
}

func handleUpdateTemplate(gs *guardedStore) mcp.ToolHandlerFor[UpdateInput, NameOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input UpdateInput) (*mcp.CallToolResult, NameOutput, error) {
		patch := templates.Patch{Subject: input.Subject, Body: input.Body}
		if patch.IsEmpty() {
			return nil, NameOutput{}, errors.New("provide subject, body, or both")
		}

		gs.mu.Lock()
		defer gs.mu.Unlock()

		name, err := gs.store.Update(input.Name, patch)
		if err != nil {
			return nil, NameOutput{}, err
		}
		gs.logger.Info().Str("tool", "update_template").Str("template", name).Msg("tool call")
		return nil, NameOutput{Name: name}, nil
	}
}

// --- delete_template ---

func handleDeleteTemplate(gs *guardedStore) mcp.ToolHandlerFor[NameInput, NameOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input NameInput) (*mcp.CallToolResult, NameOutput, error) {
		gs.mu.Lock()
		defer gs.mu.Unlock()

		name, err := gs.store.Delete(input.Name)
		if err != nil {
			return nil, NameOutput{}, err
		}
		gs.logger.Info().Str("tool", "delete_template").Str("template", name).Msg("tool call")
		return nil, NameOutput{Name: name}, nil
	}
}

// nonNil keeps empty field lists encoding as [] rather than null.
func nonNil(fields []string) []string {
	if fields == nil {
		return []string{}
	}
	return fields
}
