// Package tools defines the contract shared by every remotely invokable tool:
// a name, a description, a JSON schema for its arguments and an Execute method
// that produces a text result.
package tools

import "context"

// Tool represents a capability a remote caller can invoke by name.
//
// Example call as it arrives on the wire (arguments already decoded):
//
//	{"name": "navigate_to", "arguments": {"url": "https://example.com"}}
type Tool interface {
	// Name returns the unique identifier for this tool (e.g., "navigate_to")
	Name() string

	// Description returns a human-readable description of what this tool does
	Description() string

	// Schema returns the JSON schema for this tool's input parameters
	Schema() map[string]interface{}

	// Execute runs the tool with the decoded arguments and returns a result string.
	// Errors are returned as values; callers decide how to render them.
	Execute(ctx context.Context, args Arguments) (string, error)
}

// Descriptor is the static, serializable description of a tool as it is
// advertised on a listing request.
type Descriptor struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Describe builds the Descriptor for a tool.
func Describe(t Tool) Descriptor {
	return Descriptor{
		Name:        t.Name(),
		Description: t.Description(),
		InputSchema: t.Schema(),
	}
}

// BaseToolSchema creates a common JSON schema structure for a tool
// with the given properties and required fields
func BaseToolSchema(properties map[string]interface{}, required []string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// RequiredFields returns the "required" list of a schema built with BaseToolSchema.
func RequiredFields(schema map[string]interface{}) []string {
	required, ok := schema["required"].([]string)
	if !ok {
		return nil
	}
	return required
}
