package browser

import (
	"context"
	"fmt"

	"github.com/RomanGod6/browserbot/pkg/tools"
)

// ClickTool clicks an element on the active page.
type ClickTool struct {
	session *Session
}

// NewClickTool creates a new click tool.
func NewClickTool(session *Session) *ClickTool {
	return &ClickTool{session: session}
}

// Name returns the tool name.
func (t *ClickTool) Name() string {
	return "click_element"
}

// Description returns the tool description.
func (t *ClickTool) Description() string {
	return "Click an element on the page using a CSS selector."
}

// Schema returns the tool's JSON schema.
func (t *ClickTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector for the element to click",
			},
			"timeout": map[string]interface{}{
				"type":        "number",
				"description": "Timeout in milliseconds",
				"default":     DefaultTimeout,
			},
		},
		[]string{"selector"},
	)
}

// ClickInput represents the parameters for clicking.
type ClickInput struct {
	Selector string  `json:"selector"`
	Timeout  float64 `json:"timeout"`
}

// Execute clicks the element.
func (t *ClickTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	page, err := t.session.Page()
	if err != nil {
		return "", err
	}

	input := ClickInput{Timeout: DefaultTimeout}
	if err := tools.Bind(args, &input, "selector"); err != nil {
		return "", err
	}

	if err := page.Click(input.Selector, input.Timeout); err != nil {
		return "", tools.NewActionError("Click", err)
	}
	return fmt.Sprintf("Clicked element: %s", input.Selector), nil
}

// TypeTextTool types text into an element with optional per-key delay.
type TypeTextTool struct {
	session *Session
}

// NewTypeTextTool creates a new type_text tool.
func NewTypeTextTool(session *Session) *TypeTextTool {
	return &TypeTextTool{session: session}
}

// Name returns the tool name.
func (t *TypeTextTool) Name() string {
	return "type_text"
}

// Description returns the tool description.
func (t *TypeTextTool) Description() string {
	return "Type text into an input field, one key at a time."
}

// Schema returns the tool's JSON schema.
func (t *TypeTextTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector for the input field",
			},
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Text to type",
			},
			"delay": map[string]interface{}{
				"type":        "number",
				"description": "Delay between keystrokes in milliseconds",
				"default":     0,
			},
		},
		[]string{"selector", "text"},
	)
}

// TypeTextInput represents the parameters for typing.
type TypeTextInput struct {
	Selector string  `json:"selector"`
	Text     string  `json:"text"`
	Delay    float64 `json:"delay"`
}

// Execute types the text.
func (t *TypeTextTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	page, err := t.session.Page()
	if err != nil {
		return "", err
	}

	var input TypeTextInput
	if err := tools.Bind(args, &input, "selector", "text"); err != nil {
		return "", err
	}

	if err := page.Type(input.Selector, input.Text, input.Delay); err != nil {
		return "", tools.NewActionError("Type text", err)
	}
	return fmt.Sprintf("Typed text into: %s", input.Selector), nil
}
