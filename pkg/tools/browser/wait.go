package browser

import (
	"context"
	"fmt"

	"github.com/RomanGod6/browserbot/pkg/tools"
)

// WaitTool waits for an element to reach a state.
type WaitTool struct {
	session *Session
}

// NewWaitTool creates a new wait_for_selector tool.
func NewWaitTool(session *Session) *WaitTool {
	return &WaitTool{session: session}
}

// Name returns the tool name.
func (t *WaitTool) Name() string {
	return "wait_for_selector"
}

// Description returns the tool description.
func (t *WaitTool) Description() string {
	return "Wait for an element matching a CSS selector to reach a state: attached, detached, visible or hidden."
}

// Schema returns the tool's JSON schema.
func (t *WaitTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector to wait for",
			},
			"state": map[string]interface{}{
				"type":        "string",
				"description": "State to wait for",
				"enum":        []string{"attached", "detached", "visible", "hidden"},
				"default":     DefaultWaitState,
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

// WaitInput represents the parameters for waiting on a selector.
type WaitInput struct {
	Selector string  `json:"selector"`
	State    string  `json:"state"`
	Timeout  float64 `json:"timeout"`
}

// Execute waits for the selector.
func (t *WaitTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	page, err := t.session.Page()
	if err != nil {
		return "", err
	}

	input := WaitInput{State: DefaultWaitState, Timeout: DefaultTimeout}
	if err := tools.Bind(args, &input, "selector"); err != nil {
		return "", err
	}

	if err := page.WaitForSelector(input.Selector, input.State, input.Timeout); err != nil {
		return "", tools.NewActionError("Wait", err)
	}
	return fmt.Sprintf("Element %s is now %s", input.Selector, input.State), nil
}
