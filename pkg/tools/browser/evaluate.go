package browser

import (
	"context"

	"github.com/RomanGod6/browserbot/pkg/tools"
)

// EvaluateTool runs JavaScript in the page and returns the result as JSON.
type EvaluateTool struct {
	session *Session
}

// NewEvaluateTool creates a new evaluate tool.
func NewEvaluateTool(session *Session) *EvaluateTool {
	return &EvaluateTool{session: session}
}

// Name returns the tool name.
func (t *EvaluateTool) Name() string {
	return "evaluate_javascript"
}

// Description returns the tool description.
func (t *EvaluateTool) Description() string {
	return `Execute JavaScript in the page context and return the result.

The code may be an expression ("document.title") or a function ("() => window.location.href").
Results must be JSON-serializable. Playwright returns null and undefined
alike, so both are reported as "undefined".`
}

// Schema returns the tool's JSON schema.
func (t *EvaluateTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"code": map[string]interface{}{
				"type":        "string",
				"description": "JavaScript code to execute",
			},
		},
		[]string{"code"},
	)
}

// Execute evaluates the code.
func (t *EvaluateTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	page, err := t.session.Page()
	if err != nil {
		return "", err
	}

	var input struct {
		Code string `json:"code"`
	}
	if err := tools.Bind(args, &input, "code"); err != nil {
		return "", err
	}

	result, err := page.Evaluate(input.Code, nil)
	if err != nil {
		return "", tools.NewActionError("JavaScript evaluation", err)
	}
	// null and undefined both arrive as nil
	if result == nil {
		return "undefined", nil
	}
	return renderJSON(result)
}
