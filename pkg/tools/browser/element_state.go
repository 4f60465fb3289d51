package browser

import (
	"context"

	"github.com/RomanGod6/browserbot/pkg/tools"
)

var defaultStateChecks = []string{"visible", "enabled"}

// stateQueries maps each recognized check name to its page query.
var stateQueries = map[string]func(Page, string) (bool, error){
	"visible":  Page.IsVisible,
	"hidden":   Page.IsHidden,
	"enabled":  Page.IsEnabled,
	"disabled": Page.IsDisabled,
	"editable": Page.IsEditable,
	"checked":  Page.IsChecked,
}

// ElementStateTool reports boolean states of an element.
type ElementStateTool struct {
	session *Session
}

// NewElementStateTool creates a new check_element_state tool.
func NewElementStateTool(session *Session) *ElementStateTool {
	return &ElementStateTool{session: session}
}

// Name returns the tool name.
func (t *ElementStateTool) Name() string {
	return "check_element_state"
}

// Description returns the tool description.
func (t *ElementStateTool) Description() string {
	return "Check the state of an element: visible, hidden, enabled, disabled, editable or checked."
}

// Schema returns the tool's JSON schema.
func (t *ElementStateTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector for the element",
			},
			"checks": map[string]interface{}{
				"type":        "array",
				"description": "States to check (defaults to visible and enabled)",
				"items": map[string]interface{}{
					"type": "string",
					"enum": []string{"visible", "hidden", "enabled", "disabled", "editable", "checked"},
				},
			},
		},
		[]string{"selector"},
	)
}

// Execute runs the requested checks. Unknown check names are skipped.
func (t *ElementStateTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	page, err := t.session.Page()
	if err != nil {
		return "", err
	}

	var input struct {
		Selector string   `json:"selector"`
		Checks   []string `json:"checks"`
	}
	if err := tools.Bind(args, &input, "selector"); err != nil {
		return "", err
	}
	selector, checks := input.Selector, input.Checks
	if len(checks) == 0 {
		checks = defaultStateChecks
	}

	result := map[string]interface{}{"selector": selector}
	for _, check := range checks {
		query, ok := stateQueries[check]
		if !ok {
			continue
		}
		state, err := query(page, selector)
		if err != nil {
			return "", tools.NewActionError("Element state check", err)
		}
		result[check] = state
	}
	return renderJSON(result)
}
