package browser

import (
	"context"
	"fmt"

	"github.com/RomanGod6/browserbot/pkg/tools"
)

// NavigateTool navigates the active page to a URL.
type NavigateTool struct {
	session *Session
	policy  *URLPolicy
}

// NewNavigateTool creates a new navigate tool. A nil policy allows every URL.
func NewNavigateTool(session *Session, policy *URLPolicy) *NavigateTool {
	return &NavigateTool{
		session: session,
		policy:  policy,
	}
}

// Name returns the tool name.
func (t *NavigateTool) Name() string {
	return "navigate_to"
}

// Description returns the tool description.
func (t *NavigateTool) Description() string {
	return "Navigate to a URL and wait for the page to load."
}

// Schema returns the tool's JSON schema.
func (t *NavigateTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"url": map[string]interface{}{
				"type":        "string",
				"description": "URL to navigate to (must include protocol, e.g., https://example.com)",
			},
			"wait_until": map[string]interface{}{
				"type":        "string",
				"description": "When to consider navigation complete",
				"enum":        []string{"load", "domcontentloaded", "networkidle", "commit"},
				"default":     DefaultWaitUntil,
			},
		},
		[]string{"url"},
	)
}

// NavigateInput represents the parameters for navigation.
type NavigateInput struct {
	URL       string `json:"url"`
	WaitUntil string `json:"wait_until"`
}

// Execute navigates to the requested URL.
func (t *NavigateTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	page, err := t.session.Page()
	if err != nil {
		return "", err
	}

	input := NavigateInput{WaitUntil: DefaultWaitUntil}
	if err := tools.Bind(args, &input, "url"); err != nil {
		return "", err
	}
	url := input.URL

	if !t.policy.Allows(url) {
		return "", tools.NewActionError("Navigation", &URLBlockedError{URL: url})
	}

	if err := page.Goto(url, input.WaitUntil); err != nil {
		return "", tools.NewActionError("Navigation", err)
	}

	title, err := page.Title()
	if err != nil {
		title = "Unknown"
	}
	return fmt.Sprintf("Navigated to %s\n\nPage Details:\n- URL: %s\n- Title: %s", url, page.URL(), title), nil
}
