package browser

import (
	"context"
	"fmt"

	"github.com/RomanGod6/browserbot/pkg/tools"
)

// LaunchTool starts a browser, replacing any browser already running.
type LaunchTool struct {
	session *Session
}

// NewLaunchTool creates a new launch tool.
func NewLaunchTool(session *Session) *LaunchTool {
	return &LaunchTool{session: session}
}

// Name returns the tool name.
func (t *LaunchTool) Name() string {
	return "launch_browser"
}

// Description returns the tool description.
func (t *LaunchTool) Description() string {
	return "Launch a browser instance for testing. Closes any browser that is already running and clears captured console and network logs."
}

// Schema returns the tool's JSON schema.
func (t *LaunchTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"headless": map[string]interface{}{
				"type":        "boolean",
				"description": "Run browser in headless mode",
				"default":     false,
			},
			"viewport_width": map[string]interface{}{
				"type":        "integer",
				"description": "Viewport width in pixels",
				"default":     DefaultViewportWidth,
			},
			"viewport_height": map[string]interface{}{
				"type":        "integer",
				"description": "Viewport height in pixels",
				"default":     DefaultViewportHeight,
			},
			"user_agent": map[string]interface{}{
				"type":        "string",
				"description": "Custom user agent string",
			},
		},
		nil,
	)
}

// LaunchInput represents the parameters for launching a browser.
type LaunchInput struct {
	Headless       bool   `json:"headless"`
	ViewportWidth  int    `json:"viewport_width"`
	ViewportHeight int    `json:"viewport_height"`
	UserAgent      string `json:"user_agent"`
}

// Execute launches the browser.
func (t *LaunchTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	input := LaunchInput{
		ViewportWidth:  DefaultViewportWidth,
		ViewportHeight: DefaultViewportHeight,
	}
	if err := tools.Bind(args, &input); err != nil {
		return "", err
	}
	opts := LaunchOptions(input)

	if err := t.session.Launch(opts); err != nil {
		return "", err
	}

	mode := "headed"
	if opts.Headless {
		mode = "headless"
	}
	return fmt.Sprintf("Browser launched successfully (%s, viewport %dx%d)", mode, opts.ViewportWidth, opts.ViewportHeight), nil
}

// CloseTool closes the browser and stops the automation runtime.
type CloseTool struct {
	session *Session
}

// NewCloseTool creates a new close tool.
func NewCloseTool(session *Session) *CloseTool {
	return &CloseTool{session: session}
}

// Name returns the tool name.
func (t *CloseTool) Name() string {
	return "close_browser"
}

// Description returns the tool description.
func (t *CloseTool) Description() string {
	return "Close the browser instance. Safe to call when no browser is running."
}

// Schema returns the tool's JSON schema.
func (t *CloseTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute closes the browser.
func (t *CloseTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	if err := t.session.Close(); err != nil {
		return "", tools.NewActionError("Close browser", err)
	}
	return "Browser closed", nil
}
