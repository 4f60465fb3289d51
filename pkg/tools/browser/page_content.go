package browser

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/RomanGod6/browserbot/pkg/tools"
)

// PageContentTool returns the HTML of the page or of one element.
type PageContentTool struct {
	session *Session
}

// NewPageContentTool creates a new get_page_content tool.
func NewPageContentTool(session *Session) *PageContentTool {
	return &PageContentTool{session: session}
}

// Name returns the tool name.
func (t *PageContentTool) Name() string {
	return "get_page_content"
}

// Description returns the tool description.
func (t *PageContentTool) Description() string {
	return "Get the HTML content of the page or a specific element. Set clean to strip scripts, styles and non-semantic attributes."
}

// Schema returns the tool's JSON schema.
func (t *PageContentTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector of the element to return (optional, defaults to the full page)",
			},
			"clean": map[string]interface{}{
				"type":        "boolean",
				"description": "Strip scripts, styles, comments and non-semantic attributes",
				"default":     false,
			},
			"max_length": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum characters of cleaned output",
				"default":     DefaultMaxLength,
			},
		},
		nil,
	)
}

// PageContentInput represents the parameters for reading page content.
type PageContentInput struct {
	Selector  string `json:"selector"`
	Clean     bool   `json:"clean"`
	MaxLength int    `json:"max_length"`
}

// Execute returns the page content.
func (t *PageContentTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	page, err := t.session.Page()
	if err != nil {
		return "", err
	}

	input := PageContentInput{MaxLength: DefaultMaxLength}
	if err := tools.Bind(args, &input); err != nil {
		return "", err
	}
	selector, maxLength := input.Selector, input.MaxLength

	var content string
	if selector != "" {
		content, err = page.InnerHTML(selector)
	} else {
		content, err = page.Content()
	}
	if err != nil {
		return "", tools.NewActionError("Get content", err)
	}

	if !input.Clean {
		return content, nil
	}

	cleaned, err := CleanHTML(content, maxLength)
	if err != nil {
		return "", tools.NewActionError("Get content", err)
	}
	var out strings.Builder
	if cleaned.Title != "" {
		fmt.Fprintf(&out, "Title: %s\n", cleaned.Title)
	}
	if cleaned.Description != "" {
		fmt.Fprintf(&out, "Description: %s\n", cleaned.Description)
	}
	if out.Len() > 0 {
		out.WriteString("\n")
	}
	out.WriteString(cleaned.HTML)
	if cleaned.Truncated {
		fmt.Fprintf(&out, "\n\n[Content truncated at %d characters]", maxLength)
	}
	return out.String(), nil
}

// ScreenshotTool captures the page or one element as a PNG data URL.
type ScreenshotTool struct {
	session *Session
}

// NewScreenshotTool creates a new take_screenshot tool.
func NewScreenshotTool(session *Session) *ScreenshotTool {
	return &ScreenshotTool{session: session}
}

// Name returns the tool name.
func (t *ScreenshotTool) Name() string {
	return "take_screenshot"
}

// Description returns the tool description.
func (t *ScreenshotTool) Description() string {
	return "Take a screenshot of the page or a specific element. Returns a base64 PNG data URL."
}

// Schema returns the tool's JSON schema.
func (t *ScreenshotTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"full_page": map[string]interface{}{
				"type":        "boolean",
				"description": "Capture the full scrollable page",
				"default":     false,
			},
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector of the element to capture (optional)",
			},
		},
		nil,
	)
}

// Execute captures the screenshot.
func (t *ScreenshotTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	page, err := t.session.Page()
	if err != nil {
		return "", err
	}

	var input struct {
		FullPage bool   `json:"full_page"`
		Selector string `json:"selector"`
	}
	if err := tools.Bind(args, &input); err != nil {
		return "", err
	}
	fullPage, selector := input.FullPage, input.Selector

	var png []byte
	if selector != "" {
		png, err = page.ElementScreenshot(selector)
	} else {
		png, err = page.Screenshot(fullPage)
	}
	if err != nil {
		return "", tools.NewActionError("Screenshot", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
