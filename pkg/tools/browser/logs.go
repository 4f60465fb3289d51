package browser

import (
	"context"

	"github.com/RomanGod6/browserbot/pkg/tools"
)

// ConsoleLogsTool returns console messages captured since the last launch.
// It works without an open browser and then reports the last launch's logs.
type ConsoleLogsTool struct {
	session *Session
}

// NewConsoleLogsTool creates a new get_console_logs tool.
func NewConsoleLogsTool(session *Session) *ConsoleLogsTool {
	return &ConsoleLogsTool{session: session}
}

// Name returns the tool name.
func (t *ConsoleLogsTool) Name() string {
	return "get_console_logs"
}

// Description returns the tool description.
func (t *ConsoleLogsTool) Description() string {
	return "Get browser console logs captured since the browser was launched, optionally filtered by type."
}

// Schema returns the tool's JSON schema.
func (t *ConsoleLogsTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"log_type": map[string]interface{}{
				"type":        "string",
				"description": "Filter by log type",
				"enum":        []string{"all", "log", "info", "warning", "error", "debug"},
				"default":     DefaultLogType,
			},
		},
		nil,
	)
}

// Execute returns the filtered console log.
func (t *ConsoleLogsTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	input := struct {
		LogType string `json:"log_type"`
	}{LogType: DefaultLogType}
	if err := tools.Bind(args, &input); err != nil {
		return "", err
	}

	return renderJSON(FilterConsole(t.session.Logs().Console(), input.LogType))
}

// NetworkRequestsTool returns captured requests paired with their responses.
type NetworkRequestsTool struct {
	session *Session
}

// NewNetworkRequestsTool creates a new get_network_requests tool.
func NewNetworkRequestsTool(session *Session) *NetworkRequestsTool {
	return &NetworkRequestsTool{session: session}
}

// Name returns the tool name.
func (t *NetworkRequestsTool) Name() string {
	return "get_network_requests"
}

// Description returns the tool description.
func (t *NetworkRequestsTool) Description() string {
	return "Get network requests captured since the browser was launched, each paired with its response when one was received."
}

// Schema returns the tool's JSON schema.
func (t *NetworkRequestsTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"method": map[string]interface{}{
				"type":        "string",
				"description": "Filter by HTTP method (exact match, e.g. GET)",
			},
			"url_pattern": map[string]interface{}{
				"type":        "string",
				"description": "Filter by substring of the request URL",
			},
		},
		nil,
	)
}

// Execute returns the filtered network log.
func (t *NetworkRequestsTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	var input struct {
		Method     string `json:"method"`
		URLPattern string `json:"url_pattern"`
	}
	if err := tools.Bind(args, &input); err != nil {
		return "", err
	}

	logs := t.session.Logs()
	return renderJSON(FilterNetwork(logs.Requests(), logs.Responses(), input.Method, input.URLPattern))
}
