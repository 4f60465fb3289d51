package mcpserver

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/RomanGod6/browserbot/pkg/tools/browser"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reply struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type toolResult struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// newClosedServer serves the real browser catalog over a session that never launches.
func newClosedServer(t *testing.T) *Server {
	t.Helper()
	session := browser.NewSession(nil, nil)
	dispatcher := browser.NewDispatcher(browser.NewTools(session, nil), nil)
	s, err := New(dispatcher, Options{})
	require.NoError(t, err)
	return s
}

func serveLines(t *testing.T, s *Server, lines ...string) []reply {
	t.Helper()
	var out bytes.Buffer
	input := strings.Join(lines, "\n") + "\n"
	require.NoError(t, s.Serve(context.Background(), strings.NewReader(input), &out))

	var replies []reply
	scanner := bufio.NewScanner(&out)
	scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)
	for scanner.Scan() {
		var r reply
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r), scanner.Text())
		replies = append(replies, r)
	}
	return replies
}

func callText(t *testing.T, r reply) string {
	t.Helper()
	require.Nil(t, r.Error)
	var result toolResult
	require.NoError(t, json.Unmarshal(r.Result, &result))
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	return result.Content[0].Text
}

const initializeRequest = `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test-client","version":"0.0.1"}}}`

func TestServe_Initialize(t *testing.T) {
	replies := serveLines(t, newClosedServer(t),
		initializeRequest,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
	)
	require.Len(t, replies, 1, "notifications get no reply")

	assert.Equal(t, "2.0", replies[0].JSONRPC)
	assert.JSONEq(t, "1", string(replies[0].ID))
	require.Nil(t, replies[0].Error)

	var result struct {
		ProtocolVersion string                     `json:"protocolVersion"`
		Capabilities    map[string]json.RawMessage `json:"capabilities"`
		ServerInfo      struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"serverInfo"`
	}
	require.NoError(t, json.Unmarshal(replies[0].Result, &result))
	assert.NotEmpty(t, result.ProtocolVersion)
	assert.Contains(t, result.Capabilities, "tools")
	assert.Equal(t, "browser-testing", result.ServerInfo.Name)
	assert.Equal(t, "1.0.0", result.ServerInfo.Version)
}

func TestServe_ToolsListKeepsCatalogOrder(t *testing.T) {
	s := newClosedServer(t)
	replies := serveLines(t, s,
		initializeRequest,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
	)
	require.Len(t, replies, 2)

	var result struct {
		Tools []struct {
			Name        string                 `json:"name"`
			Description string                 `json:"description"`
			InputSchema map[string]interface{} `json:"inputSchema"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(replies[1].Result, &result))

	want := s.dispatcher.ListTools()
	require.Len(t, result.Tools, len(want))
	for i, tool := range result.Tools {
		assert.Equal(t, want[i].Name, tool.Name)
		assert.Equal(t, want[i].Description, tool.Description)
		assert.Equal(t, "object", tool.InputSchema["type"])
	}
	assert.Equal(t, "launch_browser", result.Tools[0].Name)
	assert.Equal(t, "get_page_metrics", result.Tools[len(result.Tools)-1].Name)
}

func TestServe_ToolsCall(t *testing.T) {
	replies := serveLines(t, newClosedServer(t),
		initializeRequest,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"navigate_to","arguments":{"url":"https://example.com"}}}`,
		`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"get_console_logs","arguments":{}}}`,
		`{"jsonrpc":"2.0","id":"five","method":"tools/call","params":{"name":"close_browser"}}`,
	)
	require.Len(t, replies, 4)

	assert.JSONEq(t, "3", string(replies[1].ID))
	assert.Equal(t, "Browser not launched. Call launch_browser first.", callText(t, replies[1]))
	assert.Equal(t, "[]", callText(t, replies[2]))
	assert.JSONEq(t, `"five"`, string(replies[3].ID))
	assert.Equal(t, "Browser closed", callText(t, replies[3]))
}

func TestServe_UnknownToolIsTextResult(t *testing.T) {
	replies := serveLines(t, newClosedServer(t),
		`{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"format_disk","arguments":{}}}`,
	)
	require.Len(t, replies, 1)

	assert.JSONEq(t, "7", string(replies[0].ID))
	assert.Equal(t, "Unknown tool: format_disk", callText(t, replies[0]))
}

func TestServe_SkipsBlankLines(t *testing.T) {
	replies := serveLines(t, newClosedServer(t),
		"",
		"   ",
		`{"jsonrpc":"2.0","id":1,"method":"ping"}`,
		"",
	)
	require.Len(t, replies, 1)
	assert.JSONEq(t, "1", string(replies[0].ID))
	assert.Nil(t, replies[0].Error)
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	s := newClosedServer(t)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Serve(ctx, pr, io.Discard)
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestCatalogOrder(t *testing.T) {
	filter := catalogOrder(map[string]int{"b": 0, "a": 1})
	tools := filter(context.Background(), toolsNamed("a", "b", "z"))

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"b", "a", "z"}, names)
}

func toolsNamed(names ...string) []mcp.Tool {
	out := make([]mcp.Tool, 0, len(names))
	for _, name := range names {
		out = append(out, mcp.NewTool(name))
	}
	return out
}
