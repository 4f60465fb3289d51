// Package mcpserver exposes a tool dispatcher as a Model Context Protocol
// server speaking newline-delimited JSON-RPC over a reader/writer pair.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/RomanGod6/browserbot/pkg/logging"
	"github.com/RomanGod6/browserbot/pkg/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server identity advertised during the initialize handshake
const (
	DefaultName    = "browser-testing"
	DefaultVersion = "1.0.0"
)

// Dispatcher is the tool surface served over MCP.
type Dispatcher interface {
	ListTools() []tools.Descriptor
	Has(name string) bool
	CallTool(ctx context.Context, name string, args map[string]interface{}) string
}

// Options configures a Server.
type Options struct {
	Name    string
	Version string
	Logger  *logging.Logger
}

// Server wraps an mcp-go MCPServer around a Dispatcher.
type Server struct {
	mcp        *server.MCPServer
	dispatcher Dispatcher
	logger     *logging.Logger
}

// New registers every tool of dispatcher with a new MCP server.
func New(dispatcher Dispatcher, opts Options) (*Server, error) {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	descriptors := dispatcher.ListTools()
	order := make(map[string]int, len(descriptors))
	for i, desc := range descriptors {
		order[desc.Name] = i
	}

	s := &Server{
		dispatcher: dispatcher,
		logger:     opts.Logger,
	}
	s.mcp = server.NewMCPServer(
		opts.Name,
		opts.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolFilter(catalogOrder(order)),
	)

	for _, desc := range descriptors {
		schema, err := json.Marshal(desc.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("failed to encode schema for tool %s: %w", desc.Name, err)
		}
		s.mcp.AddTool(mcp.NewToolWithRawSchema(desc.Name, desc.Description, schema), s.handler(desc.Name))
	}

	s.logger.Infof("registered %d tools for %s %s", len(descriptors), opts.Name, opts.Version)
	return s, nil
}

// handler adapts Dispatcher.CallTool to an mcp-go tool handler. Every outcome,
// failures included, is a text result.
func (s *Server) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(s.dispatcher.CallTool(ctx, name, req.GetArguments())), nil
	}
}

// catalogOrder restores the dispatcher's order on tools/list; mcp-go sorts by name.
func catalogOrder(order map[string]int) server.ToolFilterFunc {
	return func(ctx context.Context, list []mcp.Tool) []mcp.Tool {
		sorted := make([]mcp.Tool, len(order))
		var extra []mcp.Tool
		filled := make([]bool, len(order))
		for _, tool := range list {
			i, ok := order[tool.Name]
			if !ok {
				extra = append(extra, tool)
				continue
			}
			sorted[i] = tool
			filled[i] = true
		}

		out := make([]mcp.Tool, 0, len(list))
		for i, tool := range sorted {
			if filled[i] {
				out = append(out, tool)
			}
		}
		return append(out, extra...)
	}
}
