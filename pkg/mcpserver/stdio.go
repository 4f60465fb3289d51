package mcpserver

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
)

// maxMessageSize bounds a single JSON-RPC line; screenshots travel as base64.
const maxMessageSize = 32 * 1024 * 1024

// toolCallHeader is the subset of a request inspected before it reaches mcp-go.
type toolCallHeader struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
	Params struct {
		Name string `json:"name"`
	} `json:"params"`
}

// textResponse is a JSON-RPC success reply carrying a tool result.
type textResponse struct {
	JSONRPC string              `json:"jsonrpc"`
	ID      json.RawMessage     `json:"id"`
	Result  *mcp.CallToolResult `json:"result"`
}

// Serve reads one JSON-RPC message per line from r and writes one reply per
// line to w. It returns nil on EOF or when ctx is cancelled.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)

	lines := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	s.logger.Infof("serving MCP over stdio")
	for {
		select {
		case <-ctx.Done():
			s.logger.Infof("stopping: %v", ctx.Err())
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("failed to read message: %w", err)
			}
			s.logger.Infof("input closed")
			return nil
		case line := <-lines:
			if err := s.handleLine(ctx, line, w); err != nil {
				return err
			}
		}
	}
}

func (s *Server) handleLine(ctx context.Context, line []byte, w io.Writer) error {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil
	}

	if reply, ok := s.unknownToolReply(ctx, line); ok {
		return writeMessage(w, reply)
	}

	reply := s.mcp.HandleMessage(ctx, json.RawMessage(line))
	if reply == nil {
		return nil
	}
	return writeMessage(w, reply)
}

// unknownToolReply answers tools/call for names outside the catalog with a
// text result. mcp-go would otherwise reply with a protocol error.
func (s *Server) unknownToolReply(ctx context.Context, line []byte) (*textResponse, bool) {
	var call toolCallHeader
	if err := json.Unmarshal(line, &call); err != nil {
		return nil, false
	}
	if call.Method != string(mcp.MethodToolsCall) || len(call.ID) == 0 || s.dispatcher.Has(call.Params.Name) {
		return nil, false
	}

	text := s.dispatcher.CallTool(ctx, call.Params.Name, nil)
	return &textResponse{
		JSONRPC: mcp.JSONRPC_VERSION,
		ID:      call.ID,
		Result:  mcp.NewToolResultText(text),
	}, true
}

func writeMessage(w io.Writer, msg interface{}) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
