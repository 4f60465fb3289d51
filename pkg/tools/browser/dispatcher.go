package browser

import (
	"context"
	"errors"
	"fmt"

	"github.com/RomanGod6/browserbot/pkg/logging"
	"github.com/RomanGod6/browserbot/pkg/tools"
)

// NotLaunchedMessage is returned by page tools while no browser is open.
const NotLaunchedMessage = "Browser not launched. Call launch_browser first."

// Dispatcher routes tool calls by name and renders every outcome as text.
// Failures never escape as errors: callers inspect the text.
type Dispatcher struct {
	tools  []tools.Tool
	byName map[string]tools.Tool
	logger *logging.Logger
}

// NewDispatcher creates a dispatcher over toolset, keeping its order.
func NewDispatcher(toolset []tools.Tool, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Discard()
	}
	byName := make(map[string]tools.Tool, len(toolset))
	for _, t := range toolset {
		byName[t.Name()] = t
	}
	return &Dispatcher{
		tools:  toolset,
		byName: byName,
		logger: logger,
	}
}

// ListTools returns the catalog descriptors in catalog order.
func (d *Dispatcher) ListTools() []tools.Descriptor {
	out := make([]tools.Descriptor, 0, len(d.tools))
	for _, t := range d.tools {
		out = append(out, tools.Describe(t))
	}
	return out
}

// Has reports whether name is in the catalog.
func (d *Dispatcher) Has(name string) bool {
	_, ok := d.byName[name]
	return ok
}

// CallTool runs the named tool and returns its text result.
func (d *Dispatcher) CallTool(ctx context.Context, name string, args map[string]interface{}) (text string) {
	tool, ok := d.byName[name]
	if !ok {
		d.logger.Warnf("unknown tool requested: %s", name)
		return fmt.Sprintf("Unknown tool: %s", name)
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Errorf("tool %s panicked: %v", name, r)
			text = fmt.Sprintf("Error: %v", r)
		}
	}()

	if args == nil {
		args = map[string]interface{}{}
	}

	d.logger.Debugf("calling tool %s", name)
	result, err := tool.Execute(ctx, tools.Arguments(args))
	if err != nil {
		d.logger.Warnf("tool %s failed: %v", name, err)
		return RenderError(err)
	}
	return result
}

// RenderError converts a tool error to its user-facing text.
func RenderError(err error) string {
	if errors.Is(err, ErrBrowserNotLaunched) {
		return NotLaunchedMessage
	}

	var launchErr *LaunchError
	if errors.As(err, &launchErr) {
		return launchErr.Error()
	}

	var actionErr *tools.ActionError
	if errors.As(err, &actionErr) {
		return actionErr.Error()
	}

	return fmt.Sprintf("Error: %v", err)
}
