package browser

import (
	"github.com/RomanGod6/browserbot/pkg/tools"
)

// NewTools creates every browser tool bound to session, in catalog order.
// The order is the order advertised to clients.
func NewTools(session *Session, policy *URLPolicy) []tools.Tool {
	return []tools.Tool{
		NewLaunchTool(session),
		NewNavigateTool(session, policy),
		NewClickTool(session),
		NewTypeTextTool(session),
		NewPageContentTool(session),
		NewScreenshotTool(session),
		NewConsoleLogsTool(session),
		NewNetworkRequestsTool(session),
		NewWaitTool(session),
		NewEvaluateTool(session),
		NewLocalStorageTool(session),
		NewCookiesTool(session),
		NewFillFormTool(session),
		NewElementStateTool(session),
		NewCloseTool(session),
		NewMetricsTool(session),
	}
}
