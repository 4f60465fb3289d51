package browser

import (
	"context"

	"github.com/RomanGod6/browserbot/pkg/tools"
)

// pageMetricsScript collects navigation timing, paint timing, resource and
// DOM counts and, where the engine exposes performance.memory, JS heap usage.
const pageMetricsScript = `() => {
  const nav = performance.getEntriesByType('navigation')[0];
  const paints = {};
  performance.getEntriesByType('paint').forEach((p) => { paints[p.name] = p.startTime; });
  const memory = performance.memory;
  return {
    url: window.location.href,
    title: document.title,
    domContentLoaded: nav ? nav.domContentLoadedEventEnd - nav.startTime : null,
    loadComplete: nav ? nav.loadEventEnd - nav.startTime : null,
    firstPaint: paints['first-paint'] ?? null,
    firstContentfulPaint: paints['first-contentful-paint'] ?? null,
    resourceCount: performance.getEntriesByType('resource').length,
    domNodes: document.getElementsByTagName('*').length,
    jsHeapUsed: memory ? memory.usedJSHeapSize : null,
    jsHeapTotal: memory ? memory.totalJSHeapSize : null,
  };
}`

// MetricsTool reports page performance metrics.
type MetricsTool struct {
	session *Session
}

// NewMetricsTool creates a new get_page_metrics tool.
func NewMetricsTool(session *Session) *MetricsTool {
	return &MetricsTool{session: session}
}

// Name returns the tool name.
func (t *MetricsTool) Name() string {
	return "get_page_metrics"
}

// Description returns the tool description.
func (t *MetricsTool) Description() string {
	return "Get performance metrics for the current page: load timing, paint timing, resource count and JS heap usage."
}

// Schema returns the tool's JSON schema.
func (t *MetricsTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute collects the metrics.
func (t *MetricsTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	page, err := t.session.Page()
	if err != nil {
		return "", err
	}

	metrics, err := page.Evaluate(pageMetricsScript, nil)
	if err != nil {
		return "", tools.NewActionError("Metrics collection", err)
	}
	return renderJSON(metrics)
}
