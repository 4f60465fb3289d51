// Package browser provides the browser automation tools served by browserbot.
//
// The package is built around three pieces:
//
// 1. Session: owns at most one live browser, its context and page, plus the
// console and network logs captured from that page
// 2. Tools: one tools.Tool per remotely invokable operation, each bound to a Session
// 3. Dispatcher: looks tools up by name and renders every outcome as text
//
// # Session Lifecycle
//
// A Session starts Closed. launch_browser moves it to Open, closing any
// previous browser first and resetting the captured logs. close_browser moves
// it back to Closed. Every tool that touches the page fails with
// ErrBrowserNotLaunched while the Session is Closed.
//
// # Driver
//
// Tools talk to the browser through the Driver, Browser, BrowserContext and
// Page interfaces. PlaywrightDriver implements them with playwright-go;
// tests substitute an in-memory fake.
//
// # Example Usage
//
//	session := browser.NewSession(browser.NewPlaywrightDriver(cfg.Browser, logger), logger)
//	policy, err := browser.NewURLPolicy(cfg.Navigation.AllowedURLs, cfg.Navigation.DeniedURLs)
//	dispatcher := browser.NewDispatcher(browser.NewTools(session, policy), logger)
//
//	text := dispatcher.CallTool(ctx, "launch_browser", map[string]interface{}{"headless": true})
//	text = dispatcher.CallTool(ctx, "navigate_to", map[string]interface{}{"url": "https://example.com"})
package browser
