package browser

// LogSink receives observations from the automation layer. Implementations
// must be safe for concurrent use: events arrive on library goroutines.
type LogSink interface {
	AppendConsole(entry ConsoleLogEntry)
	AppendRequest(record NetworkRequestRecord)
	AppendResponse(record NetworkResponseRecord)
}

// Driver starts the automation runtime.
type Driver interface {
	Start() (Runtime, error)
}

// Runtime is a running automation runtime able to launch browsers.
type Runtime interface {
	Launch(opts LaunchOptions) (Browser, error)
	Stop() error
}

// Browser is a launched browser process.
type Browser interface {
	NewContext(opts LaunchOptions) (BrowserContext, error)
	Close() error
}

// BrowserContext is an isolated browsing context inside a Browser.
type BrowserContext interface {
	NewPage() (Page, error)
	Cookies() ([]Cookie, error)
}

// Page is the set of page operations the tools need. Timeouts are in
// milliseconds; zero means the page default.
type Page interface {
	// Observe subscribes sink to console, request and response events.
	Observe(sink LogSink)

	Goto(url, waitUntil string) error
	Click(selector string, timeout float64) error
	Type(selector, text string, delay float64) error
	Content() (string, error)
	InnerHTML(selector string) (string, error)
	Screenshot(fullPage bool) ([]byte, error)
	ElementScreenshot(selector string) ([]byte, error)
	WaitForSelector(selector, state string, timeout float64) error
	Evaluate(expression string, arg interface{}) (interface{}, error)

	Fill(selector, value string) error
	Check(selector string) error
	Uncheck(selector string) error
	SelectOption(selector, value string) error

	IsVisible(selector string) (bool, error)
	IsHidden(selector string) (bool, error)
	IsEnabled(selector string) (bool, error)
	IsDisabled(selector string) (bool, error)
	IsEditable(selector string) (bool, error)
	IsChecked(selector string) (bool, error)

	URL() string
	Title() (string, error)
}
