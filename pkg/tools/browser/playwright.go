package browser

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/RomanGod6/browserbot/pkg/config"
	"github.com/RomanGod6/browserbot/pkg/logging"
	"github.com/playwright-community/playwright-go"
)

// PlaywrightDriver implements Driver with playwright-go.
type PlaywrightDriver struct {
	engine         config.Engine
	install        bool
	defaultTimeout float64
	logger         *logging.Logger

	installOnce sync.Once
	installErr  error
}

// NewPlaywrightDriver creates a driver for the configured engine.
func NewPlaywrightDriver(cfg config.BrowserConfig, logger *logging.Logger) *PlaywrightDriver {
	if logger == nil {
		logger = logging.Discard()
	}
	engine := cfg.Engine
	if engine == "" {
		engine = config.EngineChromium
	}
	return &PlaywrightDriver{
		engine:         engine,
		install:        cfg.Install,
		defaultTimeout: cfg.DefaultTimeout,
		logger:         logger,
	}
}

// runOptions routes driver output to the log; stdout carries the protocol stream.
func (d *PlaywrightDriver) runOptions() *playwright.RunOptions {
	return &playwright.RunOptions{
		Browsers: []string{string(d.engine)},
		Verbose:  false,
		Stdout:   d.logger.Writer(),
		Stderr:   d.logger.Writer(),
	}
}

// Install downloads the Playwright driver and the configured engine.
func (d *PlaywrightDriver) Install() error {
	d.logger.Infof("installing playwright driver and %s", d.engine)
	if err := playwright.Install(d.runOptions()); err != nil {
		return fmt.Errorf("failed to install playwright: %w", err)
	}
	return nil
}

// Start runs the Playwright driver, installing it first when configured to.
// The install step runs at most once per process.
func (d *PlaywrightDriver) Start() (Runtime, error) {
	if d.install {
		d.installOnce.Do(func() {
			d.installErr = d.Install()
		})
		if d.installErr != nil {
			return nil, d.installErr
		}
	}

	pw, err := playwright.Run(d.runOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}
	return &pwRuntime{pw: pw, engine: d.engine, defaultTimeout: d.defaultTimeout}, nil
}

type pwRuntime struct {
	pw             *playwright.Playwright
	engine         config.Engine
	defaultTimeout float64
}

func (r *pwRuntime) browserType() playwright.BrowserType {
	switch r.engine {
	case config.EngineFirefox:
		return r.pw.Firefox
	case config.EngineWebKit:
		return r.pw.WebKit
	}
	return r.pw.Chromium
}

func (r *pwRuntime) Launch(opts LaunchOptions) (Browser, error) {
	b, err := r.browserType().Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		return nil, err
	}
	return &pwBrowser{browser: b, defaultTimeout: r.defaultTimeout}, nil
}

func (r *pwRuntime) Stop() error {
	return r.pw.Stop()
}

type pwBrowser struct {
	browser        playwright.Browser
	defaultTimeout float64
}

func (b *pwBrowser) NewContext(opts LaunchOptions) (BrowserContext, error) {
	contextOpts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  opts.ViewportWidth,
			Height: opts.ViewportHeight,
		},
	}
	if opts.UserAgent != "" {
		contextOpts.UserAgent = playwright.String(opts.UserAgent)
	}

	ctx, err := b.browser.NewContext(contextOpts)
	if err != nil {
		return nil, err
	}
	return &pwContext{ctx: ctx, defaultTimeout: b.defaultTimeout}, nil
}

func (b *pwBrowser) Close() error {
	return b.browser.Close()
}

type pwContext struct {
	ctx            playwright.BrowserContext
	defaultTimeout float64
}

func (c *pwContext) NewPage() (Page, error) {
	page, err := c.ctx.NewPage()
	if err != nil {
		return nil, err
	}
	if c.defaultTimeout > 0 {
		page.SetDefaultTimeout(c.defaultTimeout)
	}
	return &pwPage{page: page}, nil
}

// Cookies converts through JSON so the field set follows Playwright's own tags.
func (c *pwContext) Cookies() ([]Cookie, error) {
	raw, err := c.ctx.Cookies()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cookies: %w", err)
	}
	cookies := []Cookie{}
	if err := json.Unmarshal(data, &cookies); err != nil {
		return nil, fmt.Errorf("failed to decode cookies: %w", err)
	}
	return cookies, nil
}

type pwPage struct {
	page playwright.Page
}

func (p *pwPage) Observe(sink LogSink) {
	p.page.OnConsole(func(msg playwright.ConsoleMessage) {
		sink.AppendConsole(ConsoleLogEntry{
			Type: msg.Type(),
			Text: msg.Text(),
		})
	})
	p.page.OnRequest(func(req playwright.Request) {
		sink.AppendRequest(NetworkRequestRecord{
			URL:          req.URL(),
			Method:       req.Method(),
			Headers:      req.Headers(),
			ResourceType: req.ResourceType(),
		})
	})
	p.page.OnResponse(func(res playwright.Response) {
		sink.AppendResponse(NetworkResponseRecord{
			URL:     res.URL(),
			Status:  res.Status(),
			Headers: res.Headers(),
		})
	})
}

func (p *pwPage) Goto(url, waitUntil string) error {
	opts := playwright.PageGotoOptions{}
	if waitUntil != "" {
		state := playwright.WaitUntilState(waitUntil)
		opts.WaitUntil = &state
	}
	_, err := p.page.Goto(url, opts)
	return err
}

func (p *pwPage) Click(selector string, timeout float64) error {
	opts := playwright.PageClickOptions{}
	if timeout > 0 {
		opts.Timeout = playwright.Float(timeout)
	}
	return p.page.Click(selector, opts)
}

func (p *pwPage) Type(selector, text string, delay float64) error {
	return p.page.Type(selector, text, playwright.PageTypeOptions{
		Delay: playwright.Float(delay),
	})
}

func (p *pwPage) Content() (string, error) {
	return p.page.Content()
}

func (p *pwPage) InnerHTML(selector string) (string, error) {
	return p.page.InnerHTML(selector)
}

func (p *pwPage) Screenshot(fullPage bool) ([]byte, error) {
	return p.page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(fullPage),
	})
}

func (p *pwPage) ElementScreenshot(selector string) ([]byte, error) {
	element, err := p.page.QuerySelector(selector)
	if err != nil {
		return nil, fmt.Errorf("selector query failed: %w", err)
	}
	if element == nil {
		return nil, fmt.Errorf("no element found matching selector: %s", selector)
	}
	return element.Screenshot()
}

func (p *pwPage) WaitForSelector(selector, state string, timeout float64) error {
	opts := playwright.PageWaitForSelectorOptions{}
	if state != "" {
		s := playwright.WaitForSelectorState(state)
		opts.State = &s
	}
	if timeout > 0 {
		opts.Timeout = playwright.Float(timeout)
	}
	_, err := p.page.WaitForSelector(selector, opts)
	return err
}

func (p *pwPage) Evaluate(expression string, arg interface{}) (interface{}, error) {
	if arg == nil {
		return p.page.Evaluate(expression)
	}
	return p.page.Evaluate(expression, arg)
}

func (p *pwPage) Fill(selector, value string) error {
	return p.page.Fill(selector, value)
}

func (p *pwPage) Check(selector string) error {
	return p.page.Check(selector)
}

func (p *pwPage) Uncheck(selector string) error {
	return p.page.Uncheck(selector)
}

func (p *pwPage) SelectOption(selector, value string) error {
	values := []string{value}
	_, err := p.page.SelectOption(selector, playwright.SelectOptionValues{Values: &values})
	return err
}

func (p *pwPage) IsVisible(selector string) (bool, error)  { return p.page.IsVisible(selector) }
func (p *pwPage) IsHidden(selector string) (bool, error)   { return p.page.IsHidden(selector) }
func (p *pwPage) IsEnabled(selector string) (bool, error)  { return p.page.IsEnabled(selector) }
func (p *pwPage) IsDisabled(selector string) (bool, error) { return p.page.IsDisabled(selector) }
func (p *pwPage) IsEditable(selector string) (bool, error) { return p.page.IsEditable(selector) }
func (p *pwPage) IsChecked(selector string) (bool, error)  { return p.page.IsChecked(selector) }

func (p *pwPage) URL() string {
	return p.page.URL()
}

func (p *pwPage) Title() (string, error) {
	return p.page.Title()
}
