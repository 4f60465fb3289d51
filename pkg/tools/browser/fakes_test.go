package browser

import (
	"fmt"
	"sync"
	"testing"

	"github.com/RomanGod6/browserbot/pkg/logging"
	"github.com/stretchr/testify/require"
)

// fakeDriver builds a fresh runtime, browser, context and page on every
// Start. Error fields make the matching step fail.
type fakeDriver struct {
	startErr   error
	launchErr  error
	contextErr error
	pageErr    error
	closeErr   error
	cookieErr  error
	cookies    []Cookie

	runtimes []*fakeRuntime
}

func (d *fakeDriver) Start() (Runtime, error) {
	if d.startErr != nil {
		return nil, d.startErr
	}
	rt := &fakeRuntime{driver: d}
	d.runtimes = append(d.runtimes, rt)
	return rt, nil
}

func (d *fakeDriver) lastRuntime() *fakeRuntime {
	if len(d.runtimes) == 0 {
		return nil
	}
	return d.runtimes[len(d.runtimes)-1]
}

type fakeRuntime struct {
	driver  *fakeDriver
	opts    LaunchOptions
	browser *fakeBrowser
	stopped int
}

func (r *fakeRuntime) Launch(opts LaunchOptions) (Browser, error) {
	if r.driver.launchErr != nil {
		return nil, r.driver.launchErr
	}
	r.opts = opts
	r.browser = &fakeBrowser{driver: r.driver}
	return r.browser, nil
}

func (r *fakeRuntime) Stop() error {
	r.stopped++
	return nil
}

type fakeBrowser struct {
	driver  *fakeDriver
	context *fakeContext
	closed  int
}

func (b *fakeBrowser) NewContext(opts LaunchOptions) (BrowserContext, error) {
	if b.driver.contextErr != nil {
		return nil, b.driver.contextErr
	}
	b.context = &fakeContext{driver: b.driver}
	return b.context, nil
}

func (b *fakeBrowser) Close() error {
	b.closed++
	return b.driver.closeErr
}

type fakeContext struct {
	driver *fakeDriver
	page   *fakePage
}

func (c *fakeContext) NewPage() (Page, error) {
	if c.driver.pageErr != nil {
		return nil, c.driver.pageErr
	}
	c.page = newFakePage()
	return c.page, nil
}

func (c *fakeContext) Cookies() ([]Cookie, error) {
	return c.driver.cookies, c.driver.cookieErr
}

// fakePage records every action as a string and fails the methods named in failOn.
type fakePage struct {
	mu     sync.Mutex
	calls  []string
	failOn map[string]error
	sink   LogSink

	content    string
	innerHTML  map[string]string
	png        []byte
	elementPNG map[string][]byte
	states     map[string]map[string]bool
	evaluate   func(expression string, arg interface{}) (interface{}, error)
	url        string
	title      string
}

func newFakePage() *fakePage {
	return &fakePage{
		failOn:     map[string]error{},
		innerHTML:  map[string]string{},
		elementPNG: map[string][]byte{},
		states:     map[string]map[string]bool{},
		url:        "about:blank",
	}
}

func (p *fakePage) record(method, format string, args ...interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, fmt.Sprintf(format, args...))
	return p.failOn[method]
}

func (p *fakePage) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

func (p *fakePage) Observe(sink LogSink) {
	p.sink = sink
}

func (p *fakePage) Goto(url, waitUntil string) error {
	if err := p.record("Goto", "goto %s %s", url, waitUntil); err != nil {
		return err
	}
	p.url = url
	return nil
}

func (p *fakePage) Click(selector string, timeout float64) error {
	return p.record("Click", "click %s %.0f", selector, timeout)
}

func (p *fakePage) Type(selector, text string, delay float64) error {
	return p.record("Type", "type %s %q %.0f", selector, text, delay)
}

func (p *fakePage) Content() (string, error) {
	return p.content, p.record("Content", "content")
}

func (p *fakePage) InnerHTML(selector string) (string, error) {
	return p.innerHTML[selector], p.record("InnerHTML", "inner %s", selector)
}

func (p *fakePage) Screenshot(fullPage bool) ([]byte, error) {
	return p.png, p.record("Screenshot", "screenshot %t", fullPage)
}

func (p *fakePage) ElementScreenshot(selector string) ([]byte, error) {
	if err := p.record("ElementScreenshot", "element-screenshot %s", selector); err != nil {
		return nil, err
	}
	png, ok := p.elementPNG[selector]
	if !ok {
		return nil, fmt.Errorf("no element found matching selector: %s", selector)
	}
	return png, nil
}

func (p *fakePage) WaitForSelector(selector, state string, timeout float64) error {
	return p.record("WaitForSelector", "wait %s %s %.0f", selector, state, timeout)
}

func (p *fakePage) Evaluate(expression string, arg interface{}) (interface{}, error) {
	if err := p.record("Evaluate", "evaluate %v", arg); err != nil {
		return nil, err
	}
	if p.evaluate == nil {
		return nil, nil
	}
	return p.evaluate(expression, arg)
}

func (p *fakePage) Fill(selector, value string) error {
	return p.record("Fill", "fill %s %s", selector, value)
}

func (p *fakePage) Check(selector string) error {
	return p.record("Check", "check %s", selector)
}

func (p *fakePage) Uncheck(selector string) error {
	return p.record("Uncheck", "uncheck %s", selector)
}

func (p *fakePage) SelectOption(selector, value string) error {
	return p.record("SelectOption", "select %s %s", selector, value)
}

func (p *fakePage) state(name, selector string) (bool, error) {
	if err := p.record("Is", "is-%s %s", name, selector); err != nil {
		return false, err
	}
	return p.states[selector][name], nil
}

func (p *fakePage) IsVisible(selector string) (bool, error)  { return p.state("visible", selector) }
func (p *fakePage) IsHidden(selector string) (bool, error)   { return p.state("hidden", selector) }
func (p *fakePage) IsEnabled(selector string) (bool, error)  { return p.state("enabled", selector) }
func (p *fakePage) IsDisabled(selector string) (bool, error) { return p.state("disabled", selector) }
func (p *fakePage) IsEditable(selector string) (bool, error) { return p.state("editable", selector) }
func (p *fakePage) IsChecked(selector string) (bool, error)  { return p.state("checked", selector) }

func (p *fakePage) URL() string {
	return p.url
}

func (p *fakePage) Title() (string, error) {
	if err := p.failOn["Title"]; err != nil {
		return "", err
	}
	return p.title, nil
}

// launchedSession returns an Open session backed by a fakeDriver.
func launchedSession(t *testing.T) (*Session, *fakeDriver, *fakePage) {
	t.Helper()
	driver := &fakeDriver{}
	session := NewSession(driver, logging.Discard())
	require.NoError(t, session.Launch(LaunchOptions{Headless: true, ViewportWidth: 1280, ViewportHeight: 720}))
	return session, driver, driver.lastRuntime().browser.context.page
}
