package browser

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/RomanGod6/browserbot/pkg/logging"
)

// Session owns the single browser a browserbot process drives. It is either
// Closed (no handles) or Open (runtime, browser, context and page all set).
//
// Handles are guarded by mu. Captured logs live in a LogBook that is replaced
// on every launch, so late events from a previous page never reach the new one.
type Session struct {
	driver Driver
	logger *logging.Logger
	now    func() time.Time

	mu      sync.Mutex
	runtime Runtime
	browser Browser
	context BrowserContext
	page    Page
	logs    *LogBook
}

// NewSession creates a Closed session that launches browsers through driver.
func NewSession(driver Driver, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Session{
		driver: driver,
		logger: logger,
		now:    time.Now,
		logs:   NewLogBook(time.Now),
	}
}

// Launch closes any open browser, then starts a new browser, context and page
// and subscribes the page to a fresh LogBook. On failure the session stays
// Closed and whatever was opened is released.
func (s *Session) Launch(opts LaunchOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.browser != nil || s.runtime != nil {
		if err := s.closeLocked(); err != nil {
			s.logger.Warnf("failed to close previous browser before relaunch: %v", err)
		}
	}
	s.logs = NewLogBook(s.now)

	runtime, err := s.driver.Start()
	if err != nil {
		return newLaunchError(err)
	}

	browser, err := runtime.Launch(opts)
	if err != nil {
		s.release(runtime, nil)
		return newLaunchError(err)
	}

	bctx, err := browser.NewContext(opts)
	if err != nil {
		s.release(runtime, browser)
		return newLaunchError(fmt.Errorf("failed to create context: %w", err))
	}

	page, err := bctx.NewPage()
	if err != nil {
		s.release(runtime, browser)
		return newLaunchError(fmt.Errorf("failed to create page: %w", err))
	}

	page.Observe(s.logs)

	s.runtime = runtime
	s.browser = browser
	s.context = bctx
	s.page = page

	s.logger.Infof("browser launched (headless=%t, viewport=%dx%d)", opts.Headless, opts.ViewportWidth, opts.ViewportHeight)
	return nil
}

// release tears down a partially launched browser.
func (s *Session) release(runtime Runtime, browser Browser) {
	if browser != nil {
		if err := browser.Close(); err != nil {
			s.logger.Warnf("failed to close browser after failed launch: %v", err)
		}
	}
	if err := runtime.Stop(); err != nil {
		s.logger.Warnf("failed to stop runtime after failed launch: %v", err)
	}
}

// Close releases the browser and runtime. Handles are cleared even when
// closing fails, so the session is always Closed afterwards. Closing a
// Closed session is a no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeLocked()
}

func (s *Session) closeLocked() error {
	var errs []error
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
		}
	}
	if s.runtime != nil {
		if err := s.runtime.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
		}
	}

	wasOpen := s.browser != nil
	s.runtime = nil
	s.browser = nil
	s.context = nil
	s.page = nil

	if wasOpen {
		s.logger.Infof("browser closed")
	}
	return errors.Join(errs...)
}

// IsOpen reports whether a browser is currently launched.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page != nil
}

// Page returns the active page or ErrBrowserNotLaunched.
func (s *Session) Page() (Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.page == nil {
		return nil, ErrBrowserNotLaunched
	}
	return s.page, nil
}

// Context returns the active browser context or ErrBrowserNotLaunched.
func (s *Session) Context() (BrowserContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.context == nil {
		return nil, ErrBrowserNotLaunched
	}
	return s.context, nil
}

// Logs returns the LogBook of the current (or most recent) launch.
func (s *Session) Logs() *LogBook {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logs
}
