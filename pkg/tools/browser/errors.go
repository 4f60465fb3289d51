package browser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBrowserNotLaunched is returned by page-dependent tools while no browser is open.
var ErrBrowserNotLaunched = errors.New("browser not launched")

// LaunchFailure classifies why a launch failed.
type LaunchFailure int

const (
	// LaunchFailureOther covers every failure not recognized below
	LaunchFailureOther LaunchFailure = iota
	// LaunchFailureMissingBrowser means the driver or engine binaries are not installed
	LaunchFailureMissingBrowser
	// LaunchFailureMissingDependencies means the host lacks shared libraries the engine needs
	LaunchFailureMissingDependencies
)

// LaunchError reports a failed launch_browser call.
type LaunchError struct {
	Kind LaunchFailure
	Err  error
}

// newLaunchError classifies err by the messages Playwright produces.
func newLaunchError(err error) *LaunchError {
	msg := err.Error()
	kind := LaunchFailureOther
	switch {
	case strings.Contains(msg, "Executable doesn't exist"),
		strings.Contains(msg, "please install the driver"):
		kind = LaunchFailureMissingBrowser
	case strings.Contains(msg, "missing dependencies"),
		strings.Contains(msg, "Host system is missing"):
		kind = LaunchFailureMissingDependencies
	}
	return &LaunchError{Kind: kind, Err: err}
}

func (e *LaunchError) Error() string {
	switch e.Kind {
	case LaunchFailureMissingBrowser:
		return "Error: Playwright browsers not installed. Run: browserbot -install"
	case LaunchFailureMissingDependencies:
		return "Error: System dependencies missing. Please run: sudo playwright install-deps"
	}
	return fmt.Sprintf("Error launching browser: %v", e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// URLBlockedError is returned when the navigation policy rejects a URL.
type URLBlockedError struct {
	URL string
}

func (e *URLBlockedError) Error() string {
	return "URL blocked by policy: " + e.URL
}
