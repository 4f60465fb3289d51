package browser

// LaunchOptions configures a new browser, its context and page.
type LaunchOptions struct {
	// Headless controls whether the browser runs without a visible window
	Headless bool

	// ViewportWidth and ViewportHeight set the context viewport in pixels
	ViewportWidth  int
	ViewportHeight int

	// UserAgent overrides the context user agent when non-empty
	UserAgent string
}

// ConsoleLogEntry is one console message captured from the page.
type ConsoleLogEntry struct {
	Type      string `json:"type"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// NetworkRequestRecord is one outgoing request captured from the page.
type NetworkRequestRecord struct {
	URL          string            `json:"url"`
	Method       string            `json:"method"`
	Headers      map[string]string `json:"headers"`
	ResourceType string            `json:"resource_type"`
	Timestamp    string            `json:"timestamp"`
}

// NetworkResponseRecord is one incoming response captured from the page.
type NetworkResponseRecord struct {
	URL       string            `json:"url"`
	Status    int               `json:"status"`
	Headers   map[string]string `json:"headers"`
	Timestamp string            `json:"timestamp"`
}

// NetworkRequestView is a request paired with its response, if one was seen.
type NetworkRequestView struct {
	NetworkRequestRecord
	Response *NetworkResponseRecord `json:"response"`
}

// Cookie mirrors a browser context cookie.
type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain"`
	Path     string  `json:"path"`
	Expires  float64 `json:"expires"`
	HttpOnly bool    `json:"httpOnly"`
	Secure   bool    `json:"secure"`
	SameSite string  `json:"sameSite,omitempty"`
}

// Field types accepted by fill_form
const (
	FieldTypeText     = "text"
	FieldTypeCheckbox = "checkbox"
	FieldTypeRadio    = "radio"
	FieldTypeSelect   = "select"
)

// Default values for tool arguments
const (
	DefaultTimeout        = 30000.0 // 30 seconds in milliseconds
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
	DefaultWaitUntil      = "networkidle"
	DefaultWaitState      = "visible"
	DefaultLogType        = "all"
	DefaultMaxLength      = 100000
)
