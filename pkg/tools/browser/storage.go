package browser

import (
	"context"

	"github.com/RomanGod6/browserbot/pkg/tools"
)

const (
	localStorageItemScript = `(key) => window.localStorage.getItem(key)`
	localStorageDumpScript = `() => {
  const items = {};
  for (let i = 0; i < window.localStorage.length; i++) {
    const key = window.localStorage.key(i);
    items[key] = window.localStorage.getItem(key);
  }
  return items;
}`
)

// LocalStorageTool reads the page's localStorage.
type LocalStorageTool struct {
	session *Session
}

// NewLocalStorageTool creates a new get_local_storage tool.
func NewLocalStorageTool(session *Session) *LocalStorageTool {
	return &LocalStorageTool{session: session}
}

// Name returns the tool name.
func (t *LocalStorageTool) Name() string {
	return "get_local_storage"
}

// Description returns the tool description.
func (t *LocalStorageTool) Description() string {
	return "Get localStorage data for the current page, either one key or every item."
}

// Schema returns the tool's JSON schema.
func (t *LocalStorageTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"key": map[string]interface{}{
				"type":        "string",
				"description": "Specific key to retrieve (optional)",
			},
		},
		nil,
	)
}

// Execute reads localStorage.
func (t *LocalStorageTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	page, err := t.session.Page()
	if err != nil {
		return "", err
	}

	var input struct {
		Key string `json:"key"`
	}
	if err := tools.Bind(args, &input); err != nil {
		return "", err
	}
	key := input.Key

	if key != "" {
		value, err := page.Evaluate(localStorageItemScript, key)
		if err != nil {
			return "", tools.NewActionError("Local storage read", err)
		}
		return renderJSON(map[string]interface{}{key: value})
	}

	items, err := page.Evaluate(localStorageDumpScript, nil)
	if err != nil {
		return "", tools.NewActionError("Local storage read", err)
	}
	if items == nil {
		items = map[string]interface{}{}
	}
	return renderJSON(items)
}

// CookiesTool lists the browser context's cookies.
type CookiesTool struct {
	session *Session
}

// NewCookiesTool creates a new get_cookies tool.
func NewCookiesTool(session *Session) *CookiesTool {
	return &CookiesTool{session: session}
}

// Name returns the tool name.
func (t *CookiesTool) Name() string {
	return "get_cookies"
}

// Description returns the tool description.
func (t *CookiesTool) Description() string {
	return "Get the browser cookies, optionally only those with a given name."
}

// Schema returns the tool's JSON schema.
func (t *CookiesTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Specific cookie name (optional)",
			},
		},
		nil,
	)
}

// Execute lists cookies.
func (t *CookiesTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	bctx, err := t.session.Context()
	if err != nil {
		return "", err
	}

	var input struct {
		Name string `json:"name"`
	}
	if err := tools.Bind(args, &input); err != nil {
		return "", err
	}
	name := input.Name

	cookies, err := bctx.Cookies()
	if err != nil {
		return "", tools.NewActionError("Cookie retrieval", err)
	}

	filtered := make([]Cookie, 0, len(cookies))
	for _, c := range cookies {
		if name == "" || c.Name == name {
			filtered = append(filtered, c)
		}
	}
	return renderJSON(filtered)
}
