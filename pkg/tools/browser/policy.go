package browser

import (
	"fmt"

	"github.com/gobwas/glob"
)

// URLPolicy decides which URLs navigate_to may open. Patterns are globs in
// which '*' matches any run of characters, including '/'.
type URLPolicy struct {
	allowedPatterns []glob.Glob
	deniedPatterns  []glob.Glob
}

// NewURLPolicy compiles the allow and deny lists.
func NewURLPolicy(allowed, denied []string) (*URLPolicy, error) {
	p := &URLPolicy{}

	for _, pattern := range allowed {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid allowed URL pattern '%s': %w", pattern, err)
		}
		p.allowedPatterns = append(p.allowedPatterns, g)
	}

	for _, pattern := range denied {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid denied URL pattern '%s': %w", pattern, err)
		}
		p.deniedPatterns = append(p.deniedPatterns, g)
	}

	return p, nil
}

// Allows reports whether url may be opened. Denied patterns take precedence;
// an empty allow list allows everything not denied. A nil policy allows all.
func (p *URLPolicy) Allows(url string) bool {
	if p == nil {
		return true
	}

	for _, pattern := range p.deniedPatterns {
		if pattern.Match(url) {
			return false
		}
	}

	if len(p.allowedPatterns) == 0 {
		return true
	}

	for _, pattern := range p.allowedPatterns {
		if pattern.Match(url) {
			return true
		}
	}
	return false
}
