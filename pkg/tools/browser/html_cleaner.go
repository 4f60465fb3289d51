package browser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// CleanedHTML is the output of CleanHTML.
type CleanedHTML struct {
	HTML        string
	Title       string
	Description string
	Truncated   bool
}

// CleanHTML parses rawHTML and re-serializes the semantic parts of it: noise
// elements (scripts, styles, embeds) and comments are dropped, and only
// attributes useful for targeting elements are kept. Output stops once
// maxLength characters of text and markup have been written.
func CleanHTML(rawHTML string, maxLength int) (*CleanedHTML, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	c := &htmlCleaner{budget: maxLength}
	c.walk(doc, 0)

	return &CleanedHTML{
		HTML:        c.out.String(),
		Title:       findTitle(doc),
		Description: findMetaDescription(doc),
		Truncated:   c.truncated,
	}, nil
}

// htmlCleaner carries the output buffer and the remaining character budget.
type htmlCleaner struct {
	out       strings.Builder
	budget    int
	truncated bool
}

func (c *htmlCleaner) spend(n int) {
	c.budget -= n
	if c.budget <= 0 {
		c.truncated = true
	}
}

func (c *htmlCleaner) walk(n *html.Node, depth int) {
	if c.truncated {
		return
	}

	switch n.Type {
	case html.CommentNode, html.DoctypeNode:
		return
	case html.TextNode:
		c.text(n.Data)
	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		if droppedElements[tag] {
			return
		}
		c.element(n, tag, depth)
	default:
		c.children(n, depth)
	}
}

func (c *htmlCleaner) children(n *html.Node, depth int) {
	for child := n.FirstChild; child != nil && !c.truncated; child = child.NextSibling {
		c.walk(child, depth)
	}
}

func (c *htmlCleaner) text(data string) {
	text := strings.Join(strings.Fields(data), " ")
	if text == "" {
		return
	}
	n := utf8.RuneCountInString(text)
	if n > c.budget {
		c.out.WriteString(truncateRunes(text, c.budget))
		c.out.WriteString("...")
		c.spend(c.budget)
		return
	}
	c.out.WriteString(text)
	c.spend(n)
}

// truncateRunes returns the first n characters of s.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func (c *htmlCleaner) element(n *html.Node, tag string, depth int) {
	block := blockElements[tag]
	if block && depth > 0 {
		c.newline(depth)
	}

	c.out.WriteString("<" + tag)
	for _, attr := range n.Attr {
		key := strings.ToLower(attr.Key)
		if keepAttribute(tag, key) {
			fmt.Fprintf(&c.out, ` %s="%s"`, key, html.EscapeString(attr.Val))
		}
	}
	c.out.WriteString(">")
	c.spend(len(tag) + 2)

	c.children(n, depth+1)

	if voidElements[tag] {
		return
	}
	if block {
		c.newline(depth)
	}
	c.out.WriteString("</" + tag + ">")
	if !c.truncated {
		c.spend(len(tag) + 3)
	}
}

func (c *htmlCleaner) newline(depth int) {
	c.out.WriteString("\n")
	c.out.WriteString(strings.Repeat("  ", depth))
}

var droppedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"iframe":   true,
	"embed":    true,
	"object":   true,
	"svg":      true,
	"canvas":   true,
}

var blockElements = map[string]bool{
	"html": true, "head": true, "body": true,
	"div": true, "p": true, "section": true, "article": true,
	"header": true, "footer": true, "nav": true, "main": true, "aside": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true, "dl": true,
	"table": true, "thead": true, "tbody": true, "tr": true, "td": true, "th": true,
	"form": true, "fieldset": true, "blockquote": true, "pre": true, "dialog": true,
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

var globalAttributes = map[string]bool{
	"id":               true,
	"class":            true,
	"name":             true,
	"role":             true,
	"title":            true,
	"aria-label":       true,
	"aria-describedby": true,
	"aria-hidden":      true,
}

// tagAttributes lists per-element attributes worth keeping for selectors and forms.
var tagAttributes = map[string][]string{
	"a":        {"href", "target"},
	"img":      {"src", "alt"},
	"input":    {"type", "placeholder", "value", "checked", "disabled", "required"},
	"textarea": {"placeholder", "disabled", "required"},
	"select":   {"multiple", "disabled", "required"},
	"option":   {"value", "selected"},
	"button":   {"type", "disabled"},
	"form":     {"action", "method"},
	"label":    {"for"},
}

func keepAttribute(tag, key string) bool {
	if globalAttributes[key] || strings.HasPrefix(key, "data-") {
		return true
	}
	for _, allowed := range tagAttributes[tag] {
		if key == allowed {
			return true
		}
	}
	return false
}

// findFirst returns the first element in document order satisfying match.
func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findFirst(child, match); found != nil {
			return found
		}
	}
	return nil
}

func attribute(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val, true
		}
	}
	return "", false
}

func findTitle(doc *html.Node) string {
	title := findFirst(doc, func(n *html.Node) bool { return n.Data == "title" })
	if title == nil || title.FirstChild == nil || title.FirstChild.Type != html.TextNode {
		return ""
	}
	return strings.TrimSpace(title.FirstChild.Data)
}

func findMetaDescription(doc *html.Node) string {
	meta := findFirst(doc, func(n *html.Node) bool {
		if n.Data != "meta" {
			return false
		}
		name, _ := attribute(n, "name")
		content, _ := attribute(n, "content")
		return strings.EqualFold(name, "description") && content != ""
	})
	if meta == nil {
		return ""
	}
	content, _ := attribute(meta, "content")
	return strings.TrimSpace(content)
}
