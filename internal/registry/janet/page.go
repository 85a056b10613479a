package janet

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// page is one HTML page of the registry.
type page struct {
	url *url.URL
	doc *html.Node
}

func parsePage(u *url.URL, body io.Reader) (*page, error) {
	doc, err := html.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", u.Redacted(), err)
	}
	return &page{url: u, doc: doc}, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// findAll lists the elements under root, in document order, that satisfy pred.
func findAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

func findFirst(root *html.Node, pred func(*html.Node) bool) *html.Node {
	if all := findAll(root, pred); len(all) > 0 {
		return all[0]
	}
	return nil
}

func isTag(a atom.Atom) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.DataAtom == a }
}

// children lists the element children of n with the tag.
func children(n *html.Node, a atom.Atom) []*html.Node {
	var found []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			found = append(found, c)
		}
	}
	return found
}

func ancestor(n *html.Node, a atom.Atom) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.DataAtom == a {
			return p
		}
	}
	return nil
}

// rawText concatenates all text under n.
func rawText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// text gives the visible text under n. Line breaks become newlines, and
// runs of spaces within a line are collapsed. Blank lines are dropped.
func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && (n.DataAtom == atom.Br || n.DataAtom == atom.P || n.DataAtom == atom.Div):
			b.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func (p *page) byID(id string) *html.Node {
	return findFirst(p.doc, func(n *html.Node) bool { return attr(n, "id") == id })
}

func (p *page) exists(id string) bool { return p.byID(id) != nil }

func (p *page) textOf(id string) (string, bool) {
	n := p.byID(id)
	if n == nil {
		return "", false
	}
	return text(n), true
}

func (p *page) title() string {
	if n := findFirst(p.doc, isTag(atom.Title)); n != nil {
		return text(n)
	}
	return ""
}

// heading gives the first h1, which names the page better than the title.
func (p *page) heading() string {
	if n := findFirst(p.doc, isTag(atom.H1)); n != nil {
		return text(n)
	}
	return p.title()
}

type option struct {
	text     string
	value    string
	selected bool
}

func optionValue(n *html.Node) string {
	if hasAttr(n, "value") {
		return attr(n, "value")
	}
	return text(n)
}

// options lists the options of the select element with the id.
func (p *page) options(id string) []option {
	sel := p.byID(id)
	if sel == nil {
		return nil
	}
	var opts []option
	for _, n := range findAll(sel, isTag(atom.Option)) {
		opts = append(opts, option{text: text(n), value: optionValue(n), selected: hasAttr(n, "selected")})
	}
	return opts
}

// selected gives the text of the selected option, or of the first option.
func (p *page) selected(id string) (string, bool) {
	opts := p.options(id)
	if len(opts) == 0 {
		return "", false
	}
	for _, o := range opts {
		if o.selected {
			return o.text, true
		}
	}
	return opts[0].text, true
}
