package mdproc

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_]+`)
)

// Slugify derives an anchor or filename slug from heading or title text:
// lowercased, punctuation stripped, whitespace and underscores collapsed to
// hyphens.
func Slugify(text string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(text), "")
	return strings.Trim(slugCollapse.ReplaceAllString(s, "-"), "-")
}

// InjectHeadingAnchors gives every h1-h6 element an id derived from its text
// and wraps its content in a self-referencing anchor, so rendered headings
// are directly linkable. Operates on rendered HTML, not Markdown.
func InjectHeadingAnchors(htmlContent string) (string, error) {
	nodes, err := parseFragment(htmlContent)
	if err != nil {
		return "", err
	}

	for _, n := range nodes {
		walkHeadings(n)
	}

	return renderNodes(nodes)
}

// parseFragment parses an HTML fragment in body context, avoiding the
// <html><body> wrapper a full document parse would add.
func parseFragment(content string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	return html.ParseFragment(strings.NewReader(content), context)
}

// renderNodes renders fragment nodes back to a string.
func renderNodes(nodes []*html.Node) (string, error) {
	var buf strings.Builder
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func walkHeadings(n *html.Node) {
	if n.Type == html.ElementNode && isHeading(n.Data) {
		anchorHeading(n)
		return // do not descend into the anchor we just built
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkHeadings(c)
	}
}

func isHeading(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// anchorHeading sets the id attribute and moves the heading's children into
// a heading-link anchor pointing at that id.
func anchorHeading(h *html.Node) {
	id := Slugify(textContent(h))
	if id == "" {
		return
	}

	for i, attr := range h.Attr {
		if attr.Key == "id" {
			h.Attr[i].Val = id
			wrapChildren(h, id)
			return
		}
	}
	h.Attr = append(h.Attr, html.Attribute{Key: "id", Val: id})
	wrapChildren(h, id)
}

func wrapChildren(h *html.Node, id string) {
	a := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.A,
		Data:     "a",
		Attr: []html.Attribute{
			{Key: "href", Val: "#" + id},
			{Key: "class", Val: "heading-link"},
		},
	}

	for c := h.FirstChild; c != nil; {
		next := c.NextSibling
		h.RemoveChild(c)
		a.AppendChild(c)
		c = next
	}
	h.AppendChild(a)
}

// textContent concatenates the text nodes under n.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}
