// Package extract turns raw HTML into a title and a plain-text body suitable
// for scoring. Parsing stays behind the Extractor interface so the ranker
// never depends on a specific markup library.
package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Document is the extracted view of a fetched page. Text keeps paragraph
// boundaries as newlines so downstream snippet selection can split on them.
type Document struct {
	Title string
	Text  string
}

// skipTags are containers whose text never belongs to the readable body.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"nav":      true,
	"footer":   true,
	"aside":    true,
	"iframe":   true,
}

// FromHTML parses raw markup and extracts the page title and main text.
// The body prefers a <main> region, then <article>, then <body>; the title
// comes from <head><title>. Malformed input degrades to an empty Document
// rather than an error.
func FromHTML(raw []byte) Document {
	root, err := html.Parse(bytes.NewReader(raw))
	if err != nil || root == nil {
		return Document{}
	}

	region := firstElement(root, "main")
	if region == nil {
		region = firstElement(root, "article")
	}
	if region == nil {
		region = firstElement(root, "body")
	}
	if region == nil {
		region = root
	}

	var b strings.Builder
	appendText(&b, region)

	return Document{
		Title: strings.TrimSpace(titleOf(root)),
		Text:  tidy(b.String()),
	}
}

func titleOf(root *html.Node) string {
	head := firstElement(root, "head")
	if head == nil {
		return ""
	}
	t := firstElement(head, "title")
	if t == nil || t.FirstChild == nil {
		return ""
	}
	return t.FirstChild.Data
}

// firstElement returns the first element named tag in document order.
func firstElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// appendText walks the subtree and writes its visible text, inserting
// newlines at block boundaries so paragraphs stay separable.
func appendText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		name := strings.ToLower(n.Data)
		if skipTags[name] {
			return
		}
		switch name {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr",
			"div", "section", "blockquote", "pre", "br", "hr":
			b.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(b, c)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr",
			"div", "section", "blockquote", "pre":
			b.WriteString("\n")
		}
	}
}

// tidy collapses whitespace runs within lines and drops repeated blank lines.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		out = append(out, strings.Join(fields, " "))
	}
	return strings.Join(out, "\n")
}
