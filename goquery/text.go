package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ContentText extracts the text of a canonicalized content node. Each text
// node is trimmed individually before concatenation, so whitespace between
// markup nodes never survives into the extracted content.
func ContentText(content *goquery.Selection) string {
	return strippedText(content)
}

func strippedText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		writeStrippedText(&b, node)
	}
	return b.String()
}

func writeStrippedText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(strings.TrimSpace(n.Data))
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeStrippedText(b, c)
	}
}
