package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// mediaBoilerplate is the caption XenForo renders above embedded media
// players. Its text is platform chrome, not authored content.
const mediaBoilerplate = "Ansehen auf"

// noiseSelector matches subtrees whose text must never count as authored
// content: scripts, tables, quoted blocks and the last-edited marker.
const noiseSelector = "script, table, blockquote, " + lastEditSelector

// Canonicalize strips a message down to its authored content, in place.
// Emoji images become their alt code followed by a literal "." so a trailing
// emoji terminates the sentence; noise subtrees are removed entirely.
// Corrupted emoji images (no alt code) are skipped rather than failing the
// message. Running Canonicalize on an already canonicalized message is a
// no-op.
func Canonicalize(msg *goquery.Selection) {
	msg.Find(emojiSelector).Each(func(_ int, sel *goquery.Selection) {
		alt, ok := sel.Attr("alt")
		if !ok || alt == "" {
			return
		}
		img := sel.Get(0)
		parent := img.Parent
		if parent == nil {
			return
		}
		parent.InsertBefore(&html.Node{Type: html.TextNode, Data: alt}, img)
		parent.InsertBefore(&html.Node{Type: html.TextNode, Data: "."}, img.NextSibling)
		parent.RemoveChild(img)
	})

	msg.Find("p").Each(func(_ int, p *goquery.Selection) {
		if strippedText(p) == mediaBoilerplate {
			p.Remove()
		}
	})

	msg.Find(noiseSelector).Remove()
}
