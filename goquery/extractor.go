// Package goquery implements message extraction from archived XenForo pages
// using CSS selectors over the parsed markup tree.
package goquery

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/forumstats"
)

// Selector contracts for the XenForo markup this extractor understands.
const (
	messageSelector   = "article.message"
	contentSelector   = "div.message-content"
	reactionsSelector = "a.reactionsBar-link"
	quoteSelector     = "blockquote.bbCodeBlock--quote"
	spoilerSelector   = "div.bbCodeSpoiler"
	mentionSelector   = "a.username"
	emojiSelector     = "img.smilie"
	lastEditSelector  = "div.message-lastEdit"
	timeSelector      = "time.u-dt"
)

var digitRun = regexp.MustCompile(`\d+`)

// Ensure Extractor implements forumstats.PageExtractor.
var _ forumstats.PageExtractor = (*Extractor)(nil)

// Extractor extracts message records from archived forum pages.
type Extractor struct {
	datetimes forumstats.DatetimeParser
	rules     *forumstats.ComplianceChecker
}

// NewExtractor creates a new Extractor.
func NewExtractor(datetimes forumstats.DatetimeParser, rules *forumstats.ComplianceChecker) *Extractor {
	return &Extractor{datetimes: datetimes, rules: rules}
}

// ExtractPage parses one archived page and extracts every message on it.
// Messages with missing required markup are reported as failures next to
// their successfully extracted siblings.
func (e *Extractor) ExtractPage(html string, pageNum int) (*forumstats.PageExtraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, forumstats.Errorf(forumstats.EINVALID, "failed to parse HTML: %v", err)
	}

	extraction := &forumstats.PageExtraction{}
	FindMessages(doc).Each(func(i int, msg *goquery.Selection) {
		record, err := e.extractMessage(msg, pageNum)
		if err != nil {
			postNum, _ := PostNum(msg)
			extraction.Failures = append(extraction.Failures, forumstats.MessageFailure{
				Index:   i,
				PostNum: postNum,
				Err:     err,
			})
			return
		}
		extraction.Messages = append(extraction.Messages, record)
	})
	return extraction, nil
}

// extractMessage runs the per-message pipeline. The order is a correctness
// invariant: every value that needs the pristine tree is read first, the
// like count second because it removes liker names, then the tree is
// canonicalized and only then are content and word count taken from it.
func (e *Extractor) extractMessage(msg *goquery.Selection, pageNum int) (*forumstats.Message, error) {
	postNum, err := PostNum(msg)
	if err != nil {
		return nil, err
	}
	author, err := Author(msg)
	if err != nil {
		return nil, err
	}
	content, err := MessageContent(msg)
	if err != nil {
		return nil, err
	}
	createdAt, err := CreationTime(msg, e.datetimes)
	if err != nil {
		return nil, err
	}

	edited := Edited(msg)
	quoteCount := QuoteCount(msg)
	quoted := QuotedAuthors(msg)
	spoilers := SpoilerCount(msg)
	mentioned := MentionedUsers(msg)
	emoji := EmojiFrequency(msg)
	likes := LikeCount(msg) // removes liker names

	Canonicalize(msg)

	text := ContentText(content)
	result := e.rules.Check(text)

	var emojiCount int
	for _, n := range emoji {
		emojiCount += n
	}

	return &forumstats.Message{
		PostNum:          postNum,
		PageNum:          pageNum,
		Author:           author,
		CreatedAt:        createdAt,
		Content:          text,
		LikeCount:        likes,
		QuoteCount:       quoteCount,
		QuotedAuthors:    quoted,
		SpoilerCount:     spoilers,
		MentionCount:     len(mentioned),
		MentionedUsers:   mentioned,
		WordCount:        forumstats.WordCount(text),
		EmojiCount:       emojiCount,
		EmojiFrequency:   emoji,
		Edited:           edited,
		RulesCompliant:   result.Compliant(),
		RulebreakReasons: result.Violations(),
	}, nil
}

// FindMessages returns all message nodes on a page, in document order.
func FindMessages(doc *goquery.Document) *goquery.Selection {
	return doc.Find(messageSelector)
}

// MessageContent returns the message's content node.
// Returns ESTRUCTURE if the message has no content node.
func MessageContent(msg *goquery.Selection) (*goquery.Selection, error) {
	content := msg.Find(contentSelector).First()
	if content.Length() == 0 {
		return nil, forumstats.Errorf(forumstats.ESTRUCTURE, "message has no content element")
	}
	return content, nil
}

// PostNum derives the post number from the fourth entry of the message's
// metadata list: the leading marker character is stripped and digit group
// separators removed.
func PostNum(msg *goquery.Selection) (int, error) {
	items := msg.Find("li")
	if items.Length() < 4 {
		return 0, forumstats.Errorf(forumstats.ESTRUCTURE, "message metadata list has %d items, expected at least 4", items.Length())
	}
	text := strippedText(items.Eq(3))
	if text == "" {
		return 0, forumstats.Errorf(forumstats.ESTRUCTURE, "post number item is empty")
	}
	_, size := utf8.DecodeRuneInString(text)
	text = strings.ReplaceAll(text[size:], ".", "")
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, forumstats.Errorf(forumstats.ESTRUCTURE, "post number %q is not numeric", text)
	}
	return n, nil
}

// Author returns the message's author identifier.
// Returns ESTRUCTURE if the author attribute is missing.
func Author(msg *goquery.Selection) (string, error) {
	author, ok := msg.Attr("data-author")
	if !ok {
		return "", forumstats.Errorf(forumstats.ESTRUCTURE, "message has no data-author attribute")
	}
	return author, nil
}

// CreationTime reads the message's machine-readable creation time and hands
// it to the datetime parser.
// Returns ESTRUCTURE if the time marker is missing.
func CreationTime(msg *goquery.Selection, datetimes forumstats.DatetimeParser) (time.Time, error) {
	value, ok := msg.Find(timeSelector).First().Attr("datetime")
	if !ok {
		return time.Time{}, forumstats.Errorf(forumstats.ESTRUCTURE, "message has no time marker")
	}
	return datetimes.Parse(value)
}

// Edited reports whether the message carries an edit marker.
func Edited(msg *goquery.Selection) bool {
	return msg.Find(lastEditSelector).Length() > 0
}

// QuoteCount returns the number of quote blocks in the message.
func QuoteCount(msg *goquery.Selection) int {
	return msg.Find(quoteSelector).Length()
}

// QuotedAuthors returns the quoted author of every quote block, in document
// order. Duplicates are preserved.
func QuotedAuthors(msg *goquery.Selection) []string {
	var authors []string
	msg.Find(quoteSelector).Each(func(_ int, quote *goquery.Selection) {
		if author, ok := quote.Attr("data-quote"); ok {
			authors = append(authors, author)
		}
	})
	return authors
}

// SpoilerCount returns the number of spoiler blocks in the message.
func SpoilerCount(msg *goquery.Selection) int {
	return msg.Find(spoilerSelector).Length()
}

// MentionedUsers returns the users mentioned in the message, in document
// order and without the leading marker character. The username style class
// is shared with ordinary profile links; only mention anchors start with
// "@".
func MentionedUsers(msg *goquery.Selection) []string {
	var usernames []string
	msg.Find(mentionSelector).Each(func(_ int, anchor *goquery.Selection) {
		name := strippedText(anchor)
		if strings.HasPrefix(name, "@") {
			usernames = append(usernames, name[1:])
		}
	})
	return usernames
}

// EmojiFrequency maps every emoji alt code in the message to the number of
// times it occurs. Must run before Canonicalize, which destroys the emoji
// image nodes. Images without an alt code are skipped.
func EmojiFrequency(msg *goquery.Selection) map[string]int {
	freq := make(map[string]int)
	msg.Find(emojiSelector).Each(func(_ int, img *goquery.Selection) {
		alt, ok := img.Attr("alt")
		if !ok || alt == "" {
			return
		}
		freq[alt]++
	})
	return freq
}

// LikeCount reads the reactions bar. The widget names up to two likers
// outright and switches to "name, name, name und N andere" once more than
// three exist, so below three liker names the count is just the number of
// names. Beyond that the liker names are removed before the remainder is
// parsed for the additional-likers number: usernames may contain digits.
// LikeCount therefore mutates the message.
func LikeCount(msg *goquery.Selection) int {
	bar := msg.Find(reactionsSelector)
	if bar.Length() == 0 {
		return 0
	}

	names := bar.Find("bdi")
	numLikes := names.Length()
	if numLikes < 3 {
		return numLikes
	}

	names.Remove()
	digits := digitRun.FindString(strippedText(bar))
	if digits == "" {
		// Exactly three likers, no "und N andere" suffix.
		return numLikes
	}
	additional, err := strconv.Atoi(digits)
	if err != nil {
		return numLikes
	}
	return additional + numLikes
}
