package forumstats

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule names reported in Message.RulebreakReasons.
const (
	RuleWordCount   = "word_count"
	RuleFirstLetter = "first_letter"
	RulePunctuation = "punctuation"
)

// Punctuation is the reference set of sentence and clause punctuation. It is
// used both as the word tokenization delimiter set and as the set of
// acceptable terminal characters. Beyond ASCII it covers German and French
// quotation marks, em/en dashes, the ellipsis and the CJK wide comma.
const Punctuation = ".?!\"„“‚‘»«‹›,;:'’–—‐-·/()[]<>{}…☞‽¡¿⸘、"

// ExtendedWhitespace lists code points that behave like whitespace in forum
// content but survive strings.TrimSpace: the soft hyphen, combining grapheme
// joiner, directional marks, Hangul and Khmer filler characters, zero-width
// spaces and joiners, legacy space variants, deprecated formatting marks,
// the BOM and the emoji variation selector U+FE0F.
const ExtendedWhitespace = "\u00ad\u034f\u061c\u115f\u1160\u17b4\u17b5\u180e" +
	"\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007\u2008\u2009\u200a" +
	"\u200b\u200c\u200d\u200e\u200f \u205f" +
	"\u2060\u2061\u2062\u2063\u2064\u206a\u206b\u206c\u206d\u206e\u206f" +
	"\u3000\ufeff\ufe0f"

// ComplianceResult reports the outcome of the three writing-style rules for
// one message. All three rules are always evaluated; there is no partial
// result.
type ComplianceResult struct {
	WordCount   bool
	FirstLetter bool
	Punctuation bool
}

// Compliant reports whether no rule was broken.
func (r ComplianceResult) Compliant() bool {
	return r.WordCount && r.FirstLetter && r.Punctuation
}

// Violations returns the names of the broken rules, in the fixed
// word_count, first_letter, punctuation order. Nil when compliant.
func (r ComplianceResult) Violations() []string {
	var violations []string
	if !r.WordCount {
		violations = append(violations, RuleWordCount)
	}
	if !r.FirstLetter {
		violations = append(violations, RuleFirstLetter)
	}
	if !r.Punctuation {
		violations = append(violations, RulePunctuation)
	}
	return violations
}

// ComplianceChecker evaluates canonicalized message content against the
// forum's writing-style rules: at least five words, a capitalized first
// letter, and terminal punctuation. Emoji characters count as terminal
// punctuation, which requires an EmojiClassifier.
type ComplianceChecker struct {
	emoji EmojiClassifier
}

// NewComplianceChecker creates a new ComplianceChecker.
func NewComplianceChecker(emoji EmojiClassifier) *ComplianceChecker {
	return &ComplianceChecker{emoji: emoji}
}

// Check evaluates the rules against canonicalized content. Content that is
// empty after stripping fails all three rules; this is a normal input, not
// an error.
func (c *ComplianceChecker) Check(content string) ComplianceResult {
	content = strings.TrimSpace(content)
	content = strings.Trim(content, ExtendedWhitespace)

	if content == "" {
		return ComplianceResult{}
	}

	result := ComplianceResult{WordCount: true, FirstLetter: true, Punctuation: true}

	if WordCount(content) < 5 {
		result.WordCount = false
	}

	// First letter must exist and be uppercase. Any script counts; letters
	// without an uppercase form fail the test.
	first, ok := firstLetter(content)
	if !ok || !unicode.IsUpper(first) {
		result.FirstLetter = false
	}

	// Trailing emoji images have already been canonicalized into a literal
	// dot; this branch covers emoji characters typed directly.
	last, _ := utf8.DecodeLastRuneInString(content)
	if !strings.ContainsRune(Punctuation, last) && !c.emoji.IsEmoji(last) {
		result.Punctuation = false
	}

	return result
}

// WordCount tokenizes content on single whitespace or punctuation characters
// and returns the token count. Adjacent delimiters produce empty tokens that
// are counted like any other; historical output depends on this, so it is
// not filtered.
func WordCount(content string) int {
	count := 1
	for _, r := range content {
		if unicode.IsSpace(r) || strings.ContainsRune(Punctuation, r) {
			count++
		}
	}
	return count
}

func firstLetter(content string) (rune, bool) {
	for _, r := range content {
		if unicode.IsLetter(r) {
			return r, true
		}
	}
	return 0, false
}
