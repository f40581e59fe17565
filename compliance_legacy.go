package forumstats

import "strings"

// asciiPunctuation mirrors the punctuation set used by historical rule
// checks. ASCII only.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// legacyEmoticons are textual emotes the historical check accepted in place
// of terminal punctuation.
var legacyEmoticons = []string{"-", "xD", "x.x", ":c", "o7", ":3", "q.q", ":0"}

// CheckComplianceLegacy evaluates the writing-style rules the way historical
// reports did: ASCII-only letter and punctuation tests plus a fixed
// whitelist of textual emoticons. The word count is supplied by the caller.
//
// Deprecated: Use ComplianceChecker.Check, which handles non-ASCII scripts
// and emoji characters. This variant exists only to reproduce historical
// output.
func CheckComplianceLegacy(content string, wordCount int) ComplianceResult {
	result := ComplianceResult{WordCount: true, FirstLetter: true, Punctuation: true}

	if wordCount < 5 {
		result.WordCount = false
	}

	if content == "" {
		result.FirstLetter = false
		result.Punctuation = false
		return result
	}

	idx := strings.IndexFunc(content, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
	if idx < 0 || !(content[idx] >= 'A' && content[idx] <= 'Z') {
		result.FirstLetter = false
	}

	if !strings.ContainsRune(asciiPunctuation, rune(content[len(content)-1])) {
		result.Punctuation = false
		for _, emote := range legacyEmoticons {
			if strings.HasSuffix(content, emote) {
				result.Punctuation = true
				break
			}
		}
	}

	return result
}
