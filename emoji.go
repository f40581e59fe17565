package forumstats

// EmojiClassifier reports whether a character is an emoji. Used by the
// compliance rules, which accept a trailing emoji in place of terminal
// punctuation.
type EmojiClassifier interface {
	IsEmoji(r rune) bool
}
