package mock

import "github.com/fwojciec/forumstats"

var _ forumstats.EmojiClassifier = (*EmojiClassifier)(nil)

// EmojiClassifier is a mock implementation of forumstats.EmojiClassifier.
type EmojiClassifier struct {
	IsEmojiFn func(r rune) bool
}

func (c *EmojiClassifier) IsEmoji(r rune) bool {
	return c.IsEmojiFn(r)
}
