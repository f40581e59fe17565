// Package gomoji implements emoji classification using
// github.com/forPelevin/gomoji.
package gomoji

import (
	"github.com/forPelevin/gomoji"
	"github.com/fwojciec/forumstats"
)

// Ensure Classifier implements forumstats.EmojiClassifier.
var _ forumstats.EmojiClassifier = (*Classifier)(nil)

// Classifier reports emoji characters using the gomoji database.
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// IsEmoji implements forumstats.EmojiClassifier.
func (c *Classifier) IsEmoji(r rune) bool {
	return gomoji.ContainsEmoji(string(r))
}
