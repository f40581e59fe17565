package forumstats

import "time"

// Message represents one extracted forum post. It is built once per message
// during page extraction and not modified afterwards.
type Message struct {
	PostNum   int       `json:"postNum"`
	PageNum   int       `json:"pageNum"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`

	// Content is the canonicalized message text: quoted blocks, scripts,
	// tables, edit markers and platform boilerplate removed, emoji images
	// replaced with their alt code and a sentence delimiter.
	Content string `json:"content"`

	LikeCount      int            `json:"likeCount"`
	QuoteCount     int            `json:"quoteCount"`
	QuotedAuthors  []string       `json:"quotedAuthors"`
	SpoilerCount   int            `json:"spoilerCount"`
	MentionCount   int            `json:"mentionCount"`
	MentionedUsers []string       `json:"mentionedUsers"`
	WordCount      int            `json:"wordCount"`
	EmojiCount     int            `json:"emojiCount"`
	EmojiFrequency map[string]int `json:"emojiFrequency"`
	Edited         bool           `json:"edited"`

	RulesCompliant   bool     `json:"rulesCompliant"`
	RulebreakReasons []string `json:"rulebreakReasons"`
}

// Validate returns an error if the message contains invalid or inconsistent
// fields.
func (m *Message) Validate() error {
	if m.PostNum <= 0 {
		return Errorf(EINVALID, "message post number required")
	}
	if m.Author == "" {
		return Errorf(EINVALID, "message author required")
	}
	if m.MentionCount != len(m.MentionedUsers) {
		return Errorf(EINVALID, "mention count %d does not match mentioned user list length %d", m.MentionCount, len(m.MentionedUsers))
	}
	var emojis int
	for _, n := range m.EmojiFrequency {
		if n < 1 {
			return Errorf(EINVALID, "emoji frequency values must be positive")
		}
		emojis += n
	}
	if m.EmojiCount != emojis {
		return Errorf(EINVALID, "emoji count %d does not match frequency mapping total %d", m.EmojiCount, emojis)
	}
	if m.RulesCompliant != (len(m.RulebreakReasons) == 0) {
		return Errorf(EINVALID, "compliance flag does not match rulebreak reasons")
	}
	return nil
}
