package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/forumstats"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	ds, err := deps.buildDataset()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", forumstats.ErrorMessage(err))
		return err
	}

	msg, err := ds.ByPost(c.Post)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", forumstats.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "post #%d (page %d) by %s at %s\n",
		msg.PostNum, msg.PageNum, msg.Author, msg.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(deps.Stdout, "likes=%d quotes=%d spoilers=%d mentions=%d emojis=%d words=%d edited=%t\n",
		msg.LikeCount, msg.QuoteCount, msg.SpoilerCount, msg.MentionCount, msg.EmojiCount, msg.WordCount, msg.Edited)
	if msg.RulesCompliant {
		fmt.Fprintln(deps.Stdout, "rules: compliant")
	} else {
		fmt.Fprintf(deps.Stdout, "rules: broken (%s)\n", strings.Join(msg.RulebreakReasons, ", "))
	}
	fmt.Fprintln(deps.Stdout, msg.Content)
	return nil
}
