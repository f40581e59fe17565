package forumstats

import "sort"

// Dataset is the in-memory collection of extracted messages for one thread,
// addressable by post number.
type Dataset struct {
	messages []*Message
	byPost   map[int]*Message
}

// NewDataset creates a dataset from extracted messages. Message order is
// preserved; later duplicates of a post number shadow earlier ones in the
// index.
func NewDataset(messages []*Message) *Dataset {
	byPost := make(map[int]*Message, len(messages))
	for _, m := range messages {
		byPost[m.PostNum] = m
	}
	return &Dataset{messages: messages, byPost: byPost}
}

// Len returns the number of messages in the dataset.
func (d *Dataset) Len() int {
	return len(d.messages)
}

// Messages returns all messages in extraction order. The returned slice is
// shared; callers must not modify it.
func (d *Dataset) Messages() []*Message {
	return d.messages
}

// ByPost retrieves a message by post number.
// Returns ENOTFOUND if the post is not in the dataset.
func (d *Dataset) ByPost(postNum int) (*Message, error) {
	m, ok := d.byPost[postNum]
	if !ok {
		return nil, Errorf(ENOTFOUND, "post %d not in dataset", postNum)
	}
	return m, nil
}

// SelectPages returns a new dataset restricted to pages between the range's
// first and last selected page, inclusive.
func (d *Dataset) SelectPages(r PageRange) *Dataset {
	return d.filter(func(m *Message) bool {
		return m.PageNum >= r.First() && m.PageNum <= r.Last()
	})
}

// SelectPosts returns a new dataset restricted to posts between the range's
// first and last selected post, inclusive.
func (d *Dataset) SelectPosts(r PageRange) *Dataset {
	return d.filter(func(m *Message) bool {
		return m.PostNum >= r.First() && m.PostNum <= r.Last()
	})
}

func (d *Dataset) filter(keep func(*Message) bool) *Dataset {
	var selected []*Message
	for _, m := range d.messages {
		if keep(m) {
			selected = append(selected, m)
		}
	}
	return NewDataset(selected)
}

// Authors returns all distinct authors in order of first appearance.
func (d *Dataset) Authors() []string {
	seen := make(map[string]bool)
	var authors []string
	for _, m := range d.messages {
		if !seen[m.Author] {
			seen[m.Author] = true
			authors = append(authors, m.Author)
		}
	}
	return authors
}

// MessagesByAuthor returns the number of messages an author wrote.
func (d *Dataset) MessagesByAuthor(author string) int {
	var count int
	for _, m := range d.messages {
		if m.Author == author {
			count++
		}
	}
	return count
}

// ViolationsByAuthor returns the number of rule-breaking messages an author
// wrote.
func (d *Dataset) ViolationsByAuthor(author string) int {
	var count int
	for _, m := range d.messages {
		if m.Author == author && !m.RulesCompliant {
			count++
		}
	}
	return count
}

// AuthorsByActivity returns all authors sorted by descending message count.
// Authors with equal counts keep their first-appearance order.
func (d *Dataset) AuthorsByActivity() []string {
	authors := d.Authors()
	counts := make(map[string]int, len(authors))
	for _, author := range authors {
		counts[author] = d.MessagesByAuthor(author)
	}
	sort.SliceStable(authors, func(i, j int) bool {
		return counts[authors[i]] > counts[authors[j]]
	})
	return authors
}
