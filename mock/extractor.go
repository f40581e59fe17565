package mock

import "github.com/fwojciec/forumstats"

var _ forumstats.PageExtractor = (*PageExtractor)(nil)

// PageExtractor is a mock implementation of forumstats.PageExtractor.
type PageExtractor struct {
	ExtractPageFn func(html string, pageNum int) (*forumstats.PageExtraction, error)
}

func (e *PageExtractor) ExtractPage(html string, pageNum int) (*forumstats.PageExtraction, error) {
	return e.ExtractPageFn(html, pageNum)
}
