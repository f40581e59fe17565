package mock

import "github.com/fwojciec/forumstats"

var _ forumstats.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of forumstats.PageSource.
type PageSource struct {
	ListFn func() ([]forumstats.PageRef, error)
	ReadFn func(ref forumstats.PageRef) (string, error)
}

func (s *PageSource) List() ([]forumstats.PageRef, error) {
	return s.ListFn()
}

func (s *PageSource) Read(ref forumstats.PageRef) (string, error) {
	return s.ReadFn(ref)
}
