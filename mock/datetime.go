package mock

import (
	"time"

	"github.com/fwojciec/forumstats"
)

var _ forumstats.DatetimeParser = (*DatetimeParser)(nil)

// DatetimeParser is a mock implementation of forumstats.DatetimeParser.
type DatetimeParser struct {
	ParseFn func(value string) (time.Time, error)
}

func (p *DatetimeParser) Parse(value string) (time.Time, error) {
	return p.ParseFn(value)
}
