// Package dateparse implements datetime interpretation using
// github.com/araddon/dateparse.
package dateparse

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/fwojciec/forumstats"
)

// Ensure Parser implements forumstats.DatetimeParser.
var _ forumstats.DatetimeParser = (*Parser)(nil)

// Parser interprets the machine-readable datetime attributes embedded in
// forum markup. Archived pages carry ISO 8601 values with a numeric zone
// offset, but the underlying parser accepts most common formats.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse implements forumstats.DatetimeParser.
func (p *Parser) Parse(value string) (time.Time, error) {
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}, forumstats.Errorf(forumstats.EINVALID, "unparseable datetime %q: %v", value, err)
	}
	return t, nil
}
