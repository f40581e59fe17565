package forumstats

import "time"

// DatetimeParser interprets the machine-readable datetime strings embedded
// in forum markup.
type DatetimeParser interface {
	Parse(value string) (time.Time, error)
}
