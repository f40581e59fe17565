package forumstats

import (
	"strconv"
	"strings"
)

// PageRange selects a slice of a thread by page or post number. Start is
// inclusive, Stop exclusive, Step optional (defaults to 1). The zero value
// selects nothing and is used to mean "no range given".
type PageRange struct {
	Start int
	Stop  int
	Step  int
}

// ParsePageRange parses the "n1,n2" or "n1,n2,n3" range syntax used on the
// command line, where n2 is exclusive and n3 is an optional step.
func ParsePageRange(s string) (PageRange, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return PageRange{}, Errorf(EINVALID, "range %q must have the form \"n1,n2\" or \"n1,n2,n3\"", s)
	}
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return PageRange{}, Errorf(EINVALID, "range %q contains a non-numeric part %q", s, part)
		}
		nums[i] = n
	}
	r := PageRange{Start: nums[0], Stop: nums[1], Step: 1}
	if len(nums) == 3 {
		if nums[2] < 1 {
			return PageRange{}, Errorf(EINVALID, "range step must be positive, got %d", nums[2])
		}
		r.Step = nums[2]
	}
	return r, nil
}

// IsZero reports whether the range is unset.
func (r PageRange) IsZero() bool {
	return r == PageRange{}
}

// Contains reports whether n is selected by the range.
func (r PageRange) Contains(n int) bool {
	if n < r.Start || n >= r.Stop {
		return false
	}
	return (n-r.Start)%r.step() == 0
}

// First returns the first number selected by the range.
func (r PageRange) First() int {
	return r.Start
}

// Last returns the last number selected by the range. Meaningless for an
// empty range.
func (r PageRange) Last() int {
	if r.Stop <= r.Start {
		return r.Start
	}
	return r.Start + (r.Stop-1-r.Start)/r.step()*r.step()
}

func (r PageRange) step() int {
	if r.Step < 1 {
		return 1
	}
	return r.Step
}
