package forumstats

// PageRef identifies one archived thread page.
type PageRef struct {
	PageNum int
	Name    string
}

// PageSource enumerates and reads archived thread pages.
// Implementations hide where and how pages are stored.
type PageSource interface {
	// List returns all available pages in ascending page order.
	// Re-listing the same source yields the same result.
	List() ([]PageRef, error)

	// Read returns the raw markup of one page.
	Read(ref PageRef) (string, error)
}
