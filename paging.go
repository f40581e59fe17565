package forumstats

// PageSize is the number of posts the forum renders per thread page.
const PageSize = 20

// PageForPost returns the page a given post appears on.
func PageForPost(postNum int) int {
	return (postNum + PageSize - 1) / PageSize
}

// FirstPostOnPage returns the number of the first post on a page.
func FirstPostOnPage(pageNum int) int {
	return pageNum*PageSize - PageSize + 1
}

// LastPostOnPage returns the number of the last post on a page.
func LastPostOnPage(pageNum int) int {
	return pageNum * PageSize
}
