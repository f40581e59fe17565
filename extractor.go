package forumstats

// PageExtraction holds the outcome of extracting one archived page.
type PageExtraction struct {
	// Messages are the successfully extracted records, in document order.
	Messages []*Message

	// Failures lists messages whose required markup shape was missing.
	// A broken message never prevents its siblings from being extracted.
	Failures []MessageFailure
}

// MessageFailure records one message that could not be extracted. Index is
// the message's position on the page; PostNum is zero when the post number
// itself could not be read.
type MessageFailure struct {
	Index   int
	PostNum int
	Err     error
}

// PageExtractor turns one archived page's markup into message records.
// An error return means the page itself was unusable; per-message failures
// are reported in the extraction result and left to the caller to skip or
// treat as fatal.
type PageExtractor interface {
	ExtractPage(html string, pageNum int) (*PageExtraction, error)
}
