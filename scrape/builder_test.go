package scrape_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/forumstats"
	"github.com/fwojciec/forumstats/mock"
	"github.com/fwojciec/forumstats/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeThread simulates a three-page archive. Page markup is just the page
// number; the extractor mock produces one message per post on the page.
func fakeThread() (*mock.PageSource, *mock.PageExtractor) {
	source := &mock.PageSource{
		ListFn: func() ([]forumstats.PageRef, error) {
			return []forumstats.PageRef{
				{PageNum: 1, Name: "page_0001.html"},
				{PageNum: 2, Name: "page_0002.html"},
				{PageNum: 3, Name: "page_0003.html"},
			}, nil
		},
		ReadFn: func(ref forumstats.PageRef) (string, error) {
			return strconv.Itoa(ref.PageNum), nil
		},
	}
	extractor := &mock.PageExtractor{
		ExtractPageFn: func(html string, pageNum int) (*forumstats.PageExtraction, error) {
			extraction := &forumstats.PageExtraction{}
			for post := forumstats.FirstPostOnPage(pageNum); post <= forumstats.LastPostOnPage(pageNum); post++ {
				extraction.Messages = append(extraction.Messages, &forumstats.Message{
					PostNum: post,
					PageNum: pageNum,
					Author:  "Alice",
				})
			}
			return extraction, nil
		},
	}
	return source, extractor
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("assembles all pages in order", func(t *testing.T) {
		t.Parallel()

		source, extractor := fakeThread()
		b := &scrape.Builder{Source: source, Extractor: extractor, Concurrency: 3}

		ds, err := b.Build(context.Background(), scrape.Options{})

		require.NoError(t, err)
		require.Equal(t, 60, ds.Len())
		// Concurrent page processing must not disturb post order.
		for i, msg := range ds.Messages() {
			assert.Equal(t, i+1, msg.PostNum)
		}
	})

	t.Run("page range and post range are mutually exclusive", func(t *testing.T) {
		t.Parallel()

		source, extractor := fakeThread()
		b := &scrape.Builder{Source: source, Extractor: extractor}

		_, err := b.Build(context.Background(), scrape.Options{
			PageRange: forumstats.PageRange{Start: 1, Stop: 2, Step: 1},
			PostRange: forumstats.PageRange{Start: 1, Stop: 10, Step: 1},
		})

		require.Error(t, err)
		assert.Equal(t, forumstats.EINVALID, forumstats.ErrorCode(err))
	})

	t.Run("page range skips unselected pages entirely", func(t *testing.T) {
		t.Parallel()

		source, extractor := fakeThread()
		var mu sync.Mutex
		var reads []int
		readFn := source.ReadFn
		source.ReadFn = func(ref forumstats.PageRef) (string, error) {
			mu.Lock()
			reads = append(reads, ref.PageNum)
			mu.Unlock()
			return readFn(ref)
		}
		b := &scrape.Builder{Source: source, Extractor: extractor}

		ds, err := b.Build(context.Background(), scrape.Options{
			PageRange: forumstats.PageRange{Start: 2, Stop: 3, Step: 1},
		})

		require.NoError(t, err)
		assert.Equal(t, 20, ds.Len())
		assert.Equal(t, []int{2}, reads)
	})

	t.Run("post range filters messages exactly", func(t *testing.T) {
		t.Parallel()

		source, extractor := fakeThread()
		b := &scrape.Builder{Source: source, Extractor: extractor}

		ds, err := b.Build(context.Background(), scrape.Options{
			PostRange: forumstats.PageRange{Start: 18, Stop: 24, Step: 1},
		})

		require.NoError(t, err)
		require.Equal(t, 6, ds.Len())
		assert.Equal(t, 18, ds.Messages()[0].PostNum)
		assert.Equal(t, 23, ds.Messages()[5].PostNum)
	})

	t.Run("post range inside a single page", func(t *testing.T) {
		t.Parallel()

		source, extractor := fakeThread()
		b := &scrape.Builder{Source: source, Extractor: extractor}

		ds, err := b.Build(context.Background(), scrape.Options{
			PostRange: forumstats.PageRange{Start: 5, Stop: 10, Step: 1},
		})

		require.NoError(t, err)
		require.Equal(t, 5, ds.Len())
		assert.Equal(t, 5, ds.Messages()[0].PostNum)
		assert.Equal(t, 9, ds.Messages()[4].PostNum)
	})

	t.Run("broken messages are skipped and reported", func(t *testing.T) {
		t.Parallel()

		source, _ := fakeThread()
		extractor := &mock.PageExtractor{
			ExtractPageFn: func(html string, pageNum int) (*forumstats.PageExtraction, error) {
				extraction := &forumstats.PageExtraction{
					Messages: []*forumstats.Message{
						{PostNum: forumstats.FirstPostOnPage(pageNum), PageNum: pageNum, Author: "Alice"},
					},
				}
				if pageNum == 2 {
					extraction.Failures = append(extraction.Failures, forumstats.MessageFailure{
						Index: 1,
						Err:   forumstats.Errorf(forumstats.ESTRUCTURE, "message has no content element"),
					})
				}
				return extraction, nil
			},
		}
		b := &scrape.Builder{Source: source, Extractor: extractor}

		var events []scrape.ProgressEvent
		ds, err := b.Build(context.Background(), scrape.Options{
			Progress: func(e scrape.ProgressEvent) { events = append(events, e) },
		})

		require.NoError(t, err)
		assert.Equal(t, 3, ds.Len())

		var failed int
		for _, e := range events {
			if e.Type == scrape.ProgressMessageFailed {
				failed++
				assert.Equal(t, 2, e.PageNum)
				assert.Equal(t, forumstats.ESTRUCTURE, forumstats.ErrorCode(e.Err))
			}
		}
		assert.Equal(t, 1, failed)
	})

	t.Run("strict mode aborts on the first broken message", func(t *testing.T) {
		t.Parallel()

		source, _ := fakeThread()
		extractor := &mock.PageExtractor{
			ExtractPageFn: func(html string, pageNum int) (*forumstats.PageExtraction, error) {
				extraction := &forumstats.PageExtraction{}
				if pageNum == 2 {
					extraction.Failures = append(extraction.Failures, forumstats.MessageFailure{
						Err: forumstats.Errorf(forumstats.ESTRUCTURE, "message has no data-author attribute"),
					})
				}
				return extraction, nil
			},
		}
		b := &scrape.Builder{Source: source, Extractor: extractor, Strict: true}

		_, err := b.Build(context.Background(), scrape.Options{})

		require.Error(t, err)
		assert.Equal(t, forumstats.ESTRUCTURE, forumstats.ErrorCode(err))
	})

	t.Run("source read errors abort the build", func(t *testing.T) {
		t.Parallel()

		source, extractor := fakeThread()
		source.ReadFn = func(ref forumstats.PageRef) (string, error) {
			return "", forumstats.Errorf(forumstats.ENOTFOUND, "cannot read page file %q", ref.Name)
		}
		b := &scrape.Builder{Source: source, Extractor: extractor}

		_, err := b.Build(context.Background(), scrape.Options{})

		require.Error(t, err)
		assert.Equal(t, forumstats.ENOTFOUND, forumstats.ErrorCode(err))
	})

	t.Run("reports progress with totals", func(t *testing.T) {
		t.Parallel()

		source, extractor := fakeThread()
		b := &scrape.Builder{Source: source, Extractor: extractor}

		var events []scrape.ProgressEvent
		_, err := b.Build(context.Background(), scrape.Options{
			Progress: func(e scrape.ProgressEvent) { events = append(events, e) },
		})

		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, scrape.ProgressStarted, events[0].Type)
		assert.Equal(t, 3, events[0].Total)
		assert.Equal(t, scrape.ProgressPageDone, events[3].Type)
		assert.Equal(t, 3, events[3].Completed)
	})
}

func TestBuilder_Build_CancelledContext(t *testing.T) {
	t.Parallel()

	source, extractor := fakeThread()
	b := &scrape.Builder{Source: source, Extractor: extractor}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Build(ctx, scrape.Options{})

	require.Error(t, err)
	assert.True(t, strings.Contains(fmt.Sprint(err), "context canceled"))
}
