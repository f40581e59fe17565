// Package scrape assembles per-message records from archived pages into an
// in-memory dataset.
package scrape

import (
	"context"

	"github.com/fwojciec/forumstats"
	"golang.org/x/sync/errgroup"
)

// ProgressType identifies the kind of a progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressPageDone
	ProgressMessageFailed
)

// ProgressEvent reports build progress.
type ProgressEvent struct {
	Type      ProgressType
	PageNum   int
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is called as pages are processed.
type ProgressFunc func(ProgressEvent)

// Options control one Build run.
type Options struct {
	// PageRange and PostRange narrow the build to a slice of the thread.
	// They are mutually exclusive; the zero value means no restriction.
	PageRange forumstats.PageRange
	PostRange forumstats.PageRange

	// Progress, if set, receives build progress events. Events are emitted
	// from a single goroutine.
	Progress ProgressFunc
}

// Builder builds datasets from archived thread pages. Pages are independent
// of each other, so they are processed concurrently; message records within
// a page keep their document order and pages keep their page order.
type Builder struct {
	Source    forumstats.PageSource
	Extractor forumstats.PageExtractor

	// Concurrency bounds the number of pages processed in parallel.
	// Defaults to 4.
	Concurrency int

	// Strict aborts the build on the first structurally broken message
	// instead of skipping it.
	Strict bool
}

// Build extracts all selected pages and returns the assembled dataset.
func (b *Builder) Build(ctx context.Context, opts Options) (*forumstats.Dataset, error) {
	if !opts.PageRange.IsZero() && !opts.PostRange.IsZero() {
		return nil, forumstats.Errorf(forumstats.EINVALID, "page range and post range are mutually exclusive")
	}

	refs, err := b.Source.List()
	if err != nil {
		return nil, err
	}

	// A post range selects every page that overlaps it; exact post
	// filtering happens after extraction.
	var selected []forumstats.PageRef
	for _, ref := range refs {
		if !opts.PageRange.IsZero() && !opts.PageRange.Contains(ref.PageNum) {
			continue
		}
		if !opts.PostRange.IsZero() &&
			(forumstats.FirstPostOnPage(ref.PageNum) > opts.PostRange.Last() ||
				forumstats.LastPostOnPage(ref.PageNum) < opts.PostRange.First()) {
			continue
		}
		selected = append(selected, ref)
	}

	if opts.Progress != nil {
		opts.Progress(ProgressEvent{Type: ProgressStarted, Total: len(selected)})
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	// Results are collected into a position-indexed slice so dataset order
	// is deterministic regardless of scheduling.
	extractions := make([]*forumstats.PageExtraction, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, ref := range selected {
		i, ref := i, ref
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			html, err := b.Source.Read(ref)
			if err != nil {
				return err
			}
			extraction, err := b.Extractor.ExtractPage(html, ref.PageNum)
			if err != nil {
				return err
			}
			if b.Strict && len(extraction.Failures) > 0 {
				return extraction.Failures[0].Err
			}
			extractions[i] = extraction
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var messages []*forumstats.Message
	var completed int
	for i, extraction := range extractions {
		for _, failure := range extraction.Failures {
			if opts.Progress != nil {
				opts.Progress(ProgressEvent{
					Type:      ProgressMessageFailed,
					PageNum:   selected[i].PageNum,
					Completed: completed,
					Total:     len(selected),
					Err:       failure.Err,
				})
			}
		}
		for _, msg := range extraction.Messages {
			if !opts.PostRange.IsZero() && !opts.PostRange.Contains(msg.PostNum) {
				continue
			}
			messages = append(messages, msg)
		}
		completed++
		if opts.Progress != nil {
			opts.Progress(ProgressEvent{
				Type:      ProgressPageDone,
				PageNum:   selected[i].PageNum,
				Completed: completed,
				Total:     len(selected),
			})
		}
	}

	return forumstats.NewDataset(messages), nil
}
