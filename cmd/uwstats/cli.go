package main

import (
	"context"
	"io"

	"github.com/fwojciec/forumstats"
	"github.com/fwojciec/forumstats/scrape"
)

// DatasetBuilder builds the dataset a command operates on.
type DatasetBuilder interface {
	Build(ctx context.Context, opts scrape.Options) (*forumstats.Dataset, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Builder   DatasetBuilder
	PageRange forumstats.PageRange
	PostRange forumstats.PageRange
}

func (d *Dependencies) buildDataset() (*forumstats.Dataset, error) {
	return d.Builder.Build(d.Ctx, scrape.Options{
		PageRange: d.PageRange,
		PostRange: d.PostRange,
	})
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Path        string `short:"p" default:".html_content" help:"Directory containing the archived page files"`
	PageRange   string `name:"pagerange" help:"Page range \"n1,n2[,n3]\" to analyze, n2 exclusive. Mutually exclusive with --postrange"`
	PostRange   string `name:"postrange" help:"Post range \"n1,n2[,n3]\" to analyze, n2 exclusive. Mutually exclusive with --pagerange"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent page limit"`
	Strict      bool   `help:"Abort on the first structurally broken message"`
	Verbose     bool   `short:"v" help:"Enable per-page debug logging"`

	Table   TableCmd   `cmd:"" help:"Render the per-author statistics table in BBCode"`
	Authors AuthorsCmd `cmd:"" help:"List authors by activity"`
	Show    ShowCmd    `cmd:"" help:"Show one extracted message record"`
}

// TableCmd is the "table" subcommand.
type TableCmd struct{}

// AuthorsCmd is the "authors" subcommand.
type AuthorsCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Post int `arg:"" help:"Post number"`
}
