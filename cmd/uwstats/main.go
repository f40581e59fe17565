// Command uwstats extracts per-post statistics from archived uwmc.de forum
// thread pages and renders them in various formats.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/forumstats"
	"github.com/fwojciec/forumstats/dateparse"
	"github.com/fwojciec/forumstats/fs"
	"github.com/fwojciec/forumstats/gomoji"
	"github.com/fwojciec/forumstats/goquery"
	"github.com/fwojciec/forumstats/scrape"
	fslog "github.com/fwojciec/forumstats/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("uwstats"),
		kong.Description("A statistical analyst designed for analyzing uwmc.de forum threads."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var pageRange, postRange forumstats.PageRange
	if cli.PageRange != "" {
		if pageRange, err = forumstats.ParsePageRange(cli.PageRange); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", forumstats.ErrorMessage(err))
			return err
		}
	}
	if cli.PostRange != "" {
		if postRange, err = forumstats.ParsePageRange(cli.PostRange); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", forumstats.ErrorMessage(err))
			return err
		}
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var extractor forumstats.PageExtractor = goquery.NewExtractor(
		dateparse.NewParser(),
		forumstats.NewComplianceChecker(gomoji.NewClassifier()),
	)
	if cli.Verbose {
		extractor = fslog.NewLoggingExtractor(extractor, logger)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Builder: &scrape.Builder{
			Source:      fs.NewSource(cli.Path),
			Extractor:   extractor,
			Concurrency: cli.Concurrency,
			Strict:      cli.Strict,
		},
		PageRange: pageRange,
		PostRange: postRange,
	}

	return kctx.Run(deps)
}
