package main

import (
	"fmt"

	"github.com/fwojciec/forumstats"
)

// Run executes the authors command.
func (c *AuthorsCmd) Run(deps *Dependencies) error {
	ds, err := deps.buildDataset()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", forumstats.ErrorMessage(err))
		return err
	}

	if ds.Len() == 0 {
		fmt.Fprintln(deps.Stdout, "No messages found.")
		return nil
	}

	for _, author := range ds.AuthorsByActivity() {
		fmt.Fprintf(deps.Stdout, "%s  %d posts  %d non-compliant\n",
			author, ds.MessagesByAuthor(author), ds.ViolationsByAuthor(author))
	}
	return nil
}
