package main

import (
	"fmt"

	"github.com/fwojciec/forumstats"
)

// Run executes the table command.
func (c *TableCmd) Run(deps *Dependencies) error {
	ds, err := deps.buildDataset()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", forumstats.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, forumstats.BBCodeTable(ds))
	return nil
}
