package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/rfcdoc"
)

// Run executes the requested actions in order: update, keyword search,
// then opening a document.
func (c *CLI) Run(deps *Dependencies) error {
	var id int
	if c.Number != "" {
		n, err := strconv.Atoi(c.Number)
		if err != nil || n <= 0 {
			return rfcdoc.Errorf(rfcdoc.EINVALID, "invalid RFC number %q", c.Number)
		}
		id = n
	}

	if c.Status {
		return runStatus(deps)
	}

	if c.Update {
		if err := runUpdate(deps); err != nil {
			return err
		}
	}

	if c.Keyword == "" && c.Number == "" {
		return nil
	}

	_, err := deps.Session.Open(deps.Ctx)
	deps.Progress.Done()
	if err != nil {
		return err
	}

	if c.Keyword != "" {
		if err := runSearch(deps, c.Keyword); err != nil {
			return err
		}
	}

	if c.Number != "" {
		return runOpen(deps, id)
	}
	return nil
}

func runUpdate(deps *Dependencies) error {
	fmt.Fprintf(deps.Stderr, "Updating RFC mirror in %s\n", deps.Config.StorageDir)
	result, err := deps.Session.Update(deps.Ctx)
	deps.Progress.Done()
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stderr, "Updated %d documents\n", result.Documents)
	return nil
}
