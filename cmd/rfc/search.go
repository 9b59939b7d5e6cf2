package main

import (
	"fmt"
	"strings"
)

func runSearch(deps *Dependencies, keyword string) error {
	records, err := deps.Session.Search(deps.Ctx, keyword)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintf(deps.Stderr, "No available RFCs match %q\n", keyword)
		return nil
	}

	for _, rec := range records {
		fmt.Fprint(deps.Stdout, rec.Description)
		if !strings.HasSuffix(rec.Description, "\n") {
			fmt.Fprintln(deps.Stdout)
		}
	}
	return nil
}
