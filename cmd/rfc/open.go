package main

import "fmt"

func runOpen(deps *Dependencies, id int) error {
	lookup, err := deps.Session.Resolve(deps.Ctx, id)
	if err != nil {
		return err
	}
	if !lookup.Found {
		fmt.Fprintf(deps.Stderr, "RFC number %d not found, check your input or re-run with the --update flag\n", id)
		return nil
	}
	return deps.Viewer.View(deps.Ctx, lookup.Path)
}
