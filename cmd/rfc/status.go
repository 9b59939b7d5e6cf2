package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fwojciec/rfcdoc"
)

// statusRuns is the number of sync runs listed by --status.
const statusRuns = 5

func runStatus(deps *Dependencies) error {
	docs, err := deps.Scanner.Scan(deps.Ctx)
	if err != nil {
		return err
	}

	index := "present"
	if rc, err := deps.Index.OpenIndex(deps.Ctx); err == nil {
		rc.Close()
	} else if rfcdoc.ErrorCode(err) == rfcdoc.ENOTFOUND {
		index = "missing"
	} else {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Storage:   %s\n", deps.Config.StorageDir)
	fmt.Fprintf(deps.Stdout, "Documents: %d\n", docs.Len())
	fmt.Fprintf(deps.Stdout, "Index:     %s\n", index)

	runs, err := deps.SyncLog.FindSyncRuns(deps.Ctx, rfcdoc.SyncRunFilter{Limit: statusRuns})
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "\nNo updates recorded. Run 'rfc --update' to download the archive.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, "\nRecent updates:")
	tw := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	for _, r := range runs {
		detail := fmt.Sprintf("%d documents", r.Documents)
		if r.Status != rfcdoc.SyncStatusOK {
			detail = r.Error
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", r.StartedAt.Local().Format(time.DateTime), r.Trigger, r.Status, detail)
	}
	return tw.Flush()
}
