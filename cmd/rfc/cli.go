package main

import (
	"context"
	"io"

	"github.com/fwojciec/rfcdoc"
	"github.com/fwojciec/rfcdoc/session"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Config   rfcdoc.Config
	Session  *session.Session
	Scanner  rfcdoc.DocumentScanner
	Index    rfcdoc.IndexSource
	SyncLog  rfcdoc.SyncLogService
	Viewer   rfcdoc.Viewer
	Progress *ProgressReporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Update  bool   `short:"u" help:"Download the latest RFC archive and index first"`
	Keyword string `short:"k" placeholder:"KEYWORD" help:"List the available RFCs whose index entry contains KEYWORD"`
	Pager   string `short:"p" placeholder:"PAGER" help:"Pager used to display the RFC (default: $PAGER or 'less -r -s')"`
	Dir     string `placeholder:"DIR" help:"Storage directory (default: $RFCDOC_DIR or $XDG_DATA_HOME/rfc)"`
	Status  bool   `help:"Show the storage directory and recent updates"`
	Verbose bool   `short:"v" help:"Log operations and timings to stderr"`
	Version bool   `help:"Print the version and exit"`

	Number string `arg:"" optional:"" name:"number" help:"Number of the RFC to open"`
}

// HasAction reports whether anything beyond printing help was requested.
func (c *CLI) HasAction() bool {
	return c.Update || c.Keyword != "" || c.Status || c.Number != ""
}
