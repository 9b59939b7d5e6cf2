package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/rfcdoc"
	"github.com/fwojciec/rfcdoc/fs"
	rfchttp "github.com/fwojciec/rfcdoc/http"
	"github.com/fwojciec/rfcdoc/mirror"
	"github.com/fwojciec/rfcdoc/pager"
	"github.com/fwojciec/rfcdoc/session"
	rfcslog "github.com/fwojciec/rfcdoc/slog"
	"github.com/fwojciec/rfcdoc/sqlite"
	"github.com/fwojciec/rfcdoc/tarball"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if code := ExitCode(err); code != 0 {
		os.Exit(code)
	}
}

// ExitCode maps an error returned by Run to the process exit status.
// A missing document is not an error and exits 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch rfcdoc.ErrorCode(err) {
	case rfcdoc.ENODOCS:
		return 2
	case rfcdoc.EUNREACHABLE:
		return 3
	}
	return 1
}

// Main represents the program.
type Main struct {
	// Database path for the sync history. Set before calling Run().
	DBPath string

	// ConfigPath is the optional YAML config file.
	ConfigPath string

	// Getenv reads the environment. Defaults to os.Getenv.
	Getenv func(string) string

	// SQLite database used by the sync log.
	DB *sqlite.DB

	// Overrides for end-to-end testing. When nil, real implementations
	// are wired.
	Sync   rfcdoc.SyncProvider
	Viewer rfcdoc.Viewer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath(),
		Getenv:     os.Getenv,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments. Errors are reported on
// stderr before being returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rfc"),
		kong.Description("Read IETF RFCs from a local mirror of the RFC Editor archive."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if slices.Contains(args, "--help") || slices.Contains(args, "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return report(stderr, err)
	}

	if cli.Version {
		fmt.Fprintf(stdout, "rfc %s\n", rfcdoc.Version)
		return nil
	}
	if !cli.HasAction() {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	deps, err := m.wire(ctx, cli, stdout, stderr)
	if err != nil {
		return report(stderr, err)
	}
	defer m.Close()

	return report(stderr, cli.Run(deps))
}

// wire resolves configuration and builds the services the command needs.
func (m *Main) wire(ctx context.Context, cli *CLI, stdout, stderr io.Writer) (*Dependencies, error) {
	getenv := m.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg, err := LoadConfig(m.ConfigPath, getenv, cli)
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// The sync history is only required by --status; other actions run
	// without it when the database cannot be opened.
	var syncLog rfcdoc.SyncLogService
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		if cli.Status {
			fmt.Fprintf(stderr, "Hint: Set RFCDOC_DB to use a different database path\n")
			return nil, fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		logger.Warn("sync history unavailable", "path", m.DBPath, "err", err)
		m.DB = nil
	} else {
		syncLog = sqlite.NewSyncLogService(m.DB)
	}

	scanner := fs.NewScanner(cfg)
	progress := NewProgressReporter(stderr, IsTerminal(stderr))

	provider := m.Sync
	if provider == nil {
		provider = &mirror.Syncer{
			Config:     cfg,
			Downloader: rfchttp.NewDownloader(rfchttp.WithUserAgent("rfcdoc/" + rfcdoc.Version)),
			Extractor:  tarball.NewExtractor(),
			Staging:    fs.NewStagingArea(cfg.StorageDir),
			Lock:       fs.NewLock(cfg.StorageDir),
			Progress:   progress.Report,
			Logf: func(format string, args ...any) {
				logger.Warn(fmt.Sprintf(format, args...))
			},
		}
	}

	viewer := m.Viewer
	if viewer == nil {
		viewer = pager.NewViewer(cfg.Pager)
	}

	sess := &session.Session{
		Config:  cfg,
		Scanner: rfcslog.NewLoggingScanner(scanner, logger),
		Index:   rfcslog.NewLoggingIndexSource(scanner, logger),
		Sync:    rfcslog.NewLoggingSyncProvider(provider, logger),
		SyncLog: syncLog,
		Logger:  logger,
	}

	return &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Config:   cfg,
		Session:  sess,
		Scanner:  scanner,
		Index:    scanner,
		SyncLog:  syncLog,
		Viewer:   rfcslog.NewLoggingViewer(viewer, logger),
		Progress: progress,
	}, nil
}

// report prints err on stderr and returns it unchanged.
func report(stderr io.Writer, err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	var e *rfcdoc.Error
	if errors.As(err, &e) {
		msg = e.Message
	}
	fmt.Fprintf(stderr, "error: %s\n", msg)
	return err
}

func defaultDBPath() string {
	if path := os.Getenv("RFCDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "rfcdoc.db"
	}
	return filepath.Join(home, ".rfcdoc", "rfcdoc.db")
}
