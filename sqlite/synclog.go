package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/rfcdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ rfcdoc.SyncLogService = (*SyncLogService)(nil)

// SyncLogService implements rfcdoc.SyncLogService using SQLite.
type SyncLogService struct {
	db *DB
}

// NewSyncLogService creates a new SyncLogService.
func NewSyncLogService(db *DB) *SyncLogService {
	return &SyncLogService{db: db}
}

// CreateSyncRun stores a run and assigns it a new ID.
func (s *SyncLogService) CreateSyncRun(ctx context.Context, run *rfcdoc.SyncRun) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.StartedAt = run.StartedAt.UTC().Truncate(time.Second)
	if !run.FinishedAt.IsZero() {
		run.FinishedAt = run.FinishedAt.UTC().Truncate(time.Second)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sync_runs (id, triggered_by, status, documents, index_hash, error, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, string(run.Trigger), string(run.Status), run.Documents, run.IndexHash, run.Error,
		formatTime(run.StartedAt), formatTime(run.FinishedAt))

	return err
}

// FindSyncRuns returns runs matching the filter, most recent first.
func (s *SyncLogService) FindSyncRuns(ctx context.Context, filter rfcdoc.SyncRunFilter) ([]*rfcdoc.SyncRun, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, triggered_by, status, documents, index_hash, error, started_at, finished_at FROM sync_runs WHERE 1=1")

	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}

	query.WriteString(" ORDER BY started_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*rfcdoc.SyncRun
	for rows.Next() {
		var run rfcdoc.SyncRun
		var trigger, status, startedAt, finishedAt string

		if err := rows.Scan(&run.ID, &trigger, &status, &run.Documents, &run.IndexHash, &run.Error,
			&startedAt, &finishedAt); err != nil {
			return nil, err
		}
		run.Trigger = rfcdoc.SyncTrigger(trigger)
		run.Status = rfcdoc.SyncStatus(status)

		if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
