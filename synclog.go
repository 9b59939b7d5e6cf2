package rfcdoc

import (
	"context"
	"time"
)

// SyncTrigger records why a refresh happened.
type SyncTrigger string

// SyncTrigger constants.
const (
	SyncTriggerAuto   SyncTrigger = "auto"
	SyncTriggerManual SyncTrigger = "manual"
)

// SyncStatus records how a refresh ended.
type SyncStatus string

// SyncStatus constants.
const (
	SyncStatusOK          SyncStatus = "ok"
	SyncStatusUnreachable SyncStatus = "unreachable"
	SyncStatusFailed      SyncStatus = "failed"
)

// SyncRun is one recorded refresh attempt.
type SyncRun struct {
	ID         string      `json:"id"`
	Trigger    SyncTrigger `json:"trigger"`
	Status     SyncStatus  `json:"status"`
	Documents  int         `json:"documents"`
	IndexHash  string      `json:"indexHash"`
	Error      string      `json:"error"`
	StartedAt  time.Time   `json:"startedAt"`
	FinishedAt time.Time   `json:"finishedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *SyncRun) Validate() error {
	switch r.Trigger {
	case SyncTriggerAuto, SyncTriggerManual:
	default:
		return Errorf(EINVALID, "invalid sync trigger %q", r.Trigger)
	}
	switch r.Status {
	case SyncStatusOK, SyncStatusUnreachable, SyncStatusFailed:
	default:
		return Errorf(EINVALID, "invalid sync status %q", r.Status)
	}
	if r.StartedAt.IsZero() {
		return Errorf(EINVALID, "sync start time required")
	}
	return nil
}

// SyncLogService records the history of refresh attempts.
type SyncLogService interface {
	// CreateSyncRun stores a run, assigning its ID.
	CreateSyncRun(ctx context.Context, run *SyncRun) error

	// FindSyncRuns returns runs matching the filter, most recent first.
	FindSyncRuns(ctx context.Context, filter SyncRunFilter) ([]*SyncRun, error)
}

// SyncRunFilter represents a filter for FindSyncRuns.
type SyncRunFilter struct {
	Status *SyncStatus `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
