package mock

import (
	"context"

	"github.com/fwojciec/rfcdoc"
)

var _ rfcdoc.SyncLogService = (*SyncLogService)(nil)

// SyncLogService is a mock implementation of rfcdoc.SyncLogService.
type SyncLogService struct {
	CreateSyncRunFn func(ctx context.Context, run *rfcdoc.SyncRun) error
	FindSyncRunsFn  func(ctx context.Context, filter rfcdoc.SyncRunFilter) ([]*rfcdoc.SyncRun, error)
}

func (s *SyncLogService) CreateSyncRun(ctx context.Context, run *rfcdoc.SyncRun) error {
	return s.CreateSyncRunFn(ctx, run)
}

func (s *SyncLogService) FindSyncRuns(ctx context.Context, filter rfcdoc.SyncRunFilter) ([]*rfcdoc.SyncRun, error) {
	return s.FindSyncRunsFn(ctx, filter)
}
