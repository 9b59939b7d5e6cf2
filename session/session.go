// Package session drives one invocation of the reader: it makes sure the
// local mirror holds documents, triggering at most one refresh, and then
// answers lookups and keyword searches against it.
package session

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/rfcdoc"
)

// State is the lifecycle state of a Session.
type State int

// Session states.
const (
	StateUninitialized State = iota
	StateNeedsSync
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateNeedsSync:
		return "needs-sync"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

// Session is not safe for concurrent use.
type Session struct {
	Config  rfcdoc.Config
	Scanner rfcdoc.DocumentScanner
	Index   rfcdoc.IndexSource
	Sync    rfcdoc.SyncProvider

	// SyncLog is optional. When set every refresh attempt is recorded.
	SyncLog rfcdoc.SyncLogService

	// Logger is optional.
	Logger *slog.Logger

	// Now defaults to time.Now.
	Now func() time.Time

	state  State
	synced bool
	engine *rfcdoc.QueryEngine
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Open scans the storage directory and returns an engine over the documents
// found. An empty store triggers one automatic refresh per session; if the
// store is still empty afterwards Open fails with ENODOCS.
func (s *Session) Open(ctx context.Context) (*rfcdoc.QueryEngine, error) {
	if s.state == StateReady {
		return s.engine, nil
	}

	docs, err := s.Scanner.Scan(ctx)
	if err != nil {
		return nil, err
	}

	if docs.Len() == 0 {
		s.state = StateNeedsSync
		if !s.synced {
			s.logger().Info("no documents in storage, updating", "dir", s.Config.StorageDir)
			if _, err := s.refresh(ctx, rfcdoc.SyncTriggerAuto); err != nil {
				if rfcdoc.ErrorCode(err) == rfcdoc.EUNREACHABLE {
					return nil, err
				}
				s.logger().Warn("automatic update failed", "err", err)
			}
			if docs, err = s.Scanner.Scan(ctx); err != nil {
				return nil, err
			}
		}
		if docs.Len() == 0 {
			return nil, rfcdoc.Errorf(rfcdoc.ENODOCS, "no RFC documents found in %s", s.Config.StorageDir)
		}
	}

	s.engine = &rfcdoc.QueryEngine{Documents: docs}
	s.state = StateReady
	return s.engine, nil
}

// Update refreshes the mirror on request. It uses up the session's one
// refresh, and the next Open rescans storage.
func (s *Session) Update(ctx context.Context) (*rfcdoc.SyncResult, error) {
	result, err := s.refresh(ctx, rfcdoc.SyncTriggerManual)
	s.state = StateUninitialized
	s.engine = nil
	return result, err
}

// Search returns the available documents whose index entry contains keyword.
func (s *Session) Search(ctx context.Context, keyword string) ([]*rfcdoc.Record, error) {
	if keyword == "" {
		return nil, rfcdoc.Errorf(rfcdoc.EINVALID, "search keyword required")
	}

	engine, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}
	if engine.Catalog == nil {
		catalog, err := s.loadCatalog(ctx)
		if err != nil {
			return nil, err
		}
		engine.Catalog = catalog
	}
	return engine.Search(keyword)
}

// Resolve reports whether document id is available. A missing document is
// not an error.
func (s *Session) Resolve(ctx context.Context, id int) (rfcdoc.Lookup, error) {
	engine, err := s.Open(ctx)
	if err != nil {
		return rfcdoc.Lookup{ID: id}, err
	}
	return engine.LookupByNumber(id), nil
}

func (s *Session) loadCatalog(ctx context.Context) (*rfcdoc.Catalog, error) {
	rc, err := s.Index.OpenIndex(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	catalog, err := rfcdoc.BuildCatalog(rc)
	if err != nil {
		return nil, err
	}
	if n := catalog.Skipped(); n > 0 {
		s.logger().Warn("skipped malformed index records", "count", n)
	}
	return catalog, nil
}

// refresh runs one sync attempt and records it in the sync log.
func (s *Session) refresh(ctx context.Context, trigger rfcdoc.SyncTrigger) (result *rfcdoc.SyncResult, err error) {
	s.synced = true
	run := &rfcdoc.SyncRun{Trigger: trigger, StartedAt: s.now()}
	defer func() {
		run.FinishedAt = s.now()
		if err != nil {
			run.Error = err.Error()
		}
		s.record(ctx, run)
	}()

	if !s.Sync.IsReachable(ctx) {
		run.Status = rfcdoc.SyncStatusUnreachable
		return nil, rfcdoc.Errorf(rfcdoc.EUNREACHABLE, "cannot reach %s, check your network connection", s.Config.HomeURL)
	}

	result, err = s.Sync.Refresh(ctx)
	if err != nil {
		run.Status = rfcdoc.SyncStatusFailed
		return nil, err
	}
	run.Status = rfcdoc.SyncStatusOK
	run.Documents = result.Documents
	run.IndexHash = result.IndexHash
	return result, nil
}

func (s *Session) record(ctx context.Context, run *rfcdoc.SyncRun) {
	if s.SyncLog == nil {
		return
	}
	if err := s.SyncLog.CreateSyncRun(context.WithoutCancel(ctx), run); err != nil {
		s.logger().Warn("failed to record sync run", "err", err)
	}
}

func (s *Session) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Session) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
