package manager

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Acizza/anup/pkg/cache"
	"github.com/Acizza/anup/pkg/logger"
	"github.com/Acizza/anup/pkg/remote"
	"github.com/Acizza/anup/pkg/series"
	"github.com/Acizza/anup/pkg/storage"
)

// SyncResult reports the outcome of one queued sync request.
type SyncResult struct {
	RequestID uuid.UUID
	SeriesID  int32
	Pull      bool
	Err       error
}

type syncRequest struct {
	id       uuid.UUID
	seriesID int32
	pull     bool
}

// SyncEngine moves entries between storage and the remote service. Queued
// requests are processed by Run on a separate goroutine; synchronous pushes
// and pulls share a per-series lock with the queue, so a mutation arriving
// while a sync for the same series is outstanding waits its turn.
type SyncEngine struct {
	storage  storage.Storage
	remote   remote.Service
	requests chan syncRequest
	results  chan SyncResult
	locks    *cache.Cache[int32, *sync.Mutex]
}

func NewSyncEngine(store storage.Storage, svc remote.Service) *SyncEngine {
	return &SyncEngine{
		storage:  store,
		remote:   svc,
		requests: make(chan syncRequest, 16),
		results:  make(chan SyncResult, 16),
		locks:    cache.New[int32, *sync.Mutex](),
	}
}

// Run consumes queued requests until ctx is cancelled. Requests are
// processed one at a time in arrival order.
func (e *SyncEngine) Run(ctx context.Context) {
	log := logger.FromCtx(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case req := <-e.requests:
			err := e.process(ctx, req)
			if err != nil {
				log.Warnw("sync failed", "series", req.seriesID, "pull", req.pull, "error", err)
			}

			select {
			case e.results <- SyncResult{RequestID: req.id, SeriesID: req.seriesID, Pull: req.pull, Err: err}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// EnqueuePush queues an upload of the series entry. The returned id matches
// the eventual SyncResult on Results.
func (e *SyncEngine) EnqueuePush(ctx context.Context, seriesID int32) (uuid.UUID, error) {
	return e.enqueue(ctx, syncRequest{id: uuid.New(), seriesID: seriesID})
}

// EnqueuePull queues a download that overwrites the local entry.
func (e *SyncEngine) EnqueuePull(ctx context.Context, seriesID int32) (uuid.UUID, error) {
	return e.enqueue(ctx, syncRequest{id: uuid.New(), seriesID: seriesID, pull: true})
}

func (e *SyncEngine) enqueue(ctx context.Context, req syncRequest) (uuid.UUID, error) {
	select {
	case e.requests <- req:
		return req.id, nil
	case <-ctx.Done():
		return uuid.Nil, ctx.Err()
	}
}

// Results delivers one SyncResult per queued request.
func (e *SyncEngine) Results() <-chan SyncResult {
	return e.results
}

func (e *SyncEngine) process(ctx context.Context, req syncRequest) error {
	if req.pull {
		return e.Pull(ctx, req.seriesID)
	}
	return e.Push(ctx, req.seriesID)
}

// Push uploads the entry when it has unsynced changes. The entry is marked
// clean only after the remote accepts it; a failed upload leaves local
// state exactly as it was. Offline, pushing is a no-op and the entry stays
// flagged for a later sync.
func (e *SyncEngine) Push(ctx context.Context, seriesID int32) error {
	unlock := e.lockSeries(seriesID)
	defer unlock()

	if e.remote.IsOffline() {
		return nil
	}

	entry, err := e.storage.GetEntry(ctx, seriesID)
	if err != nil {
		return err
	}
	if !entry.NeedsSync {
		return nil
	}

	if err := e.remote.UpdateListEntry(ctx, entry); err != nil {
		return err
	}

	entry.NeedsSync = false
	return e.storage.SaveEntry(ctx, *entry)
}

// Pull replaces the local entry with the remote one, or a fresh entry when
// the series is not on the account list. Local changes that were never
// pushed are lost; that is the point of a pull.
func (e *SyncEngine) Pull(ctx context.Context, seriesID int32) error {
	unlock := e.lockSeries(seriesID)
	defer unlock()

	if e.remote.IsOffline() {
		return remote.ErrNeedConnection
	}

	remoteEntry, err := e.remote.GetListEntry(ctx, seriesID)
	if err != nil {
		return err
	}

	entry := series.Entry{ID: seriesID, Status: series.StatusPlanToWatch}
	if remoteEntry != nil {
		entry = *remoteEntry
	}
	entry.NeedsSync = false

	return e.storage.SaveEntry(ctx, entry)
}

// PushAll uploads every entry with unsynced changes, in insertion order.
// Failures do not stop the batch.
func (e *SyncEngine) PushAll(ctx context.Context) error {
	entries, err := e.storage.EntriesNeedingSync(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for _, entry := range entries {
		if err := e.Push(ctx, entry.ID); err != nil {
			errs = append(errs, fmt.Errorf("series %d: %w", entry.ID, err))
		}
	}

	return errors.Join(errs...)
}

// lockSeries serializes syncs and mutations touching one series. The
// returned func releases the lock.
func (e *SyncEngine) lockSeries(id int32) func() {
	mu := e.locks.GetOrSet(id, &sync.Mutex{})
	mu.Lock()
	return mu.Unlock
}
