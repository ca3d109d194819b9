// Package manager ties the pieces together: it owns the storage handle,
// talks to the remote service and exposes the operations the command
// surface consumes. Local state is authoritative; every remote push goes
// through the sync engine.
package manager

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Acizza/anup/pkg/episode"
	"github.com/Acizza/anup/pkg/logger"
	"github.com/Acizza/anup/pkg/remote"
	"github.com/Acizza/anup/pkg/series"
	"github.com/Acizza/anup/pkg/storage"
)

// ErrNoSearchResults means the remote service found nothing for a query.
var ErrNoSearchResults = errors.New("no series found")

// Options carries the user preferences the manager's operations depend on.
type Options struct {
	// SeriesDir is where series directories live when a series is added
	// without an explicit path.
	SeriesDir string
	// Player is the video player command used to play episodes.
	Player string
	// PlayerArgs are arguments passed to the player for every series.
	PlayerArgs []string
	// ResumePolicy controls progress when advancing a dropped series.
	ResumePolicy series.ResumePolicy
	// ResetDatesOnRewatch restarts the watch dates when a rewatch begins.
	ResetDatesOnRewatch bool
}

type Manager struct {
	storage storage.Storage
	remote  remote.Service
	opts    Options
	sync    *SyncEngine

	// now is replaceable in tests so date stamps are deterministic
	now func() time.Time
}

func New(store storage.Storage, svc remote.Service, opts Options) *Manager {
	if opts.ResumePolicy == "" {
		opts.ResumePolicy = series.ResumeNextEpisode
	}

	return &Manager{
		storage: store,
		remote:  svc,
		opts:    opts,
		sync:    NewSyncEngine(store, svc),
		now:     time.Now,
	}
}

// Sync exposes the background sync engine so the command surface can run it
// and consume completion messages.
func (m *Manager) Sync() *SyncEngine {
	return m.sync
}

// AddParams identifies a new series to track.
type AddParams struct {
	Nickname string
	// ID selects the exact remote series. When zero the directory title is
	// searched instead.
	ID int32
	// Path is the episode directory; defaults to SeriesDir/Nickname.
	Path string
	// Matcher is an optional custom episode pattern.
	Matcher string
}

// AddSeries starts tracking a series: it parses the episode directory,
// fetches info from the remote service, seeds the entry from the account's
// list when one exists and persists all three rows.
func (m *Manager) AddSeries(ctx context.Context, params AddParams) (*series.Series, error) {
	log := logger.FromCtx(ctx)

	if params.Nickname == "" {
		return nil, errors.New("nickname must not be empty")
	}

	path := params.Path
	if path == "" {
		path = filepath.Join(m.opts.SeriesDir, params.Nickname)
	}

	var matcher *string
	var pattern *episode.Pattern
	if params.Matcher != "" {
		var err error
		pattern, err = episode.NewPattern(params.Matcher)
		if err != nil {
			return nil, err
		}
		matcher = &params.Matcher
	}

	resolved, err := episode.ResolveDir(path, pattern)
	if err != nil {
		return nil, err
	}

	info, err := m.lookupInfo(ctx, params.ID, resolved.Title)
	if err != nil {
		return nil, err
	}

	sr := series.NewSeries(series.Config{
		ID:       info.ID,
		Nickname: params.Nickname,
		Path:     path,
		Matcher:  matcher,
	}, info)

	// seed progress from the account when the series is already on it
	remoteEntry, err := m.remote.GetListEntry(ctx, info.ID)
	if err != nil {
		log.Warnw("failed to fetch existing list entry", "id", info.ID, "error", err)
	}
	if remoteEntry != nil {
		sr.Entry = *remoteEntry
	}

	if err := m.storage.SaveSeries(ctx, sr); err != nil {
		return nil, err
	}

	log.Infow("now tracking series", "nickname", params.Nickname, "id", info.ID, "episodes", len(resolved.Episodes))
	return &sr, nil
}

// SetParams holds the mutable series config fields. Nil fields are left
// untouched.
type SetParams struct {
	ID         *int32
	Path       *string
	Matcher    *string
	PlayerArgs []string
}

// SetSeries updates the config of a tracked series. Changing the id
// refetches info and entry under the new identity and removes the old rows.
func (m *Manager) SetSeries(ctx context.Context, nickname string, params SetParams) (*series.Series, error) {
	sr, err := m.storage.GetSeriesByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}

	if params.Path != nil {
		sr.Config.Path = *params.Path
	}
	if params.Matcher != nil {
		if *params.Matcher == "" {
			sr.Config.Matcher = nil
		} else {
			if _, err := episode.NewPattern(*params.Matcher); err != nil {
				return nil, err
			}
			sr.Config.Matcher = params.Matcher
		}
	}
	if params.PlayerArgs != nil {
		sr.Config.PlayerArgs = params.PlayerArgs
	}

	if params.ID != nil && *params.ID != sr.Config.ID {
		oldID := sr.Config.ID

		info, err := m.remote.SearchInfoByID(ctx, *params.ID)
		if err != nil {
			return nil, err
		}

		sr.Config.ID = info.ID
		sr.Info = info
		sr.Entry = series.Entry{ID: info.ID, Status: series.StatusPlanToWatch}

		if remoteEntry, err := m.remote.GetListEntry(ctx, info.ID); err == nil && remoteEntry != nil {
			sr.Entry = *remoteEntry
		}

		if err := m.storage.DeleteSeries(ctx, oldID); err != nil {
			return nil, err
		}
	}

	if err := m.storage.SaveSeries(ctx, *sr); err != nil {
		return nil, err
	}

	return sr, nil
}

// GetSeries loads a tracked series by nickname.
func (m *Manager) GetSeries(ctx context.Context, nickname string) (*series.Series, error) {
	return m.storage.GetSeriesByNickname(ctx, nickname)
}

// ListSeries loads every tracked series, ordered by nickname.
func (m *Manager) ListSeries(ctx context.Context) ([]series.Series, error) {
	return m.storage.ListSeries(ctx)
}

// DeleteSeries stops tracking a series. Only local rows are removed; the
// remote account is untouched.
func (m *Manager) DeleteSeries(ctx context.Context, nickname string) error {
	sr, err := m.storage.GetSeriesByNickname(ctx, nickname)
	if err != nil {
		return err
	}

	return m.storage.DeleteSeries(ctx, sr.Config.ID)
}

// SearchSeries queries the remote service for series matching query.
func (m *Manager) SearchSeries(ctx context.Context, query string) ([]series.Info, error) {
	if query == "" {
		return nil, errors.New("query is empty")
	}

	return m.remote.SearchInfoByName(ctx, query)
}

func (m *Manager) lookupInfo(ctx context.Context, id int32, title string) (series.Info, error) {
	if id != 0 {
		return m.remote.SearchInfoByID(ctx, id)
	}

	if title == "" {
		return series.Info{}, errors.New("cannot search for series without a title; pass an id")
	}

	results, err := m.remote.SearchInfoByName(ctx, title)
	if err != nil {
		return series.Info{}, err
	}
	if len(results) == 0 {
		return series.Info{}, fmt.Errorf("%w for %q", ErrNoSearchResults, title)
	}

	return results[0], nil
}
