package manager

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/Acizza/anup/pkg/episode"
	"github.com/Acizza/anup/pkg/series"
)

// AdvanceEpisode bumps watched progress by one and persists the result.
// Status changes implied by the new progress, such as completing the last
// episode, are applied as well.
func (m *Manager) AdvanceEpisode(ctx context.Context, nickname string) (*series.Series, error) {
	return m.mutateEntry(ctx, nickname, func(sr *series.Series) error {
		sr.Entry.AdvanceEpisode(sr.Info.Episodes, m.opts.ResumePolicy, m.now())
		return nil
	})
}

// RegressEpisode walks watched progress back by one, for when an episode
// was marked watched by mistake.
func (m *Manager) RegressEpisode(ctx context.Context, nickname string) (*series.Series, error) {
	return m.mutateEntry(ctx, nickname, func(sr *series.Series) error {
		sr.Entry.RegressEpisode(m.now())
		return nil
	})
}

// SetScore rates the series on the 0 to 100 scale.
func (m *Manager) SetScore(ctx context.Context, nickname string, score int32) (*series.Series, error) {
	return m.mutateEntry(ctx, nickname, func(sr *series.Series) error {
		return sr.Entry.SetScore(score)
	})
}

// ClearScore removes the series rating.
func (m *Manager) ClearScore(ctx context.Context, nickname string) (*series.Series, error) {
	return m.mutateEntry(ctx, nickname, func(sr *series.Series) error {
		sr.Entry.ClearScore()
		return nil
	})
}

// SetStatus forces the watch status, stamping start and finish dates the
// same way organic status changes do.
func (m *Manager) SetStatus(ctx context.Context, nickname string, status series.Status) (*series.Series, error) {
	return m.mutateEntry(ctx, nickname, func(sr *series.Series) error {
		return sr.Entry.SetStatus(status, m.opts.ResetDatesOnRewatch, m.now())
	})
}

// BeginRewatch restarts a completed series from episode zero.
func (m *Manager) BeginRewatch(ctx context.Context, nickname string) (*series.Series, error) {
	return m.mutateEntry(ctx, nickname, func(sr *series.Series) error {
		return sr.Entry.BeginRewatch(m.opts.ResetDatesOnRewatch, m.now())
	})
}

// BeginWatching moves the series into a watching state, rolling a fully
// watched series into a rewatch.
func (m *Manager) BeginWatching(ctx context.Context, nickname string) (*series.Series, error) {
	return m.mutateEntry(ctx, nickname, func(sr *series.Series) error {
		sr.Entry.BeginWatching(sr.Info.Episodes, m.opts.ResumePolicy, m.opts.ResetDatesOnRewatch, m.now())
		return nil
	})
}

// PlayEpisodeCmd builds the player invocation for the next unwatched
// episode. The command is returned unstarted so the caller decides how to
// run it and when to record the episode as watched.
func (m *Manager) PlayEpisodeCmd(ctx context.Context, nickname string) (*exec.Cmd, int32, error) {
	if m.opts.Player == "" {
		return nil, 0, errors.New("no player configured")
	}

	sr, err := m.storage.GetSeriesByNickname(ctx, nickname)
	if err != nil {
		return nil, 0, err
	}

	pattern, err := matcherPattern(sr.Config)
	if err != nil {
		return nil, 0, err
	}

	resolved, err := episode.ResolveDir(sr.Config.Path, pattern)
	if err != nil {
		return nil, 0, err
	}

	next := sr.Entry.WatchedEpisodes + 1
	filename, ok := resolved.Episodes[next]
	if !ok {
		return nil, 0, fmt.Errorf("episode %d of %q not found in %s", next, nickname, sr.Config.Path)
	}

	args := make([]string, 0, len(m.opts.PlayerArgs)+len(sr.Config.PlayerArgs)+1)
	args = append(args, m.opts.PlayerArgs...)
	args = append(args, sr.Config.PlayerArgs...)
	args = append(args, filepath.Join(sr.Config.Path, filename))

	return exec.CommandContext(ctx, m.opts.Player, args...), next, nil
}

// mutateEntry applies fn to a freshly loaded series under the per-series
// sync lock and persists the resulting entry. Holding the lock means a
// queued sync for the same series finishes before the mutation applies.
func (m *Manager) mutateEntry(ctx context.Context, nickname string, fn func(*series.Series) error) (*series.Series, error) {
	sr, err := m.storage.GetSeriesByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}

	unlock := m.sync.lockSeries(sr.Config.ID)
	defer unlock()

	// reload under the lock in case a sync just rewrote the entry
	entry, err := m.storage.GetEntry(ctx, sr.Config.ID)
	if err != nil {
		return nil, err
	}
	sr.Entry = *entry

	if err := fn(sr); err != nil {
		return nil, err
	}

	if err := m.storage.SaveEntry(ctx, sr.Entry); err != nil {
		return nil, err
	}

	return sr, nil
}

func matcherPattern(cfg series.Config) (*episode.Pattern, error) {
	if cfg.Matcher == nil {
		return nil, nil
	}
	return episode.NewPattern(*cfg.Matcher)
}
