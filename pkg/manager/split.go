package manager

import (
	"context"

	"github.com/Acizza/anup/pkg/episode"
	"github.com/Acizza/anup/pkg/logger"
	"github.com/Acizza/anup/pkg/split"
)

// SplitParams configures a season split run.
type SplitParams struct {
	// Dir is the merged directory to split. When a series with Nickname is
	// tracked, its path and matcher are used and Dir may be empty.
	Dir string
	// Nickname selects a tracked series to split.
	Nickname string
	// SeriesID roots the sequel chain when the directory is not tracked.
	SeriesID int32
	// OutDir receives the per-season symlink directories; defaults to Dir.
	OutDir string
	// Format names the symlinks; empty means DefaultNameFormat.
	Format string
	// Confirm approves each detected sequel; nil accepts all of them.
	Confirm split.Confirmer
}

// SplitResult is the outcome of a season split.
type SplitResult struct {
	Plan  split.Plan
	Links int
}

// SplitSeasons partitions a directory holding several seasons with absolute
// episode numbering into one symlinked directory per season. Season
// boundaries come from the remote service's episode counts along the sequel
// chain.
func (m *Manager) SplitSeasons(ctx context.Context, params SplitParams) (*SplitResult, error) {
	log := logger.FromCtx(ctx)

	dir := params.Dir
	var pattern *episode.Pattern
	rootID := params.SeriesID

	if params.Nickname != "" {
		sr, err := m.storage.GetSeriesByNickname(ctx, params.Nickname)
		if err != nil {
			return nil, err
		}
		dir = sr.Config.Path
		rootID = sr.Config.ID
		if pattern, err = matcherPattern(sr.Config); err != nil {
			return nil, err
		}
	}

	if rootID == 0 {
		// fall back to searching by the directory's title hint
		resolved, err := episode.ResolveDir(dir, pattern)
		if err != nil {
			return nil, err
		}
		info, err := m.lookupInfo(ctx, 0, resolved.Title)
		if err != nil {
			return nil, err
		}
		rootID = info.ID
	}

	root, err := m.remote.SearchInfoByID(ctx, rootID)
	if err != nil {
		return nil, err
	}

	confirm := params.Confirm
	if confirm == nil {
		confirm = split.ConfirmAll
	}

	chain, err := split.SequelChain(ctx, m.remote, root, confirm)
	if err != nil {
		return nil, err
	}

	files, err := episode.ScanRaw(dir, pattern)
	if err != nil {
		return nil, err
	}

	format := split.DefaultNameFormat
	if params.Format != "" {
		format = params.Format
	}
	nameFormat, err := split.NewNameFormat(format)
	if err != nil {
		return nil, err
	}

	outDir := params.OutDir
	if outDir == "" {
		outDir = dir
	}

	plan := split.Partition(chain, files)
	links, err := plan.Apply(dir, outDir, nameFormat)
	if err != nil {
		return nil, err
	}

	log.Infow("split seasons", "dir", dir, "seasons", len(plan.Seasons), "links", links, "unassigned", len(plan.Unassigned))
	return &SplitResult{Plan: plan, Links: links}, nil
}
