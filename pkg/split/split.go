// Package split breaks a merged-season directory into one directory per
// season. Episode files numbered contiguously across seasons are bucketed by
// the cumulative episode counts of the series' sequel chain, then
// materialized as symlinks so nothing on disk moves or duplicates.
package split

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Acizza/anup/pkg/episode"
	"github.com/Acizza/anup/pkg/remote"
	"github.com/Acizza/anup/pkg/series"
)

const (
	titleToken   = "{title}"
	episodeToken = "{episode}"
)

// DefaultNameFormat is how split episode files are named when the user does
// not provide a format.
const DefaultNameFormat = "{title} - {episode}.mkv"

var (
	ErrMissingTitleToken   = errors.New("name format must contain " + titleToken)
	ErrMissingEpisodeToken = errors.New("name format must contain " + episodeToken)
	// ErrUnconfirmedSeason means the user declined to confirm a fetched
	// sequel's identity; its episode count cannot be trusted for offsets.
	ErrUnconfirmedSeason = errors.New("season identity not confirmed")
)

// NameFormat renders filenames for split episodes from a template carrying
// {title} and {episode} tokens.
type NameFormat struct {
	raw string
}

func NewNameFormat(format string) (NameFormat, error) {
	if !strings.Contains(format, titleToken) {
		return NameFormat{}, ErrMissingTitleToken
	}
	if !strings.Contains(format, episodeToken) {
		return NameFormat{}, ErrMissingEpisodeToken
	}

	return NameFormat{raw: format}, nil
}

// Filename renders the name for a season-relative episode number.
func (f NameFormat) Filename(title string, ep int32) string {
	name := strings.ReplaceAll(f.raw, titleToken, title)
	return strings.ReplaceAll(name, episodeToken, fmt.Sprintf("%02d", ep))
}

// Confirmer asks the user to confirm that a fetched sequel really is the
// next season. A wrong identity corrupts the offset of every season after
// it, so unconfirmed seasons stop the chain.
type Confirmer func(info series.Info) (bool, error)

// ConfirmAll accepts every season without asking. Used when the chain has
// been confirmed before.
func ConfirmAll(series.Info) (bool, error) {
	return true, nil
}

// SequelChain follows sequel links from root, fetching each next season from
// the remote service and passing it through confirm. The returned chain
// always starts with root.
func SequelChain(ctx context.Context, svc remote.Service, root series.Info, confirm Confirmer) ([]series.Info, error) {
	if confirm == nil {
		confirm = ConfirmAll
	}

	chain := []series.Info{root}
	seen := map[int32]bool{root.ID: true}

	info := root
	for info.Sequel != nil {
		id := *info.Sequel
		if seen[id] {
			return nil, fmt.Errorf("sequel chain loops back to series %d", id)
		}

		next, err := svc.SearchInfoByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch sequel %d: %w", id, err)
		}

		ok, err := confirm(next)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s (%d)", ErrUnconfirmedSeason, next.TitlePreferred, next.ID)
		}

		chain = append(chain, next)
		seen[id] = true
		info = next
	}

	return chain, nil
}

// Season is one bucket of a split plan.
type Season struct {
	Info series.Info
	// StartEpisode is the merged-directory number of this season's first
	// episode.
	StartEpisode int32
	// Files keep their merged-directory numbering; subtract StartEpisode-1
	// for the season-relative number.
	Files []episode.RawFile
}

// Plan is the computed assignment of merged episode files to seasons.
type Plan struct {
	Seasons []Season
	// Unassigned holds files whose numbers fall outside every season, or
	// past a season with an unknown episode count.
	Unassigned []episode.RawFile
}

// Partition buckets merged-directory episode numbers into seasons. Season
// k's first episode is 1 plus the episode counts of seasons 1..k-1. A season
// with an unknown (zero) count ends the usable chain; everything at or past
// it is unassigned.
func Partition(chain []series.Info, files []episode.RawFile) Plan {
	var plan Plan
	var offset int32
	known := true

	for _, info := range chain {
		if info.Episodes <= 0 {
			known = false
		}
		if !known {
			break
		}

		season := Season{Info: info, StartEpisode: offset + 1}
		for _, file := range files {
			if file.Episode > offset && file.Episode <= offset+info.Episodes {
				season.Files = append(season.Files, file)
			}
		}

		plan.Seasons = append(plan.Seasons, season)
		offset += info.Episodes
	}

	for _, file := range files {
		if !known && file.Episode > offset {
			plan.Unassigned = append(plan.Unassigned, file)
			continue
		}
		if file.Episode < 1 || (known && file.Episode > offset) {
			plan.Unassigned = append(plan.Unassigned, file)
		}
	}

	return plan
}

// Apply materializes every non-empty season bucket as a directory of
// symlinks under outDir, named per format with season-relative numbering.
// Existing links are tolerated so a split can be re-run. Returns the number
// of links in place afterwards.
func (p Plan) Apply(dir, outDir string, format NameFormat) (int, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return 0, err
	}

	linked := 0
	for _, season := range p.Seasons {
		if len(season.Files) == 0 {
			continue
		}

		seasonDir := filepath.Join(outDir, season.Info.TitlePreferred)
		if err := os.MkdirAll(seasonDir, 0o755); err != nil {
			return linked, fmt.Errorf("failed to create season directory: %w", err)
		}

		for _, file := range season.Files {
			relative := file.Episode - season.StartEpisode + 1
			name := format.Filename(season.Info.TitlePreferred, relative)

			err := os.Symlink(filepath.Join(absDir, file.Filename), filepath.Join(seasonDir, name))
			if err != nil && !errors.Is(err, os.ErrExist) {
				return linked, fmt.Errorf("failed to link %s: %w", file.Filename, err)
			}

			linked++
		}
	}

	return linked, nil
}
