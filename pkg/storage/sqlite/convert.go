package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/Acizza/anup/pkg/series"
	"github.com/Acizza/anup/pkg/storage/sqlite/schema/gen/model"
)

// dateLayout is how watch dates are persisted. Dates carry no time
// component.
const dateLayout = "2006-01-02"

// playerArgsSep joins player arguments into a single column. Arguments with
// spaces survive the round trip; arguments containing the separator itself
// do not.
const playerArgsSep = ";;"

func configToModel(c series.Config) model.SeriesConfigs {
	var playerArgs *string
	if len(c.PlayerArgs) > 0 {
		joined := strings.Join(c.PlayerArgs, playerArgsSep)
		playerArgs = &joined
	}

	return model.SeriesConfigs{
		ID:             c.ID,
		Nickname:       c.Nickname,
		Path:           c.Path,
		EpisodeMatcher: c.Matcher,
		PlayerArgs:     playerArgs,
	}
}

func configFromModel(m model.SeriesConfigs) series.Config {
	var playerArgs []string
	if m.PlayerArgs != nil && *m.PlayerArgs != "" {
		playerArgs = strings.Split(*m.PlayerArgs, playerArgsSep)
	}

	return series.Config{
		ID:         m.ID,
		Nickname:   m.Nickname,
		Path:       m.Path,
		Matcher:    m.EpisodeMatcher,
		PlayerArgs: playerArgs,
	}
}

func infoToModel(i series.Info) model.SeriesInfo {
	return model.SeriesInfo{
		ID:                i.ID,
		TitlePreferred:    i.TitlePreferred,
		TitleRomaji:       i.TitleRomaji,
		Episodes:          i.Episodes,
		EpisodeLengthMins: i.EpisodeLengthMins,
		Sequel:            i.Sequel,
	}
}

func infoFromModel(m model.SeriesInfo) series.Info {
	return series.Info{
		ID:                m.ID,
		TitlePreferred:    m.TitlePreferred,
		TitleRomaji:       m.TitleRomaji,
		Episodes:          m.Episodes,
		EpisodeLengthMins: m.EpisodeLengthMins,
		Sequel:            m.Sequel,
	}
}

func entryToModel(e series.Entry) model.SeriesEntries {
	return model.SeriesEntries{
		ID:              e.ID,
		WatchedEpisodes: e.WatchedEpisodes,
		Score:           e.Score,
		Status:          int32(e.Status),
		TimesRewatched:  e.TimesRewatched,
		StartDate:       formatDate(e.StartDate),
		FinishDate:      formatDate(e.FinishDate),
		NeedsSync:       e.NeedsSync,
	}
}

func entryFromModel(m model.SeriesEntries) (series.Entry, error) {
	startDate, err := parseDate(m.StartDate)
	if err != nil {
		return series.Entry{}, fmt.Errorf("invalid start date: %w", err)
	}

	finishDate, err := parseDate(m.FinishDate)
	if err != nil {
		return series.Entry{}, fmt.Errorf("invalid finish date: %w", err)
	}

	return series.Entry{
		ID:              m.ID,
		WatchedEpisodes: m.WatchedEpisodes,
		Score:           m.Score,
		Status:          series.Status(m.Status),
		TimesRewatched:  m.TimesRewatched,
		StartDate:       startDate,
		FinishDate:      finishDate,
		NeedsSync:       m.NeedsSync,
	}, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := t.Format(dateLayout)
	return &formatted
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}
