package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	ahttp "github.com/Acizza/anup/pkg/http"
	"github.com/Acizza/anup/pkg/series"
)

// DefaultAniListURL is the production AniList GraphQL endpoint.
const DefaultAniListURL = "https://graphql.anilist.co"

const requestTimeout = 15 * time.Second

// AniList talks to the AniList GraphQL API. An access token is only needed
// for list entry operations; searches work unauthenticated.
type AniList struct {
	client ahttp.HTTPClient
	url    string
	token  string

	mu     sync.Mutex
	viewer int32
}

var _ Service = (*AniList)(nil)

// AniListOption configures an AniList client.
type AniListOption func(*AniList)

// WithURL points the client at a different endpoint. Used in tests.
func WithURL(url string) AniListOption {
	return func(a *AniList) {
		a.url = url
	}
}

// WithHTTPClient sets the underlying http client.
func WithHTTPClient(client ahttp.HTTPClient) AniListOption {
	return func(a *AniList) {
		a.client = client
	}
}

// NewAniList creates an AniList client. token may be empty for read-only,
// unauthenticated use.
func NewAniList(token string, opts ...AniListOption) *AniList {
	a := &AniList{
		client: ahttp.NewRateLimitedClient(),
		url:    DefaultAniListURL,
		token:  token,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

const mediaFields = `
id
title {
	romaji
	userPreferred
}
episodes
duration
relations {
	edges {
		relationType
		node {
			id
			format
		}
	}
}`

var queryInfoByID = fmt.Sprintf(`query ($id: Int) {
	Media(id: $id, type: ANIME) {%s
	}
}`, mediaFields)

var queryInfoByName = fmt.Sprintf(`query ($name: String) {
	Page(page: 1, perPage: 10) {
		media(search: $name, type: ANIME) {%s
		}
	}
}`, mediaFields)

const queryListEntry = `query ($id: Int, $userID: Int) {
	MediaList(mediaId: $id, userId: $userID) {
		status
		score(format: POINT_100)
		progress
		repeat
		startedAt { year month day }
		completedAt { year month day }
	}
}`

const queryViewer = `query {
	Viewer { id }
}`

const mutationSaveEntry = `mutation ($mediaId: Int, $progress: Int, $scoreRaw: Int, $status: MediaListStatus, $repeat: Int, $startedAt: FuzzyDateInput, $completedAt: FuzzyDateInput) {
	SaveMediaListEntry(mediaId: $mediaId, progress: $progress, scoreRaw: $scoreRaw, status: $status, repeat: $repeat, startedAt: $startedAt, completedAt: $completedAt) {
		id
	}
}`

func (a *AniList) SearchInfoByName(ctx context.Context, name string) ([]series.Info, error) {
	var result struct {
		Page struct {
			Media []media `json:"media"`
		} `json:"Page"`
	}

	if err := a.query(ctx, queryInfoByName, map[string]any{"name": name}, &result); err != nil {
		return nil, err
	}

	infos := make([]series.Info, 0, len(result.Page.Media))
	for _, m := range result.Page.Media {
		infos = append(infos, m.toInfo())
	}

	return infos, nil
}

func (a *AniList) SearchInfoByID(ctx context.Context, id int32) (series.Info, error) {
	var result struct {
		Media media `json:"Media"`
	}

	if err := a.query(ctx, queryInfoByID, map[string]any{"id": id}, &result); err != nil {
		return series.Info{}, err
	}

	return result.Media.toInfo(), nil
}

func (a *AniList) GetListEntry(ctx context.Context, id int32) (*series.Entry, error) {
	viewer, err := a.viewerID(ctx)
	if err != nil {
		return nil, err
	}

	var result struct {
		MediaList mediaListEntry `json:"MediaList"`
	}

	err = a.query(ctx, queryListEntry, map[string]any{"id": id, "userID": viewer}, &result)
	if err != nil {
		// the API reports a missing list entry as not found
		var remoteErr *Error
		if errors.As(err, &remoteErr) && remoteErr.Code == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	entry := result.MediaList.toEntry(id)
	return &entry, nil
}

func (a *AniList) UpdateListEntry(ctx context.Context, entry *series.Entry) error {
	if a.token == "" {
		return ErrNeedAuthentication
	}

	var score int32
	if entry.Score != nil {
		score = *entry.Score
	}

	vars := map[string]any{
		"mediaId":     entry.ID,
		"progress":    entry.WatchedEpisodes,
		"scoreRaw":    score,
		"status":      statusToMedia(entry.Status),
		"repeat":      entry.TimesRewatched,
		"startedAt":   fuzzyDateOf(entry.StartDate),
		"completedAt": fuzzyDateOf(entry.FinishDate),
	}

	var result struct {
		SaveMediaListEntry struct {
			ID int32 `json:"id"`
		} `json:"SaveMediaListEntry"`
	}

	return a.query(ctx, mutationSaveEntry, vars, &result)
}

func (a *AniList) IsOffline() bool {
	return false
}

// viewerID resolves and caches the authenticated account's id.
func (a *AniList) viewerID(ctx context.Context) (int32, error) {
	if a.token == "" {
		return 0, ErrNeedAuthentication
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.viewer != 0 {
		return a.viewer, nil
	}

	var result struct {
		Viewer struct {
			ID int32 `json:"id"`
		} `json:"Viewer"`
	}

	if err := a.query(ctx, queryViewer, nil, &result); err != nil {
		return 0, err
	}

	a.viewer = result.Viewer.ID
	return a.viewer, nil
}

// query sends a GraphQL request and unmarshals the data payload into out.
// Errors reported by the service are returned as *Error.
func (a *AniList) query(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": vars,
	})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
			Status  int    `json:"status"`
		} `json:"errors"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if len(payload.Errors) > 0 {
		first := payload.Errors[0]
		return &Error{Code: first.Status, Message: first.Message}
	}

	if out != nil {
		if err := json.Unmarshal(payload.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

type media struct {
	ID    int32 `json:"id"`
	Title struct {
		Romaji    string `json:"romaji"`
		Preferred string `json:"userPreferred"`
	} `json:"title"`
	Episodes  *int32 `json:"episodes"`
	Duration  *int32 `json:"duration"`
	Relations *struct {
		Edges []mediaEdge `json:"edges"`
	} `json:"relations"`
}

type mediaEdge struct {
	RelationType string `json:"relationType"`
	Node         struct {
		ID     int32  `json:"id"`
		Format string `json:"format"`
	} `json:"node"`
}

func (m media) toInfo() series.Info {
	info := series.Info{
		ID:             m.ID,
		TitlePreferred: m.Title.Preferred,
		TitleRomaji:    m.Title.Romaji,
		// airing series report no count yet; assume at least one episode
		Episodes:          1,
		EpisodeLengthMins: 24,
		Sequel:            m.sequel(),
	}

	if m.Episodes != nil {
		info.Episodes = *m.Episodes
	}
	if m.Duration != nil {
		info.EpisodeLengthMins = *m.Duration
	}

	return info
}

// sequel returns the id of the series directly continuing this one. Side
// stories and specials do not shift season numbering and are skipped.
func (m media) sequel() *int32 {
	if m.Relations == nil {
		return nil
	}

	for _, edge := range m.Relations.Edges {
		if edge.RelationType != "SEQUEL" {
			continue
		}
		if format := edge.Node.Format; format != "TV" && format != "TV_SHORT" {
			continue
		}

		id := edge.Node.ID
		return &id
	}

	return nil
}

type fuzzyDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (d fuzzyDate) toTime() *time.Time {
	if d.Year == 0 || d.Month == 0 || d.Day == 0 {
		return nil
	}

	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return &t
}

func fuzzyDateOf(t *time.Time) *fuzzyDate {
	if t == nil {
		return nil
	}

	return &fuzzyDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

type mediaListEntry struct {
	Status      string    `json:"status"`
	Score       float64   `json:"score"`
	Progress    int32     `json:"progress"`
	Repeat      int32     `json:"repeat"`
	StartedAt   fuzzyDate `json:"startedAt"`
	CompletedAt fuzzyDate `json:"completedAt"`
}

func (e mediaListEntry) toEntry(id int32) series.Entry {
	entry := series.Entry{
		ID:              id,
		WatchedEpisodes: e.Progress,
		Status:          statusFromMedia(e.Status),
		TimesRewatched:  e.Repeat,
		StartDate:       e.StartedAt.toTime(),
		FinishDate:      e.CompletedAt.toTime(),
	}

	if e.Score > 0 {
		score := int32(e.Score)
		entry.Score = &score
	}

	return entry
}

func statusToMedia(status series.Status) string {
	switch status {
	case series.StatusWatching:
		return "CURRENT"
	case series.StatusRewatching:
		return "REPEATING"
	case series.StatusCompleted:
		return "COMPLETED"
	case series.StatusOnHold:
		return "PAUSED"
	case series.StatusDropped:
		return "DROPPED"
	default:
		return "PLANNING"
	}
}

func statusFromMedia(status string) series.Status {
	switch status {
	case "CURRENT":
		return series.StatusWatching
	case "REPEATING":
		return series.StatusRewatching
	case "COMPLETED":
		return series.StatusCompleted
	case "PAUSED":
		return series.StatusOnHold
	case "DROPPED":
		return series.StatusDropped
	default:
		return series.StatusPlanToWatch
	}
}
