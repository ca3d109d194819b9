package manager

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Acizza/anup/pkg/remote"
	"github.com/Acizza/anup/pkg/remote/mocks"
	"github.com/Acizza/anup/pkg/series"
	"github.com/Acizza/anup/pkg/storage"
	"github.com/Acizza/anup/pkg/storage/sqlite"
)

var testNow = time.Date(2021, time.March, 14, 20, 30, 0, 0, time.UTC)

func testDay() *time.Time {
	d := time.Date(2021, time.March, 14, 0, 0, 0, 0, time.UTC)
	return &d
}

func ptr[T any](v T) *T {
	return &v
}

func initManager(t *testing.T, svc remote.Service, opts Options) (*Manager, storage.Storage) {
	t.Helper()

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	m := New(store, svc, opts)
	m.now = func() time.Time { return testNow }
	return m, store
}

func seedSeries(t *testing.T, store storage.Storage, id int32, nickname string) series.Series {
	t.Helper()

	sr := series.NewSeries(series.Config{
		ID:       id,
		Nickname: nickname,
		Path:     filepath.Join("/videos", nickname),
	}, series.Info{
		ID:                id,
		TitlePreferred:    "Kaiba",
		TitleRomaji:       "Kaiba",
		Episodes:          12,
		EpisodeLengthMins: 25,
	})
	require.NoError(t, store.SaveSeries(context.Background(), sr))
	return sr
}

func writeEpisodes(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
}

func TestAddSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	ctx := context.Background()

	dir := t.TempDir()
	writeEpisodes(t, dir, "Clannad - 01.mkv", "Clannad - 02.mkv")

	info := series.Info{
		ID:                2167,
		TitlePreferred:    "Clannad",
		TitleRomaji:       "Clannad",
		Episodes:          23,
		EpisodeLengthMins: 24,
	}
	svc.EXPECT().SearchInfoByName(gomock.Any(), "Clannad").Return([]series.Info{info}, nil)
	svc.EXPECT().GetListEntry(gomock.Any(), int32(2167)).Return(nil, nil)

	m, store := initManager(t, svc, Options{})

	sr, err := m.AddSeries(ctx, AddParams{Nickname: "clannad", Path: dir})
	require.NoError(t, err)
	assert.Equal(t, int32(2167), sr.Config.ID)
	assert.Equal(t, info, sr.Info)
	assert.Equal(t, series.StatusPlanToWatch, sr.Entry.Status)

	got, err := store.GetSeriesByNickname(ctx, "clannad")
	require.NoError(t, err)
	assert.Equal(t, *sr, *got)
}

func TestAddSeriesSeedsEntryFromAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	ctx := context.Background()

	dir := t.TempDir()
	writeEpisodes(t, dir, "Clannad - 01.mkv")

	info := series.Info{ID: 2167, TitlePreferred: "Clannad", TitleRomaji: "Clannad", Episodes: 23, EpisodeLengthMins: 24}
	remoteEntry := &series.Entry{
		ID:              2167,
		WatchedEpisodes: 12,
		Score:           ptr(int32(80)),
		Status:          series.StatusWatching,
		StartDate:       testDay(),
	}
	svc.EXPECT().SearchInfoByName(gomock.Any(), "Clannad").Return([]series.Info{info}, nil)
	svc.EXPECT().GetListEntry(gomock.Any(), int32(2167)).Return(remoteEntry, nil)

	m, _ := initManager(t, svc, Options{})

	sr, err := m.AddSeries(ctx, AddParams{Nickname: "clannad", Path: dir})
	require.NoError(t, err)
	assert.Equal(t, *remoteEntry, sr.Entry)
}

func TestAddSeriesByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	ctx := context.Background()

	dir := t.TempDir()
	writeEpisodes(t, dir, "Clannad - 01.mkv")

	info := series.Info{ID: 4059, TitlePreferred: "Clannad After Story", TitleRomaji: "Clannad: After Story", Episodes: 24, EpisodeLengthMins: 24}
	svc.EXPECT().SearchInfoByID(gomock.Any(), int32(4059)).Return(info, nil)
	svc.EXPECT().GetListEntry(gomock.Any(), int32(4059)).Return(nil, nil)

	m, _ := initManager(t, svc, Options{})

	sr, err := m.AddSeries(ctx, AddParams{Nickname: "cas", ID: 4059, Path: dir})
	require.NoError(t, err)
	assert.Equal(t, info, sr.Info)
}

func TestAddSeriesNoResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	dir := t.TempDir()
	writeEpisodes(t, dir, "Clannad - 01.mkv")

	svc.EXPECT().SearchInfoByName(gomock.Any(), "Clannad").Return(nil, nil)

	m, _ := initManager(t, svc, Options{})

	_, err := m.AddSeries(context.Background(), AddParams{Nickname: "clannad", Path: dir})
	assert.ErrorIs(t, err, ErrNoSearchResults)
}

func TestAdvanceEpisode(t *testing.T) {
	m, store := initManager(t, remote.NewOffline(), Options{})
	ctx := context.Background()
	seedSeries(t, store, 1, "kaiba")

	sr, err := m.AdvanceEpisode(ctx, "kaiba")
	require.NoError(t, err)
	assert.Equal(t, int32(1), sr.Entry.WatchedEpisodes)
	assert.Equal(t, series.StatusWatching, sr.Entry.Status)
	assert.Equal(t, testDay(), sr.Entry.StartDate)
	assert.True(t, sr.Entry.NeedsSync)

	persisted, err := store.GetEntry(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, sr.Entry, *persisted)
}

func TestAdvanceEpisodeCompletesSeries(t *testing.T) {
	m, store := initManager(t, remote.NewOffline(), Options{})
	ctx := context.Background()
	sr := seedSeries(t, store, 1, "kaiba")

	sr.Entry.WatchedEpisodes = 11
	sr.Entry.Status = series.StatusWatching
	sr.Entry.StartDate = testDay()
	require.NoError(t, store.SaveEntry(ctx, sr.Entry))

	got, err := m.AdvanceEpisode(ctx, "kaiba")
	require.NoError(t, err)
	assert.Equal(t, int32(12), got.Entry.WatchedEpisodes)
	assert.Equal(t, series.StatusCompleted, got.Entry.Status)
	assert.Equal(t, testDay(), got.Entry.FinishDate)
}

func TestRegressEpisode(t *testing.T) {
	m, store := initManager(t, remote.NewOffline(), Options{})
	ctx := context.Background()
	sr := seedSeries(t, store, 1, "kaiba")

	sr.Entry.WatchedEpisodes = 5
	sr.Entry.Status = series.StatusWatching
	require.NoError(t, store.SaveEntry(ctx, sr.Entry))

	got, err := m.RegressEpisode(ctx, "kaiba")
	require.NoError(t, err)
	assert.Equal(t, int32(4), got.Entry.WatchedEpisodes)
	assert.True(t, got.Entry.NeedsSync)
}

func TestSetScore(t *testing.T) {
	m, store := initManager(t, remote.NewOffline(), Options{})
	ctx := context.Background()
	seedSeries(t, store, 1, "kaiba")

	sr, err := m.SetScore(ctx, "kaiba", 85)
	require.NoError(t, err)
	assert.Equal(t, ptr(int32(85)), sr.Entry.Score)

	_, err = m.SetScore(ctx, "kaiba", 101)
	assert.ErrorIs(t, err, series.ErrScoreOutOfRange)

	// the failed update must not have touched the stored score
	persisted, err := store.GetEntry(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, ptr(int32(85)), persisted.Score)
}

func TestSetStatusStampsDates(t *testing.T) {
	m, store := initManager(t, remote.NewOffline(), Options{})
	ctx := context.Background()
	seedSeries(t, store, 1, "kaiba")

	sr, err := m.SetStatus(ctx, "kaiba", series.StatusDropped)
	require.NoError(t, err)
	assert.Equal(t, series.StatusDropped, sr.Entry.Status)
	assert.Equal(t, testDay(), sr.Entry.FinishDate)
}

func TestBeginRewatchRequiresCompleted(t *testing.T) {
	m, store := initManager(t, remote.NewOffline(), Options{})
	seedSeries(t, store, 1, "kaiba")

	_, err := m.BeginRewatch(context.Background(), "kaiba")
	assert.ErrorIs(t, err, series.ErrInvalidTransition)
}

func TestSetSeriesChangesID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	ctx := context.Background()

	info := series.Info{ID: 2, TitlePreferred: "Kaiba 2", TitleRomaji: "Kaiba 2", Episodes: 13, EpisodeLengthMins: 25}
	svc.EXPECT().SearchInfoByID(gomock.Any(), int32(2)).Return(info, nil)
	svc.EXPECT().GetListEntry(gomock.Any(), int32(2)).Return(nil, nil)

	m, store := initManager(t, svc, Options{})
	seedSeries(t, store, 1, "kaiba")

	sr, err := m.SetSeries(ctx, "kaiba", SetParams{ID: ptr(int32(2))})
	require.NoError(t, err)
	assert.Equal(t, int32(2), sr.Config.ID)
	assert.Equal(t, info, sr.Info)

	_, err = store.GetSeries(ctx, 1)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	got, err := store.GetSeriesByNickname(ctx, "kaiba")
	require.NoError(t, err)
	assert.Equal(t, int32(2), got.Config.ID)
}

func TestSetSeriesRejectsBadMatcher(t *testing.T) {
	m, store := initManager(t, remote.NewOffline(), Options{})
	seedSeries(t, store, 1, "kaiba")

	_, err := m.SetSeries(context.Background(), "kaiba", SetParams{Matcher: ptr("no tokens here")})
	assert.Error(t, err)
}

func TestDeleteSeries(t *testing.T) {
	m, store := initManager(t, remote.NewOffline(), Options{})
	ctx := context.Background()
	seedSeries(t, store, 1, "kaiba")

	require.NoError(t, m.DeleteSeries(ctx, "kaiba"))

	_, err := store.GetSeriesByNickname(ctx, "kaiba")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = m.DeleteSeries(ctx, "kaiba")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSearchSeriesEmptyQuery(t *testing.T) {
	m, _ := initManager(t, remote.NewOffline(), Options{})

	_, err := m.SearchSeries(context.Background(), "")
	assert.Error(t, err)
}

func TestPlayEpisodeCmd(t *testing.T) {
	m, store := initManager(t, remote.NewOffline(), Options{
		Player:     "mpv",
		PlayerArgs: []string{"--no-terminal"},
	})
	ctx := context.Background()

	dir := t.TempDir()
	writeEpisodes(t, dir, "Kaiba - 01.mkv", "Kaiba - 02.mkv")

	sr := seedSeries(t, store, 1, "kaiba")
	sr.Config.Path = dir
	sr.Config.PlayerArgs = []string{"--fs"}
	sr.Entry.WatchedEpisodes = 1
	sr.Entry.Status = series.StatusWatching
	require.NoError(t, store.SaveSeries(ctx, sr))

	cmd, next, err := m.PlayEpisodeCmd(ctx, "kaiba")
	require.NoError(t, err)
	assert.Equal(t, int32(2), next)
	assert.Equal(t, []string{"mpv", "--no-terminal", "--fs", filepath.Join(dir, "Kaiba - 02.mkv")}, cmd.Args)
}

func TestPlayEpisodeCmdMissingEpisode(t *testing.T) {
	m, store := initManager(t, remote.NewOffline(), Options{Player: "mpv"})
	ctx := context.Background()

	dir := t.TempDir()
	writeEpisodes(t, dir, "Kaiba - 01.mkv")

	sr := seedSeries(t, store, 1, "kaiba")
	sr.Config.Path = dir
	sr.Entry.WatchedEpisodes = 1
	require.NoError(t, store.SaveSeries(ctx, sr))

	_, _, err := m.PlayEpisodeCmd(ctx, "kaiba")
	assert.ErrorContains(t, err, "episode 2")
}
