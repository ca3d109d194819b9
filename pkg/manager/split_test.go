package manager

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Acizza/anup/pkg/remote/mocks"
	"github.com/Acizza/anup/pkg/series"
)

func TestSplitSeasonsTrackedSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	ctx := context.Background()

	dir := t.TempDir()
	writeEpisodes(t, dir, "Show - 01.mkv", "Show - 02.mkv", "Show - 03.mkv")

	root := series.Info{ID: 1, TitlePreferred: "Show", TitleRomaji: "Show", Episodes: 2, EpisodeLengthMins: 24, Sequel: ptr(int32(2))}
	sequel := series.Info{ID: 2, TitlePreferred: "Show Season 2", TitleRomaji: "Show 2", Episodes: 12, EpisodeLengthMins: 24}
	svc.EXPECT().SearchInfoByID(gomock.Any(), int32(1)).Return(root, nil)
	svc.EXPECT().SearchInfoByID(gomock.Any(), int32(2)).Return(sequel, nil)

	m, store := initManager(t, svc, Options{})

	sr := series.NewSeries(series.Config{ID: 1, Nickname: "show", Path: dir}, root)
	require.NoError(t, store.SaveSeries(ctx, sr))

	outDir := t.TempDir()
	res, err := m.SplitSeasons(ctx, SplitParams{Nickname: "show", OutDir: outDir})
	require.NoError(t, err)

	require.Len(t, res.Plan.Seasons, 2)
	assert.Equal(t, 3, res.Links)
	assert.Empty(t, res.Plan.Unassigned)

	// episode 3 is the sequel's first episode
	target, err := os.Readlink(filepath.Join(outDir, "Show Season 2", "Show Season 2 - 01.mkv"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Show - 03.mkv"), target)
}

func TestSplitSeasonsUnknownDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	ctx := context.Background()

	dir := t.TempDir()
	writeEpisodes(t, dir, "Show - 01.mkv", "Show - 02.mkv")

	root := series.Info{ID: 7, TitlePreferred: "Show", TitleRomaji: "Show", Episodes: 2, EpisodeLengthMins: 24}
	svc.EXPECT().SearchInfoByName(gomock.Any(), "Show").Return([]series.Info{root}, nil)
	svc.EXPECT().SearchInfoByID(gomock.Any(), int32(7)).Return(root, nil)

	m, _ := initManager(t, svc, Options{})

	res, err := m.SplitSeasons(ctx, SplitParams{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Links)
	require.Len(t, res.Plan.Seasons, 1)
}
