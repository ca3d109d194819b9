package split

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Acizza/anup/pkg/episode"
	"github.com/Acizza/anup/pkg/remote/mocks"
	"github.com/Acizza/anup/pkg/series"
)

func ptr[T any](v T) *T {
	return &v
}

func chainOf(counts ...int32) []series.Info {
	chain := make([]series.Info, len(counts))
	for i, count := range counts {
		chain[i] = series.Info{
			ID:             int32(i + 1),
			TitlePreferred: fmt.Sprintf("Winter Story %d", i+1),
			Episodes:       count,
		}
	}
	return chain
}

func mergedFiles(count int32) []episode.RawFile {
	files := make([]episode.RawFile, 0, count)
	for ep := int32(1); ep <= count; ep++ {
		files = append(files, episode.RawFile{
			Filename: fmt.Sprintf("Winter Story - %02d.mkv", ep),
			Episode:  ep,
		})
	}
	return files
}

func TestPartitionCumulativeOffsets(t *testing.T) {
	plan := Partition(chainOf(12, 13, 10), mergedFiles(35))

	require.Len(t, plan.Seasons, 3)
	assert.Empty(t, plan.Unassigned)

	second := plan.Seasons[1]
	assert.Equal(t, int32(13), second.StartEpisode)
	require.Len(t, second.Files, 13)
	assert.Equal(t, int32(13), second.Files[0].Episode)
	assert.Equal(t, int32(25), second.Files[len(second.Files)-1].Episode)

	third := plan.Seasons[2]
	assert.Equal(t, int32(26), third.StartEpisode)
	require.Len(t, third.Files, 10)
}

func TestPartitionUnassignedBeyondChain(t *testing.T) {
	plan := Partition(chainOf(12), mergedFiles(14))

	require.Len(t, plan.Seasons, 1)
	require.Len(t, plan.Unassigned, 2)
	assert.Equal(t, int32(13), plan.Unassigned[0].Episode)
}

func TestPartitionUnknownCountStopsChain(t *testing.T) {
	plan := Partition(chainOf(12, 0, 10), mergedFiles(20))

	// only the first season's count can be trusted
	require.Len(t, plan.Seasons, 1)
	require.Len(t, plan.Unassigned, 8)
	assert.Equal(t, int32(13), plan.Unassigned[0].Episode)
}

func TestNameFormat(t *testing.T) {
	format, err := NewNameFormat("{title} - {episode}.mkv")
	require.NoError(t, err)
	assert.Equal(t, "Winter Story - 03.mkv", format.Filename("Winter Story", 3))

	_, err = NewNameFormat("{episode}.mkv")
	assert.ErrorIs(t, err, ErrMissingTitleToken)

	_, err = NewNameFormat("{title}.mkv")
	assert.ErrorIs(t, err, ErrMissingEpisodeToken)
}

func TestSequelChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	root := series.Info{ID: 1, TitlePreferred: "Winter Story", Episodes: 12, Sequel: ptr(int32(2))}
	second := series.Info{ID: 2, TitlePreferred: "Winter Story 2", Episodes: 13, Sequel: ptr(int32(3))}
	third := series.Info{ID: 3, TitlePreferred: "Winter Story 3", Episodes: 10}

	svc.EXPECT().SearchInfoByID(gomock.Any(), int32(2)).Return(second, nil)
	svc.EXPECT().SearchInfoByID(gomock.Any(), int32(3)).Return(third, nil)

	var confirmed []string
	confirm := func(info series.Info) (bool, error) {
		confirmed = append(confirmed, info.TitlePreferred)
		return true, nil
	}

	chain, err := SequelChain(context.Background(), svc, root, confirm)
	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, []string{"Winter Story 2", "Winter Story 3"}, confirmed)
}

func TestSequelChainDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	root := series.Info{ID: 1, Episodes: 12, Sequel: ptr(int32(2))}
	svc.EXPECT().SearchInfoByID(gomock.Any(), int32(2)).Return(series.Info{ID: 2, Episodes: 13}, nil)

	decline := func(series.Info) (bool, error) { return false, nil }

	_, err := SequelChain(context.Background(), svc, root, decline)
	assert.ErrorIs(t, err, ErrUnconfirmedSeason)
}

func TestApplyCreatesSymlinks(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()

	files := mergedFiles(25)
	for _, file := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, file.Filename), []byte("x"), 0o644))
	}

	plan := Partition(chainOf(12, 13), files)
	format, err := NewNameFormat(DefaultNameFormat)
	require.NoError(t, err)

	linked, err := plan.Apply(dir, outDir, format)
	require.NoError(t, err)
	assert.Equal(t, 25, linked)

	link := filepath.Join(outDir, "Winter Story 2", "Winter Story 2 - 01.mkv")
	target, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Winter Story - 13.mkv"), target)

	// the originals never move
	_, err = os.Stat(filepath.Join(dir, "Winter Story - 13.mkv"))
	require.NoError(t, err)

	// re-running tolerates existing links
	linked, err = plan.Apply(dir, outDir, format)
	require.NoError(t, err)
	assert.Equal(t, 25, linked)
}
