package manager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Acizza/anup/pkg/remote"
	"github.com/Acizza/anup/pkg/remote/mocks"
	"github.com/Acizza/anup/pkg/series"
)

func TestSyncPushMarksEntryClean(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	ctx := context.Background()

	svc.EXPECT().IsOffline().Return(false)
	svc.EXPECT().UpdateListEntry(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry *series.Entry) error {
		assert.Equal(t, int32(1), entry.ID)
		assert.Equal(t, int32(5), entry.WatchedEpisodes)
		return nil
	})

	m, store := initManager(t, svc, Options{})
	sr := seedSeries(t, store, 1, "kaiba")
	sr.Entry.WatchedEpisodes = 5
	sr.Entry.Status = series.StatusWatching
	sr.Entry.NeedsSync = true
	require.NoError(t, store.SaveEntry(ctx, sr.Entry))

	require.NoError(t, m.Sync().Push(ctx, 1))

	persisted, err := store.GetEntry(ctx, 1)
	require.NoError(t, err)
	assert.False(t, persisted.NeedsSync)
	assert.Equal(t, int32(5), persisted.WatchedEpisodes)
}

func TestSyncPushFailureLeavesEntryDirty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	ctx := context.Background()

	svc.EXPECT().IsOffline().Return(false)
	svc.EXPECT().UpdateListEntry(gomock.Any(), gomock.Any()).Return(errors.New("service unavailable"))

	m, store := initManager(t, svc, Options{})
	sr := seedSeries(t, store, 1, "kaiba")
	sr.Entry.WatchedEpisodes = 5
	sr.Entry.NeedsSync = true
	require.NoError(t, store.SaveEntry(ctx, sr.Entry))

	err := m.Sync().Push(ctx, 1)
	assert.Error(t, err)

	persisted, err := store.GetEntry(ctx, 1)
	require.NoError(t, err)
	assert.True(t, persisted.NeedsSync)
	assert.Equal(t, int32(5), persisted.WatchedEpisodes)
}

func TestSyncPushOffline(t *testing.T) {
	m, store := initManager(t, remote.NewOffline(), Options{})
	ctx := context.Background()

	sr := seedSeries(t, store, 1, "kaiba")
	sr.Entry.NeedsSync = true
	require.NoError(t, store.SaveEntry(ctx, sr.Entry))

	require.NoError(t, m.Sync().Push(ctx, 1))

	// changes stay flagged so a later online sync picks them up
	persisted, err := store.GetEntry(ctx, 1)
	require.NoError(t, err)
	assert.True(t, persisted.NeedsSync)
}

func TestSyncPushSkipsCleanEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	svc.EXPECT().IsOffline().Return(false)

	m, store := initManager(t, svc, Options{})
	seedSeries(t, store, 1, "kaiba")

	require.NoError(t, m.Sync().Push(context.Background(), 1))
}

func TestSyncPull(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	ctx := context.Background()

	remoteEntry := &series.Entry{
		ID:              1,
		WatchedEpisodes: 7,
		Score:           ptr(int32(90)),
		Status:          series.StatusWatching,
		StartDate:       testDay(),
	}
	svc.EXPECT().IsOffline().Return(false)
	svc.EXPECT().GetListEntry(gomock.Any(), int32(1)).Return(remoteEntry, nil)

	m, store := initManager(t, svc, Options{})
	sr := seedSeries(t, store, 1, "kaiba")
	sr.Entry.WatchedEpisodes = 3
	sr.Entry.NeedsSync = true
	require.NoError(t, store.SaveEntry(ctx, sr.Entry))

	require.NoError(t, m.Sync().Pull(ctx, 1))

	persisted, err := store.GetEntry(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, *remoteEntry, *persisted)
	assert.False(t, persisted.NeedsSync)
}

func TestSyncPullMissingEntryResetsLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	ctx := context.Background()

	svc.EXPECT().IsOffline().Return(false)
	svc.EXPECT().GetListEntry(gomock.Any(), int32(1)).Return(nil, nil)

	m, store := initManager(t, svc, Options{})
	sr := seedSeries(t, store, 1, "kaiba")
	sr.Entry.WatchedEpisodes = 3
	require.NoError(t, store.SaveEntry(ctx, sr.Entry))

	require.NoError(t, m.Sync().Pull(ctx, 1))

	persisted, err := store.GetEntry(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, series.Entry{ID: 1, Status: series.StatusPlanToWatch}, *persisted)
}

func TestSyncPullOffline(t *testing.T) {
	m, store := initManager(t, remote.NewOffline(), Options{})
	seedSeries(t, store, 1, "kaiba")

	err := m.Sync().Pull(context.Background(), 1)
	assert.ErrorIs(t, err, remote.ErrNeedConnection)
}

func TestSyncPushAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	ctx := context.Background()

	svc.EXPECT().IsOffline().Return(false).AnyTimes()
	svc.EXPECT().UpdateListEntry(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry *series.Entry) error {
		if entry.ID == 2 {
			return errors.New("service unavailable")
		}
		return nil
	}).Times(2)

	m, store := initManager(t, svc, Options{})
	for id, nickname := range map[int32]string{1: "kaiba", 2: "clannad"} {
		sr := seedSeries(t, store, id, nickname)
		sr.Entry.NeedsSync = true
		require.NoError(t, store.SaveEntry(ctx, sr.Entry))
	}

	err := m.Sync().PushAll(ctx)
	assert.ErrorContains(t, err, "series 2")

	first, err := store.GetEntry(ctx, 1)
	require.NoError(t, err)
	assert.False(t, first.NeedsSync)

	second, err := store.GetEntry(ctx, 2)
	require.NoError(t, err)
	assert.True(t, second.NeedsSync)
}

func TestMutationWaitsForInflightSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	svc.EXPECT().IsOffline().Return(false)
	svc.EXPECT().UpdateListEntry(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, *series.Entry) error {
		close(entered)
		<-release
		return nil
	})

	m, store := initManager(t, svc, Options{})
	sr := seedSeries(t, store, 1, "kaiba")
	sr.Entry.WatchedEpisodes = 5
	sr.Entry.Status = series.StatusWatching
	sr.Entry.NeedsSync = true
	require.NoError(t, store.SaveEntry(ctx, sr.Entry))

	pushDone := make(chan error, 1)
	go func() {
		pushDone <- m.Sync().Push(ctx, 1)
	}()
	<-entered

	mutated := make(chan struct{})
	go func() {
		_, err := m.AdvanceEpisode(ctx, "kaiba")
		assert.NoError(t, err)
		close(mutated)
	}()

	select {
	case <-mutated:
		t.Fatal("mutation applied while a sync was in flight")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-pushDone)

	select {
	case <-mutated:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the queued mutation")
	}

	// the push saw episode 5; the mutation landed on top of the clean entry
	persisted, err := store.GetEntry(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(6), persisted.WatchedEpisodes)
	assert.True(t, persisted.NeedsSync)
}

func TestSyncEngineRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.EXPECT().IsOffline().Return(false)
	svc.EXPECT().UpdateListEntry(gomock.Any(), gomock.Any()).Return(nil)

	m, store := initManager(t, svc, Options{})
	sr := seedSeries(t, store, 1, "kaiba")
	sr.Entry.NeedsSync = true
	require.NoError(t, store.SaveEntry(ctx, sr.Entry))

	go m.Sync().Run(ctx)

	id, err := m.Sync().EnqueuePush(ctx, 1)
	require.NoError(t, err)

	select {
	case res := <-m.Sync().Results():
		assert.Equal(t, id, res.RequestID)
		assert.Equal(t, int32(1), res.SeriesID)
		assert.False(t, res.Pull)
		assert.NoError(t, res.Err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for sync result")
	}

	persisted, err := store.GetEntry(ctx, 1)
	require.NoError(t, err)
	assert.False(t, persisted.NeedsSync)
}
