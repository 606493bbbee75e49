package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/internal/mock"
	"github.com/lumenlearn/go-offline-sync/internal/store/mocks"
	"github.com/lumenlearn/go-offline-sync/models"
)

type orchestratorMocks struct {
	queue        *mock.MockQueueService
	downloads    *mock.MockDownloadService
	analytics    *mocks.MockAnalyticsRepository
	remote       *mock.MockRemoteAdapter
	connectivity *mock.MockConnectivitySource
	bandwidth    *mock.MockBandwidthSource
}

func newTestOrchestrator(t *testing.T, ctrl *gomock.Controller) (*syncOrchestrator, orchestratorMocks) {
	t.Helper()
	m := orchestratorMocks{
		queue:        mock.NewMockQueueService(ctrl),
		downloads:    mock.NewMockDownloadService(ctrl),
		analytics:    mocks.NewMockAnalyticsRepository(ctrl),
		remote:       mock.NewMockRemoteAdapter(ctrl),
		connectivity: mock.NewMockConnectivitySource(ctrl),
		bandwidth:    mock.NewMockBandwidthSource(ctrl),
	}

	orch := NewSyncOrchestrator(
		m.queue, m.downloads, m.analytics, m.remote,
		m.connectivity, m.bandwidth, nil, logger.Nop(),
	).(*syncOrchestrator)

	return orch, m
}

// expectPass wires the mock calls of one successful pass with nothing to
// upload. Phase calls receive the orchestrator's derived pass context, so
// the expectations cannot match on the caller's context value.
func expectPass(m orchestratorMocks, applied, downloaded int) {
	m.queue.EXPECT().Drain(gomock.Any()).Return(applied, nil)
	m.downloads.EXPECT().DrainQueued(gomock.Any()).Return(downloaded, nil)
	m.analytics.EXPECT().GetUnsynced(gomock.Any()).Return(nil, nil)
}

func TestOrchestrator_Sync_CompletesPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	events, cancelSub := orch.Events()
	defer cancelSub()

	m.connectivity.EXPECT().IsOnline().Return(true)
	expectPass(m, 2, 1)

	require.NoError(t, orch.Sync(ctx, false))
	assert.Equal(t, models.SyncCompleted, orch.Status())

	var last models.SyncEvent
	for drained := false; !drained; {
		select {
		case evt := <-events:
			last = evt
		default:
			drained = true
		}
	}
	assert.Equal(t, models.SyncCompleted, last.Status)
	assert.InDelta(t, 1.0, last.Progress, 1e-9)
}

func TestOrchestrator_Sync_OfflineIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)

	m.connectivity.EXPECT().IsOnline().Return(false)

	err := orch.Sync(context.Background(), false)
	assert.ErrorIs(t, err, ErrEngineOffline)
	assert.Equal(t, models.SyncIdle, orch.Status())
}

func TestOrchestrator_Sync_WhilePaused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)

	m.downloads.EXPECT().CancelAll()
	orch.Pause()

	err := orch.Sync(context.Background(), false)
	assert.ErrorIs(t, err, ErrSyncPaused)
	assert.Equal(t, models.SyncPaused, orch.Status())
}

func TestOrchestrator_Sync_SingleFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	passStarted := make(chan struct{})
	releasePass := make(chan struct{})

	m.connectivity.EXPECT().IsOnline().Return(true)
	m.queue.EXPECT().Drain(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
		close(passStarted)
		<-releasePass
		return 0, nil
	})
	m.downloads.EXPECT().DrainQueued(gomock.Any()).Return(0, nil)
	m.analytics.EXPECT().GetUnsynced(gomock.Any()).Return(nil, nil)

	done := make(chan error, 1)
	go func() { done <- orch.Sync(ctx, false) }()

	<-passStarted
	// a non-forced call during the pass is a no-op: no extra expectations
	require.NoError(t, orch.Sync(ctx, false))

	close(releasePass)
	require.NoError(t, <-done)
	assert.Equal(t, models.SyncCompleted, orch.Status())
}

func TestOrchestrator_Sync_ForcedFollowUpPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	passStarted := make(chan struct{})
	releasePass := make(chan struct{})

	m.connectivity.EXPECT().IsOnline().Return(true)

	first := m.queue.EXPECT().Drain(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
		close(passStarted)
		<-releasePass
		return 0, nil
	})
	m.downloads.EXPECT().DrainQueued(gomock.Any()).Return(0, nil).Times(2)
	m.analytics.EXPECT().GetUnsynced(gomock.Any()).Return(nil, nil).Times(2)
	m.queue.EXPECT().Drain(gomock.Any()).Return(0, nil).After(first)

	done := make(chan error, 1)
	go func() { done <- orch.Sync(ctx, false) }()

	<-passStarted
	// forced while in flight: one follow-up pass must run afterwards
	require.NoError(t, orch.Sync(ctx, true))

	close(releasePass)
	require.NoError(t, <-done)
	assert.Equal(t, models.SyncCompleted, orch.Status())
}

func TestOrchestrator_Sync_QueueDrainErrorFailsPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	m.connectivity.EXPECT().IsOnline().Return(true)
	m.queue.EXPECT().Drain(gomock.Any()).Return(0, errors.New("database is locked"))

	err := orch.Sync(ctx, false)
	require.Error(t, err)
	assert.Equal(t, models.SyncFailed, orch.Status())
}

func TestOrchestrator_Sync_ContentDrainErrorDoesNotFailPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	m.connectivity.EXPECT().IsOnline().Return(true)
	m.queue.EXPECT().Drain(gomock.Any()).Return(0, nil)
	m.downloads.EXPECT().DrainQueued(gomock.Any()).Return(0, errors.New("cdn unreachable"))
	m.analytics.EXPECT().GetUnsynced(gomock.Any()).Return(nil, nil)

	require.NoError(t, orch.Sync(ctx, false))
	assert.Equal(t, models.SyncCompleted, orch.Status())
}

func TestOrchestrator_Sync_FlushesAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	pending := []models.AnalyticsEvent{
		{ID: 1, Name: "app_opened"},
		{ID: 2, Name: "lesson_completed"},
	}

	m.connectivity.EXPECT().IsOnline().Return(true)
	m.queue.EXPECT().Drain(gomock.Any()).Return(0, nil)
	m.downloads.EXPECT().DrainQueued(gomock.Any()).Return(0, nil)
	m.analytics.EXPECT().GetUnsynced(gomock.Any()).Return(pending, nil)
	m.remote.EXPECT().UploadAnalytics(gomock.Any(), pending).Return(nil)
	m.analytics.EXPECT().MarkSynced(gomock.Any(), []int64{1, 2}).Return(nil)

	require.NoError(t, orch.Sync(ctx, false))
}

func TestOrchestrator_Sync_AnalyticsUploadFailureKeepsBuffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	pending := []models.AnalyticsEvent{{ID: 1, Name: "app_opened"}}

	m.connectivity.EXPECT().IsOnline().Return(true)
	m.queue.EXPECT().Drain(gomock.Any()).Return(0, nil)
	m.downloads.EXPECT().DrainQueued(gomock.Any()).Return(0, nil)
	m.analytics.EXPECT().GetUnsynced(gomock.Any()).Return(pending, nil)
	m.remote.EXPECT().UploadAnalytics(gomock.Any(), pending).Return(errors.New("http 503"))
	// MarkSynced must not be called: the batch re-sends next pass

	require.NoError(t, orch.Sync(ctx, false))
	assert.Equal(t, models.SyncCompleted, orch.Status())
}

func TestOrchestrator_PauseDuringPassKeepsPausedState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)

	events, cancelSub := orch.Events()
	defer cancelSub()

	m.connectivity.EXPECT().IsOnline().Return(true)
	m.downloads.EXPECT().CancelAll()
	m.queue.EXPECT().Drain(gomock.Any()).DoAndReturn(
		func(passCtx context.Context) (int, error) {
			orch.Pause()
			// pausing aborts the pass between operations
			assert.ErrorIs(t, passCtx.Err(), context.Canceled)
			// the drain finishing anyway must not override the pause
			return 2, nil
		})

	err := orch.Sync(context.Background(), false)
	assert.ErrorIs(t, err, ErrSyncPaused)
	assert.Equal(t, models.SyncPaused, orch.Status())

	for drained := false; !drained; {
		select {
		case evt := <-events:
			assert.NotEqual(t, models.SyncCompleted, evt.Status,
				"pass ending while paused must not publish a completion")
			assert.NotEqual(t, models.SyncFailed, evt.Status,
				"pass ending while paused must not publish a failure")
		default:
			drained = true
		}
	}
}

func TestOrchestrator_PauseAndResume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	m.downloads.EXPECT().CancelAll()
	orch.Pause()
	assert.Equal(t, models.SyncPaused, orch.Status())

	// resuming offline does not start a pass
	m.connectivity.EXPECT().IsOnline().Return(false)
	require.NoError(t, orch.Resume(ctx))
	assert.Equal(t, models.SyncIdle, orch.Status())
}

func TestOrchestrator_Resume_OnlineStartsPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	m.downloads.EXPECT().CancelAll()
	orch.Pause()

	m.connectivity.EXPECT().IsOnline().Return(true).Times(2)
	expectPass(m, 0, 0)

	require.NoError(t, orch.Resume(ctx))
	assert.Equal(t, models.SyncCompleted, orch.Status())
}

func TestOrchestrator_Cleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	m.downloads.EXPECT().SweepExpired(ctx).Return(3, nil)

	require.NoError(t, orch.Cleanup(ctx))
}

func TestOrchestrator_TrackEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	properties := json.RawMessage(`{"lesson_id":"l-1"}`)
	m.analytics.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event models.AnalyticsEvent) error {
			assert.Equal(t, "lesson_completed", event.Name)
			assert.Equal(t, properties, event.Properties)
			assert.WithinDuration(t, time.Now().UTC(), event.CreatedAt, time.Minute)
			return nil
		})

	require.NoError(t, orch.TrackEvent(ctx, "lesson_completed", properties))
}

func TestOrchestrator_Statistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	contents := []models.OfflineContent{
		{ID: "v-1", SizeBytes: 100, IsDownloaded: true},
		{ID: "v-2", SizeBytes: 50},
	}

	m.downloads.EXPECT().GetAllContent(ctx).Return(contents, nil)
	m.queue.EXPECT().Pending(ctx).Return(4, nil)
	m.bandwidth.EXPECT().CurrentKbps().Return(1200.0)
	m.bandwidth.EXPECT().IsLowBandwidth().Return(true)
	m.connectivity.EXPECT().State().Return(models.ConnectivityCellular)

	stats, err := orch.Statistics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalContent)
	assert.Equal(t, 1, stats.DownloadedContent)
	assert.Equal(t, int64(150), stats.TotalBytes)
	assert.Equal(t, int64(100), stats.DownloadedBytes)
	assert.Equal(t, 4, stats.PendingOperations)
	assert.InDelta(t, 1200.0, stats.BandwidthKbps, 1e-9)
	assert.True(t, stats.LowBandwidth)
	assert.Equal(t, models.ConnectivityCellular, stats.Connectivity)
	assert.Equal(t, models.SyncIdle, stats.Status)
}
