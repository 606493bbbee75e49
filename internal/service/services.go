package service

import (
	"github.com/lumenlearn/go-offline-sync/internal/adapter"
	"github.com/lumenlearn/go-offline-sync/internal/config"
	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/internal/store"
)

// Services bundles the engine's service layer for wiring into workers, the
// diagnostics server and the host application.
type Services struct {
	Queue        QueueService
	Downloads    DownloadService
	Orchestrator Orchestrator
}

// NewServices wires the service layer on top of the storages and transport.
// samples receives timed-transfer observations from downloads; pass the
// bandwidth estimator. userData may be nil.
func NewServices(
	storages *store.Storages,
	remote adapter.RemoteAdapter,
	connectivity ConnectivitySource,
	bandwidth BandwidthSource,
	samples adapter.SampleRecorder,
	userData UserDataSyncer,
	cfg config.AgentConfig,
	logger *logger.Logger,
) *Services {
	queueSvc := NewQueueService(storages.Queue, storages.Entities, remote, connectivity, logger)
	downloadSvc := NewDownloadManager(
		storages.Content,
		bandwidth,
		connectivity,
		samples,
		cfg.Storage.ContentDir,
		cfg.Sync.MaxParallelDownloads,
		cfg.Remote.RequestTimeout,
		logger,
	)

	return &Services{
		Queue:        queueSvc,
		Downloads:    downloadSvc,
		Orchestrator: NewSyncOrchestrator(
			queueSvc,
			downloadSvc,
			storages.Analytics,
			remote,
			connectivity,
			bandwidth,
			userData,
			logger,
		),
	}
}
