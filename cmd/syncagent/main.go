// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumenlearn Authors

package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/lumenlearn/go-offline-sync/internal/adapter"
	"github.com/lumenlearn/go-offline-sync/internal/bandwidth"
	"github.com/lumenlearn/go-offline-sync/internal/config"
	"github.com/lumenlearn/go-offline-sync/internal/connectivity"
	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/internal/server"
	"github.com/lumenlearn/go-offline-sync/internal/service"
	"github.com/lumenlearn/go-offline-sync/internal/store"
	"github.com/lumenlearn/go-offline-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetAgentConfig()
	if err != nil {
		logger.NewLogger("sync-agent").Fatal().Err(err).Msg("error getting configs")
	}

	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	monitor := connectivity.NewMonitor(connectivity.NewInterfaceProber(cfg.Remote.ProbeURL), 0, log)
	monitor.Start(ctx)
	defer monitor.Close()

	estimator := bandwidth.NewEstimator(cfg.Sync.LowBandwidthKbps, cfg.Remote.ProbeURL, log)
	estimator.Seed(monitor.State())
	go reseedOnChange(monitor, estimator)

	remote, err := adapter.NewHTTPRemoteAdapter(cfg.Remote, estimator, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote adapter")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewServices(storages, remote, monitor, estimator, estimator, nil, *cfg, log)

	jobs := workers.NewWorkers(services, monitor, cfg.Sync, log)
	jobs.Start(ctx)
	defer jobs.Stop()

	debug, err := server.NewServer(server.NewHandler(services.Orchestrator, buildVersion, log), cfg.Server, log)
	switch {
	case errors.Is(err, server.ErrNoDebugAddress):
		log.Info().Msg("diagnostics endpoint disabled")
	case err != nil:
		log.Fatal().Err(err).Msg("create diagnostics server")
	default:
		debug.RunServer()
		defer debug.Shutdown()
	}

	<-ctx.Done()
	log.Info().Msg("shutting down")
}

// reseedOnChange re-seeds the bandwidth estimate whenever the connectivity
// class changes, so the estimate tracks the link type until real transfer
// samples arrive.
func reseedOnChange(monitor *connectivity.Monitor, estimator *bandwidth.Estimator) {
	changes, cancel := monitor.Changes()
	defer cancel()

	for change := range changes {
		estimator.Seed(change.Current)
	}
}

func newLogger(cfg *config.AgentConfig) *logger.Logger {
	if cfg.App.LogFile != "" {
		return logger.NewFileLogger("sync-agent", cfg.App.LogFile)
	}
	return logger.NewLogger("sync-agent")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
