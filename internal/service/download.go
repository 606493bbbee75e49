package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/lumenlearn/go-offline-sync/internal/adapter"
	"github.com/lumenlearn/go-offline-sync/internal/events"
	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/internal/store"
	"github.com/lumenlearn/go-offline-sync/internal/utils"
	"github.com/lumenlearn/go-offline-sync/models"
)

const (
	// Low-bandwidth filter: only items at or under this size with high or
	// critical priority are downloaded on a constrained link.
	lowBandwidthMaxBytes = 50 << 20

	downloadChunkSize = 32 << 10
	partSuffix        = ".part"

	// Orphaned partial files older than this are cleared by the sweep.
	partFileMaxAge = 24 * time.Hour
)

type downloadManager struct {
	registry     store.ContentRepository
	bandwidth    BandwidthSource
	connectivity ConnectivitySource
	samples      adapter.SampleRecorder
	client       *resty.Client
	contentDir   string
	logger       *logger.Logger

	progress *events.Broadcaster[models.DownloadProgress]
	sem      chan struct{}

	mu     sync.Mutex
	active map[string]context.CancelFunc
}

// NewDownloadManager creates a [DownloadService] storing files under
// contentDir in content-type-scoped subdirectories. maxParallel bounds
// concurrent transfers; samples (may be nil) receives timed-transfer
// observations for the bandwidth estimate.
func NewDownloadManager(
	registry store.ContentRepository,
	bandwidth BandwidthSource,
	connectivity ConnectivitySource,
	samples adapter.SampleRecorder,
	contentDir string,
	maxParallel int,
	requestTimeout time.Duration,
	logger *logger.Logger,
) DownloadService {
	if maxParallel <= 0 {
		maxParallel = 3
	}

	client := resty.New().SetDoNotParseResponse(true)
	if requestTimeout > 0 {
		client.SetTimeout(requestTimeout)
	}

	return &downloadManager{
		registry:     registry,
		bandwidth:    bandwidth,
		connectivity: connectivity,
		samples:      samples,
		client:       client,
		contentDir:   contentDir,
		logger:       logger,
		progress:     events.NewBroadcaster[models.DownloadProgress](),
		sem:          make(chan struct{}, maxParallel),
		active:       make(map[string]context.CancelFunc),
	}
}

// QueueContentForDownload implements [DownloadService]. The upsert makes
// registration idempotent by id: a second call overwrites, never duplicates.
func (m *downloadManager) QueueContentForDownload(ctx context.Context, content models.OfflineContent) error {
	if len(content.DownloadURLs) == 0 {
		return ErrNoDownloadURLs
	}
	if content.CreatedAt.IsZero() {
		content.CreatedAt = time.Now().UTC()
	}
	content.IsDownloaded = false
	content.DownloadProgress = 0
	content.ContentHash = ""

	if err := m.registry.Upsert(ctx, content); err != nil {
		return fmt.Errorf("register content for download: %w", err)
	}

	m.logger.Debug().
		Str("func", "downloadManager.QueueContentForDownload").
		Str("content_id", content.ID).
		Str("type", content.Type).
		Int64("size_bytes", content.SizeBytes).
		Msg("content registered for offline use")

	if m.connectivity.IsOnline() && !m.bandwidth.IsLowBandwidth() {
		go func() {
			if err := m.Download(context.Background(), content); err != nil && !errors.Is(err, context.Canceled) {
				m.logger.Err(err).
					Str("func", "downloadManager.QueueContentForDownload").
					Str("content_id", content.ID).
					Msg("immediate download failed; item stays queued")
			}
		}()
	}

	return nil
}

// Download implements [DownloadService]. At most one transfer per content id
// runs at a time: a request for an id already in flight is a no-op, so the
// immediate-start path and a concurrent drain pass cannot write the same
// partial file.
func (m *downloadManager) Download(ctx context.Context, content models.OfflineContent) error {
	dlCtx, cancel := context.WithCancel(ctx)

	m.mu.Lock()
	if _, inFlight := m.active[content.ID]; inFlight {
		m.mu.Unlock()
		cancel()
		m.logger.Debug().
			Str("func", "downloadManager.Download").
			Str("content_id", content.ID).
			Msg("download already in flight; duplicate request ignored")
		return nil
	}
	m.active[content.ID] = cancel
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		delete(m.active, content.ID)
		m.mu.Unlock()
		cancel()
	}()

	select {
	case m.sem <- struct{}{}:
	case <-dlCtx.Done():
		return dlCtx.Err()
	}
	defer func() { <-m.sem }()

	typeDir := filepath.Join(m.contentDir, safeDirName(content.Type))
	if err := os.MkdirAll(typeDir, 0o755); err != nil {
		return fmt.Errorf("create content directory: %w", err)
	}

	partPath := filepath.Join(typeDir, content.ID+partSuffix)
	out, err := os.Create(partPath)
	if err != nil {
		return fmt.Errorf("create partial file: %w", err)
	}

	hasher := utils.NewContentHasher()
	written, err := m.fetchAll(dlCtx, content, io.MultiWriter(out, hasher))
	closeErr := out.Close()
	if err != nil {
		// partial file intentionally left behind; the sweep clears stale ones
		return err
	}
	if closeErr != nil {
		return fmt.Errorf("close partial file: %w", closeErr)
	}

	hash := hasher.Sum()
	finalPath := filepath.Join(typeDir, hash)
	if _, statErr := os.Stat(finalPath); statErr == nil {
		// identical bytes already on disk; drop the duplicate
		if rmErr := os.Remove(partPath); rmErr != nil {
			m.logger.Err(rmErr).
				Str("func", "downloadManager.Download").
				Str("content_id", content.ID).
				Msg("failed to remove duplicate partial file")
		}
	} else if renameErr := os.Rename(partPath, finalPath); renameErr != nil {
		return fmt.Errorf("store content under hash: %w", renameErr)
	}

	if err = m.registry.MarkDownloaded(ctx, content.ID, hash); err != nil {
		return fmt.Errorf("mark content downloaded: %w", err)
	}
	m.progress.Publish(models.DownloadProgress{ContentID: content.ID, Progress: 1.0})

	m.logger.Info().
		Str("func", "downloadManager.Download").
		Str("content_id", content.ID).
		Str("content_hash", hash).
		Int64("bytes", written).
		Msg("content downloaded")

	return nil
}

// fetchAll streams every URL of the record in order into dst, persisting
// fractional progress after each chunk so it survives restarts.
func (m *downloadManager) fetchAll(ctx context.Context, content models.OfflineContent, dst io.Writer) (int64, error) {
	var written int64

	for _, rawURL := range content.DownloadURLs {
		n, err := m.fetchOne(ctx, content, rawURL, dst, written)
		written += n
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

func (m *downloadManager) fetchOne(ctx context.Context, content models.OfflineContent, rawURL string, dst io.Writer, alreadyWritten int64) (int64, error) {
	start := time.Now()

	resp, err := m.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() >= 300 {
		return 0, fmt.Errorf("fetch %s: http %d", rawURL, resp.StatusCode())
	}

	var written int64
	buf := make([]byte, downloadChunkSize)
	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return written, ctxErr
		}

		n, readErr := body.Read(buf)
		if n > 0 {
			if _, writeErr := dst.Write(buf[:n]); writeErr != nil {
				return written, fmt.Errorf("write chunk: %w", writeErr)
			}
			written += int64(n)
			m.reportProgress(ctx, content, alreadyWritten+written)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return written, fmt.Errorf("read chunk from %s: %w", rawURL, readErr)
		}
	}

	if m.samples != nil {
		m.samples.RecordSample(written, time.Since(start))
	}

	return written, nil
}

// reportProgress persists and publishes the fraction for totalWritten bytes.
// Capped below 1.0 until MarkDownloaded makes it final, which preserves the
// progress==1.0 iff downloaded invariant.
func (m *downloadManager) reportProgress(ctx context.Context, content models.OfflineContent, totalWritten int64) {
	if content.SizeBytes <= 0 {
		return
	}

	fraction := float64(totalWritten) / float64(content.SizeBytes)
	if fraction > 0.99 {
		fraction = 0.99
	}

	if err := m.registry.UpdateProgress(ctx, content.ID, fraction); err != nil {
		m.logger.Err(err).
			Str("func", "downloadManager.reportProgress").
			Str("content_id", content.ID).
			Msg("failed to persist download progress")
	}
	m.progress.Publish(models.DownloadProgress{ContentID: content.ID, Progress: fraction})
}

// DrainQueued implements [DownloadService]. Downloads run concurrently with
// each other (bounded by the semaphore) because they touch disjoint files.
func (m *downloadManager) DrainQueued(ctx context.Context) (int, error) {
	items, err := m.registry.GetUndownloaded(ctx)
	if err != nil {
		return 0, fmt.Errorf("load undownloaded content: %w", err)
	}

	items = m.filterForBandwidth(items)
	if len(items) == 0 {
		return 0, nil
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	completed := 0

	for _, item := range items {
		wg.Add(1)
		go func(content models.OfflineContent) {
			defer wg.Done()
			if dlErr := m.Download(ctx, content); dlErr != nil {
				if !errors.Is(dlErr, context.Canceled) {
					m.logger.Err(dlErr).
						Str("func", "downloadManager.DrainQueued").
						Str("content_id", content.ID).
						Msg("content download failed; will retry next pass")
				}
				return
			}
			mu.Lock()
			completed++
			mu.Unlock()
		}(item)
	}
	wg.Wait()

	return completed, nil
}

// filterForBandwidth excludes large or low-priority items on a constrained
// link. Everything passes on a normal link.
func (m *downloadManager) filterForBandwidth(items []models.OfflineContent) []models.OfflineContent {
	if !m.bandwidth.IsLowBandwidth() {
		return items
	}

	eligible := make([]models.OfflineContent, 0, len(items))
	for _, item := range items {
		if item.SizeBytes <= lowBandwidthMaxBytes && item.Priority >= models.PriorityHigh {
			eligible = append(eligible, item)
			continue
		}
		m.logger.Debug().
			Str("func", "downloadManager.filterForBandwidth").
			Str("content_id", item.ID).
			Int64("size_bytes", item.SizeBytes).
			Str("priority", item.Priority.String()).
			Msg("content deferred until a better connection")
	}

	return eligible
}

// Cancel implements [DownloadService].
func (m *downloadManager) Cancel(contentID string) {
	m.mu.Lock()
	cancel, ok := m.active[contentID]
	delete(m.active, contentID)
	m.mu.Unlock()

	if ok {
		cancel()
		m.logger.Info().
			Str("func", "downloadManager.Cancel").
			Str("content_id", contentID).
			Msg("download cancelled")
	}
}

// CancelAll implements [DownloadService].
func (m *downloadManager) CancelAll() {
	m.mu.Lock()
	cancels := make([]context.CancelFunc, 0, len(m.active))
	for id, cancel := range m.active {
		cancels = append(cancels, cancel)
		delete(m.active, id)
	}
	m.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

func (m *downloadManager) GetContent(ctx context.Context, id string) (models.OfflineContent, error) {
	return m.registry.Get(ctx, id)
}

func (m *downloadManager) GetAllContent(ctx context.Context) ([]models.OfflineContent, error) {
	return m.registry.GetAll(ctx)
}

// Remove implements [DownloadService].
func (m *downloadManager) Remove(ctx context.Context, id string) error {
	content, err := m.registry.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("load content for removal: %w", err)
	}

	m.Cancel(id)

	if err = m.registry.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete content record: %w", err)
	}

	typeDir := filepath.Join(m.contentDir, safeDirName(content.Type))
	if rmErr := os.Remove(filepath.Join(typeDir, id+partSuffix)); rmErr != nil && !os.IsNotExist(rmErr) {
		m.logger.Err(rmErr).
			Str("func", "downloadManager.Remove").
			Str("content_id", id).
			Msg("failed to remove partial file")
	}

	if content.ContentHash != "" {
		if shared, sharedErr := m.hashShared(ctx, id, content.ContentHash); sharedErr == nil && !shared {
			if rmErr := os.Remove(filepath.Join(typeDir, content.ContentHash)); rmErr != nil && !os.IsNotExist(rmErr) {
				m.logger.Err(rmErr).
					Str("func", "downloadManager.Remove").
					Str("content_id", id).
					Str("content_hash", content.ContentHash).
					Msg("failed to remove content file")
			}
		}
	}

	m.logger.Info().
		Str("func", "downloadManager.Remove").
		Str("content_id", id).
		Msg("offline content removed")

	return nil
}

// hashShared reports whether another registry record still references the
// content-addressed file.
func (m *downloadManager) hashShared(ctx context.Context, excludeID, hash string) (bool, error) {
	all, err := m.registry.GetAll(ctx)
	if err != nil {
		return true, err // assume shared rather than delete a live file
	}

	for _, other := range all {
		if other.ID != excludeID && other.ContentHash == hash {
			return true, nil
		}
	}
	return false, nil
}

// SweepExpired implements [DownloadService].
func (m *downloadManager) SweepExpired(ctx context.Context) (int, error) {
	expired, err := m.registry.GetExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("load expired content: %w", err)
	}

	swept := 0
	for _, content := range expired {
		if err = m.Remove(ctx, content.ID); err != nil {
			m.logger.Err(err).
				Str("func", "downloadManager.SweepExpired").
				Str("content_id", content.ID).
				Msg("failed to remove expired content")
			continue
		}
		swept++
	}

	m.sweepStaleParts()

	return swept, nil
}

// sweepStaleParts clears orphaned partial files left behind by cancelled
// downloads once they are older than partFileMaxAge.
func (m *downloadManager) sweepStaleParts() {
	cutoff := time.Now().Add(-partFileMaxAge)

	_ = filepath.WalkDir(m.contentDir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(d.Name(), partSuffix) {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil || info.ModTime().After(cutoff) {
			return nil
		}

		if rmErr := os.Remove(path); rmErr != nil {
			m.logger.Err(rmErr).
				Str("func", "downloadManager.sweepStaleParts").
				Str("path", path).
				Msg("failed to remove stale partial file")
			return nil
		}

		m.logger.Debug().
			Str("func", "downloadManager.sweepStaleParts").
			Str("path", path).
			Msg("stale partial file removed")
		return nil
	})
}

func (m *downloadManager) Progress() (<-chan models.DownloadProgress, func()) {
	return m.progress.Subscribe()
}

// safeDirName keeps content types usable as directory names.
func safeDirName(contentType string) string {
	if contentType == "" {
		return "misc"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, contentType)
}
