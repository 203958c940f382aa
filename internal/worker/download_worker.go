package worker

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/veranemoloko/cssgrab/internal/domain"
	errpkg "github.com/veranemoloko/cssgrab/internal/errors"
	"github.com/veranemoloko/cssgrab/internal/metrics"
	"github.com/veranemoloko/cssgrab/internal/storage"
)

// Reporter receives each outcome as soon as it is known.
type Reporter interface {
	Outcome(o domain.DownloadOutcome)
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bad status: %s", e.Status)
}

// DownloadWorker fetches stylesheets one at a time and stores them in FileStorage.
type DownloadWorker struct {
	fileStorage *storage.FileStorage
	httpClient  *http.Client
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// NewDownloadWorker creates a DownloadWorker. A nil client means a plain http.Client
// with no timeout; a nil metrics value gets a private registry.
func NewDownloadWorker(fileStorage *storage.FileStorage, client *http.Client, m *metrics.Metrics, logger *slog.Logger) *DownloadWorker {
	if client == nil {
		client = &http.Client{}
	}
	if m == nil {
		m = metrics.New()
	}
	return &DownloadWorker{
		fileStorage: fileStorage,
		httpClient:  client,
		metrics:     m,
		logger:      logger,
	}
}

// FileNameFromURL returns everything after the last '/' of rawURL, untouched.
func FileNameFromURL(rawURL string) string {
	return rawURL[strings.LastIndex(rawURL, "/")+1:]
}

// DownloadAll creates the destination directory, then downloads every reference in order.
// It returns one outcome per reference; the only error is a destination directory that
// cannot be created, in which case nothing is fetched.
func (w *DownloadWorker) DownloadAll(ctx context.Context, refs []domain.StylesheetRef, reporter Reporter) ([]domain.DownloadOutcome, error) {
	if err := w.fileStorage.EnsureDir(); err != nil {
		w.logger.Error("destination directory unavailable",
			"dir", w.fileStorage.Dir(),
			"error", err,
		)
		return nil, err
	}

	outcomes := make([]domain.DownloadOutcome, 0, len(refs))
	for _, ref := range refs {
		outcome := w.DownloadURL(ctx, ref.URL)
		outcomes = append(outcomes, outcome)
		if reporter != nil {
			reporter.Outcome(outcome)
		}
	}

	s := domain.Summarize(outcomes)
	w.logger.Info("downloads finished",
		"dir", w.fileStorage.Dir(),
		"saved", s.Saved,
		"failed", s.Failed,
		"bytes", s.Bytes,
	)

	return outcomes, nil
}

// DownloadURL fetches a single stylesheet and writes it under its last path segment,
// overwriting any file of the same name. Every failure becomes a Failed outcome.
func (w *DownloadWorker) DownloadURL(ctx context.Context, url string) domain.DownloadOutcome {
	startTime := time.Now()

	path, bytes, err := w.fetch(ctx, url)
	if err != nil {
		w.metrics.ObserveFailed()
		w.logger.Warn("download failed",
			"url", url,
			"error", err,
		)
		return domain.Failed(url, err.Error())
	}

	w.metrics.ObserveSaved(bytes, time.Since(startTime))
	w.logger.Debug("stylesheet saved",
		"url", url,
		"file_path", path,
		"bytes", bytes,
	)
	return domain.Saved(url, path, bytes)
}

func (w *DownloadWorker) fetch(ctx context.Context, url string) (string, int64, error) {
	filename := FileNameFromURL(url)
	if filename == "" {
		return "", 0, fmt.Errorf("%w: %s", errpkg.ErrEmptyFileName, url)
	}
	path := w.fileStorage.Path(filename)
	if w.fileStorage.FileExists(filename) {
		w.logger.Debug("overwriting existing file", "file_path", path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", 0, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	bytes, err := w.fileStorage.CopyFile(resp.Body, filename)
	if err != nil {
		return "", 0, err
	}

	return path, bytes, nil
}
