// Package shell runs one interactive grab: ask for a page, list its stylesheets,
// confirm, download, report.
package shell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/veranemoloko/cssgrab/internal/browser"
	"github.com/veranemoloko/cssgrab/internal/domain"
	"github.com/veranemoloko/cssgrab/internal/inspect"
	"github.com/veranemoloko/cssgrab/internal/metrics"
	"github.com/veranemoloko/cssgrab/internal/validation"
	"github.com/veranemoloko/cssgrab/internal/worker"
)

const (
	urlLabel     = "Enter the URL of the site to inspect"
	confirmLabel = "Download the stylesheets found?"
	pauseLabel   = "\nPress ENTER to close..."
)

type Prompter interface {
	Ask(ctx context.Context, label string) (string, error)
	Confirm(ctx context.Context, label string, def bool) (bool, error)
	Pause(ctx context.Context, label string)
}

type Reporter interface {
	worker.Reporter
	Info(format string, args ...interface{})
	Notice(format string, args ...interface{})
	Error(err error)
	Summary(s domain.Summary)
}

type Downloader interface {
	DownloadAll(ctx context.Context, refs []domain.StylesheetRef, reporter worker.Reporter) ([]domain.DownloadOutcome, error)
}

type Shell struct {
	inspector  inspect.Inspector
	downloader Downloader
	prompter   Prompter
	reporter   Reporter
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func New(
	inspector inspect.Inspector,
	downloader Downloader,
	prompter Prompter,
	reporter Reporter,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Shell {
	if m == nil {
		m = metrics.New()
	}
	return &Shell{
		inspector:  inspector,
		downloader: downloader,
		prompter:   prompter,
		reporter:   reporter,
		metrics:    m,
		logger:     logger,
	}
}

// Run never fails: every error or panic ends up as one line on the reporter.
func (s *Shell) Run(ctx context.Context) {
	if err := guard(func() error { return s.run(ctx) }); err != nil {
		s.logger.Error("run failed", "error", err)
		s.reporter.Error(err)
	}
}

func (s *Shell) run(ctx context.Context) error {
	pageURL, err := s.prompter.Ask(ctx, urlLabel)
	if err != nil {
		return err
	}
	if err := validation.PageURL(pageURL); err != nil {
		return err
	}
	logger := s.logger.With("page_url", pageURL)

	defer func() {
		if err := s.inspector.Close(); err != nil {
			logger.Warn("failed to release inspector", "error", err)
		}
	}()

	s.reporter.Notice("Opening %s...", pageURL)
	err = s.inspector.Open(ctx, pageURL)
	var launchErr *browser.LaunchError
	if errors.As(err, &launchErr) {
		return err
	}

	// The session is live from here on, so the pause always runs.
	if err == nil {
		err = guard(func() error { return s.grab(ctx, logger) })
	}
	if err != nil {
		logger.Error("run failed", "error", err)
		s.reporter.Error(err)
	}

	s.prompter.Pause(ctx, pauseLabel)
	return nil
}

func (s *Shell) grab(ctx context.Context, logger *slog.Logger) error {
	refs := s.inspector.Stylesheets(ctx)
	s.metrics.StylesheetsFound.Add(float64(len(refs)))
	logger.Info("stylesheets enumerated", "count", len(refs))

	s.inspector.Notify(ctx)

	s.reporter.Info("%d stylesheets found", len(refs))
	if len(refs) == 0 {
		return nil
	}

	ok, err := s.prompter.Confirm(ctx, confirmLabel, false)
	if err != nil {
		return err
	}
	if !ok {
		logger.Info("download declined")
		return nil
	}

	outcomes, err := s.downloader.DownloadAll(ctx, refs, s.reporter)
	if err != nil {
		return err
	}

	s.reporter.Summary(domain.Summarize(outcomes))
	return nil
}

func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()
	return fn()
}
