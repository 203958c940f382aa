// Package cli wires configuration, flags and components into the cssgrab command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/veranemoloko/cssgrab/internal/browser"
	"github.com/veranemoloko/cssgrab/internal/config"
	"github.com/veranemoloko/cssgrab/internal/console"
	"github.com/veranemoloko/cssgrab/internal/inspect"
	"github.com/veranemoloko/cssgrab/internal/metrics"
	"github.com/veranemoloko/cssgrab/internal/shell"
	"github.com/veranemoloko/cssgrab/internal/storage"
	"github.com/veranemoloko/cssgrab/internal/worker"
)

// Run reads the environment and runs the command. Validation happens after flags are applied.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Read(".env")
	if err != nil {
		return err
	}
	return NewCommand(cfg, stdin, stdout).Run(ctx, args)
}

func NewCommand(cfg *config.Config, stdin io.Reader, stdout io.Writer) *cli.Command {
	var logger *slog.Logger

	return &cli.Command{
		Name:   "cssgrab",
		Usage:  "list and download the external stylesheets of a web page",
		Writer: stdout,
		Flags:  cfg.Flags(),
		Before: func(ctx context.Context, _ *cli.Command) (context.Context, error) {
			if err := cfg.Validate(); err != nil {
				return ctx, err
			}
			logger = config.SetupLogger(cfg)
			return ctx, nil
		},
		Action: func(ctx context.Context, _ *cli.Command) error {
			return run(ctx, cfg, logger, stdin, stdout)
		},
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdin io.Reader, stdout io.Writer) error {
	logger = logger.With("run_id", uuid.NewString())
	logger.Info("configuration loaded", "engine", cfg.Engine, "dir", cfg.DownloadDir)

	client := &http.Client{Timeout: cfg.DownloadTimeout}
	defer client.CloseIdleConnections()

	m := metrics.New()
	downloader := worker.NewDownloadWorker(storage.NewFileStorage(cfg.DownloadDir), client, m, logger)

	inspector, err := newInspector(cfg, client, logger)
	if err != nil {
		return err
	}

	shell.New(
		inspector,
		downloader,
		console.NewPrompter(stdin, stdout),
		console.NewReporter(stdout, console.ColorEnabled(stdout, cfg.NoColor)),
		m,
		logger,
	).Run(ctx)

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("failed to write metrics", "error", err)
		}
	}

	return nil
}

func newInspector(cfg *config.Config, client *http.Client, logger *slog.Logger) (inspect.Inspector, error) {
	switch cfg.Engine {
	case config.EngineBrowser:
		launcher := browser.NewRodLauncher(browser.Options{
			Bin:      cfg.BrowserBin,
			Headless: cfg.Headless,
			Devtools: cfg.Devtools,
			Flags:    cfg.BrowserFlags,
		}, logger)
		return inspect.NewBrowserInspector(launcher, inspect.BrowserOptions{
			Settle:      cfg.SettleDelay,
			Notify:      cfg.Notify,
			NotifyDelay: cfg.NotifyDelay,
		}, logger), nil
	case config.EngineStatic:
		return inspect.NewDocumentInspector(client, logger), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", cfg.Engine)
	}
}
