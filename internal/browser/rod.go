package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
)

// Options configures the rod launcher.
type Options struct {
	// Bin is the browser executable. Empty lets rod find or fetch one.
	Bin      string
	Headless bool
	// Devtools opens the inspection panel for every tab.
	Devtools bool
	// Flags are extra command line switches, "--name=value" or "name".
	Flags []string
}

// RodLauncher launches a Chromium-family browser through go-rod.
type RodLauncher struct {
	opts   Options
	logger *slog.Logger
}

func NewRodLauncher(opts Options, logger *slog.Logger) *RodLauncher {
	return &RodLauncher{opts: opts, logger: logger}
}

// Launch starts the browser, connects over the DevTools protocol and opens a blank page.
func (l *RodLauncher) Launch(ctx context.Context) (Session, error) {
	lc := l.newLauncher(ctx)

	controlURL, err := lc.Launch()
	if err != nil {
		lc.Kill()
		return nil, &LaunchError{Err: err}
	}
	l.logger.Debug("browser launched", "control_url", controlURL)

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		lc.Kill()
		lc.Cleanup()
		return nil, &LaunchError{Err: fmt.Errorf("connect: %w", err)}
	}

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = b.Close()
		lc.Kill()
		lc.Cleanup()
		return nil, &LaunchError{Err: fmt.Errorf("create page: %w", err)}
	}

	return &rodSession{launcher: lc, browser: b, page: page, logger: l.logger}, nil
}

func (l *RodLauncher) newLauncher(ctx context.Context) *launcher.Launcher {
	lc := launcher.New().
		Context(ctx).
		Headless(l.opts.Headless).
		Devtools(l.opts.Devtools)

	if l.opts.Bin != "" {
		lc = lc.Bin(l.opts.Bin)
	}

	for _, raw := range l.opts.Flags {
		name, values := parseFlag(raw)
		if name == "" {
			continue
		}
		lc = lc.Set(flags.Flag(name), values...)
	}

	return lc
}

// parseFlag splits "--name=a" into its name and values.
func parseFlag(raw string) (string, []string) {
	trimmed := strings.TrimLeft(strings.TrimSpace(raw), "-")
	name, val, hasVal := strings.Cut(trimmed, "=")
	if !hasVal {
		return name, nil
	}
	return name, []string{val}
}

type rodSession struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
	logger   *slog.Logger

	closeOnce sync.Once
	closeErr  error
}

func (s *rodSession) Navigate(ctx context.Context, url string) error {
	if err := s.page.Context(ctx).Navigate(url); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

func (s *rodSession) Query(ctx context.Context, script string) (json.RawMessage, error) {
	res, err := s.page.Context(ctx).Evaluate(&rod.EvalOptions{
		JS:           script,
		ByValue:      true,
		AwaitPromise: true,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate script: %w", err)
	}
	if res == nil {
		return json.RawMessage("null"), nil
	}

	raw, err := res.Value.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal script result: %w", err)
	}
	return raw, nil
}

func (s *rodSession) Close() error {
	s.closeOnce.Do(func() {
		if err := s.page.Close(); err != nil {
			s.logger.Debug("page close failed", "error", err)
		}
		s.closeErr = s.browser.Close()
		s.launcher.Kill()
		s.launcher.Cleanup()
	})
	return s.closeErr
}
