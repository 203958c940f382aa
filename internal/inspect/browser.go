package inspect

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/veranemoloko/cssgrab/internal/browser"
	"github.com/veranemoloko/cssgrab/internal/domain"
	"github.com/veranemoloko/cssgrab/internal/stylesheet"
)

const notifyMessage = "Please return to the terminal to continue!"

// BrowserInspector drives a real browser session.
type BrowserInspector struct {
	launcher    browser.Launcher
	enumerator  *stylesheet.ScriptEnumerator
	settle      time.Duration
	notify      bool
	notifyDelay time.Duration
	logger      *slog.Logger

	session browser.Session
}

type BrowserOptions struct {
	// Settle is the fixed wait between navigation and enumeration.
	Settle      time.Duration
	Notify      bool
	NotifyDelay time.Duration
}

func NewBrowserInspector(l browser.Launcher, opts BrowserOptions, logger *slog.Logger) *BrowserInspector {
	return &BrowserInspector{
		launcher:    l,
		enumerator:  stylesheet.NewScriptEnumerator(logger),
		settle:      opts.Settle,
		notify:      opts.Notify,
		notifyDelay: opts.NotifyDelay,
		logger:      logger,
	}
}

func (i *BrowserInspector) Open(ctx context.Context, pageURL string) error {
	session, err := i.launcher.Launch(ctx)
	if err != nil {
		return err
	}
	i.session = session

	if err := session.Navigate(ctx, pageURL); err != nil {
		i.logger.Warn("navigation failed", "url", pageURL, "error", err)
	}

	timer := time.NewTimer(i.settle)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	return nil
}

func (i *BrowserInspector) Stylesheets(ctx context.Context) []domain.StylesheetRef {
	if i.session == nil {
		return []domain.StylesheetRef{}
	}
	return i.enumerator.Enumerate(ctx, i.session)
}

func (i *BrowserInspector) Notify(ctx context.Context) {
	if i.session == nil || !i.notify {
		return
	}
	if _, err := i.session.Query(ctx, notifyScript(i.notifyDelay, notifyMessage)); err != nil {
		i.logger.Debug("notify script failed", "error", err)
	}
}

func (i *BrowserInspector) Close() error {
	if i.session == nil {
		return nil
	}
	return i.session.Close()
}

// notifyScript closes the devtools toolbox when the page exposes one, then raises
// an alert after delay.
func notifyScript(delay time.Duration, message string) string {
	msg, _ := json.Marshal(message)
	return fmt.Sprintf(`() => {
	if (window.windowUtils && window.windowUtils.closeToolbox) {
		window.windowUtils.closeToolbox();
	}
	setTimeout(() => { alert(%s); }, %d);
	return true;
}`, msg, delay.Milliseconds())
}
