package inspect

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/veranemoloko/cssgrab/internal/domain"
	"github.com/veranemoloko/cssgrab/internal/stylesheet"
	"github.com/veranemoloko/cssgrab/internal/validation"
)

// DocumentInspector reads <link rel="stylesheet"> elements from the page HTML
// without a browser. Stylesheets added by scripts are not seen.
type DocumentInspector struct {
	client *http.Client
	logger *slog.Logger

	refs []domain.StylesheetRef
}

func NewDocumentInspector(client *http.Client, logger *slog.Logger) *DocumentInspector {
	if client == nil {
		client = &http.Client{}
	}
	return &DocumentInspector{client: client, logger: logger}
}

func (i *DocumentInspector) Open(ctx context.Context, pageURL string) error {
	i.refs = []domain.StylesheetRef{}

	if err := validation.FetchablePageURL(pageURL); err != nil {
		i.logger.Warn("page URL cannot be fetched", "error", err)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		i.logger.Warn("failed to create page request", "url", pageURL, "error", err)
		return nil
	}

	resp, err := i.client.Do(req)
	if err != nil {
		i.logger.Warn("page request failed", "url", pageURL, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		i.logger.Warn("page request failed", "url", pageURL, "status", resp.Status)
		return nil
	}

	refs, err := stylesheet.ParseLinks(resp.Body, resp.Request.URL)
	if err != nil {
		i.logger.Warn("failed to parse page", "url", pageURL, "error", err)
		return nil
	}

	i.refs = refs
	return nil
}

func (i *DocumentInspector) Stylesheets(context.Context) []domain.StylesheetRef {
	if i.refs == nil {
		return []domain.StylesheetRef{}
	}
	return i.refs
}

func (i *DocumentInspector) Notify(context.Context) {}

func (i *DocumentInspector) Close() error {
	i.client.CloseIdleConnections()
	return nil
}
