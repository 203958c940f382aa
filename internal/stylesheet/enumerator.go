package stylesheet

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/veranemoloko/cssgrab/internal/domain"
)

// Script lists the href of every stylesheet in document.styleSheets that has one.
const Script = `() => {
	try {
		return Array.from(document.styleSheets)
			.filter(sheet => sheet.href)
			.map(sheet => sheet.href);
	} catch (e) {
		console.error(e);
		return [];
	}
}`

// Querier runs a script in a loaded page.
type Querier interface {
	Query(ctx context.Context, script string) (json.RawMessage, error)
}

// ScriptEnumerator lists stylesheets by running Script in the page.
type ScriptEnumerator struct {
	logger *slog.Logger
}

func NewScriptEnumerator(logger *slog.Logger) *ScriptEnumerator {
	return &ScriptEnumerator{logger: logger}
}

// Enumerate never fails: any error is logged and yields an empty list.
func (e *ScriptEnumerator) Enumerate(ctx context.Context, q Querier) []domain.StylesheetRef {
	raw, err := q.Query(ctx, Script)
	if err != nil {
		e.logger.Warn("stylesheet query failed", "error", err)
		return []domain.StylesheetRef{}
	}

	var hrefs []interface{}
	if err := json.Unmarshal(raw, &hrefs); err != nil {
		e.logger.Warn("unexpected stylesheet query result", "error", err, "result", string(raw))
		return []domain.StylesheetRef{}
	}

	refs := make([]domain.StylesheetRef, 0, len(hrefs))
	for _, h := range hrefs {
		href, ok := h.(string)
		if !ok || strings.TrimSpace(href) == "" {
			e.logger.Debug("skipping stylesheet entry", "value", h)
			continue
		}
		refs = append(refs, domain.StylesheetRef{URL: href})
	}

	e.logger.Debug("stylesheets enumerated", "count", len(refs))
	return refs
}
