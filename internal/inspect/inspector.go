// Package inspect opens a page and reports the external stylesheets it loads.
package inspect

import (
	"context"

	"github.com/veranemoloko/cssgrab/internal/domain"
)

// Inspector opens one page per run.
type Inspector interface {
	// Open prepares the page. Only failures that make inspection impossible are
	// returned; a page that does not load simply yields no stylesheets.
	Open(ctx context.Context, pageURL string) error
	// Stylesheets lists external stylesheets in document order. It never fails.
	Stylesheets(ctx context.Context) []domain.StylesheetRef
	// Notify tells the operator, in the page, to return to the terminal. Best effort.
	Notify(ctx context.Context)
	// Close releases everything Open acquired. Safe to call when Open failed.
	Close() error
}
