// Package browser starts a browser under remote control and exposes the loaded
// page through a small Session capability.
package browser

import (
	"context"
	"encoding/json"
	"fmt"
)

// Session is a live page in a controlled browser.
type Session interface {
	// Navigate loads url in the session's page.
	Navigate(ctx context.Context, url string) error
	// Query evaluates a JavaScript function expression in the page and returns
	// the JSON encoding of its result.
	Query(ctx context.Context, script string) (json.RawMessage, error)
	// Close releases the page, the connection and any launched process.
	Close() error
}

// Launcher starts a browser and returns a Session bound to a fresh page.
type Launcher interface {
	Launch(ctx context.Context) (Session, error)
}

// LaunchError reports that the browser or its control connection could not be started.
type LaunchError struct {
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch browser: %v", e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
