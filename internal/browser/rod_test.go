package browser

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlag(t *testing.T) {
	tests := []struct {
		raw        string
		wantName   string
		wantValues []string
	}{
		{raw: "--no-sandbox", wantName: "no-sandbox"},
		{raw: "disable-gpu", wantName: "disable-gpu"},
		{raw: "--window-size=1280,800", wantName: "window-size", wantValues: []string{"1280,800"}},
		{raw: "  --lang=pt-BR ", wantName: "lang", wantValues: []string{"pt-BR"}},
		{raw: "--", wantName: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			name, values := parseFlag(tt.raw)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantValues, values)
		})
	}
}

func TestLaunchError(t *testing.T) {
	cause := errors.New("executable not found")
	err := error(&LaunchError{Err: cause})

	assert.Equal(t, "launch browser: executable not found", err.Error())
	assert.True(t, errors.Is(err, cause))

	var launchErr *LaunchError
	assert.True(t, errors.As(err, &launchErr))
}

// TestRodLauncher_Integration drives a real browser. Set CSSGRAB_TEST_BROWSER=1
// (and optionally CSSGRAB_BROWSER_BIN) to run it.
func TestRodLauncher_Integration(t *testing.T) {
	if os.Getenv("CSSGRAB_TEST_BROWSER") == "" {
		t.Skip("CSSGRAB_TEST_BROWSER not set")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, `<html><head><title>fixture</title></head><body></body></html>`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	l := NewRodLauncher(Options{
		Bin:      os.Getenv("CSSGRAB_BROWSER_BIN"),
		Headless: true,
		Flags:    []string{"--no-sandbox"},
	}, logger)

	ctx := context.Background()
	session, err := l.Launch(ctx)
	require.NoError(t, err)
	defer session.Close()

	require.NoError(t, session.Navigate(ctx, server.URL))

	raw, err := session.Query(ctx, `() => document.title`)
	require.NoError(t, err)
	assert.JSONEq(t, `"fixture"`, string(raw))

	require.NoError(t, session.Close())
	assert.NoError(t, session.Close())
}
