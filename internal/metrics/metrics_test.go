package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := New()

	m.ObserveSaved(100, 10*time.Millisecond)
	m.ObserveSaved(20, 5*time.Millisecond)
	m.ObserveFailed()

	assert.Equal(t, float64(3), testutil.ToFloat64(m.DownloadsTotal))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.DownloadsSuccess))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DownloadsFailed))
	assert.Equal(t, float64(120), testutil.ToFloat64(m.DownloadBytes))
}

func TestMetrics_InstancesAreIndependent(t *testing.T) {
	a := New()
	b := New()

	a.ObserveFailed()

	assert.Equal(t, float64(1), testutil.ToFloat64(a.DownloadsFailed))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.DownloadsFailed))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := New()
	m.StylesheetsFound.Add(2)
	m.ObserveSaved(7, time.Millisecond)

	path := filepath.Join(t.TempDir(), "cssgrab.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cssgrab_stylesheets_found_total 2")
	assert.Contains(t, string(data), "cssgrab_download_bytes_total 7")
}

func TestMetrics_WriteTextfile_BadDir(t *testing.T) {
	m := New()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "cssgrab.prom"))
	assert.Error(t, err)
}
