// Package testsupport provides helpers shared across test packages.
package testsupport

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"trafficlens/internal/traffic"
)

// Record builds a traffic record at the given RFC3339 timestamp with derived
// fields populated.
func Record(t *testing.T, ts string, pageViews, uniqueVisitors int, bounce, duration, conversion, revenue float64, device traffic.Device, source traffic.Source) traffic.TrafficRecord {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339, ts)
	require.NoError(t, err, "invalid test timestamp %q", ts)

	rec := traffic.TrafficRecord{
		Timestamp:          parsed,
		PageViews:          pageViews,
		UniqueVisitors:     uniqueVisitors,
		BounceRate:         bounce,
		AvgSessionDuration: duration,
		ConversionRate:     conversion,
		Revenue:            revenue,
		Device:             device,
		Source:             source,
	}
	rec.DeriveTimeFields()
	return rec
}

// Logger returns a logger that discards all output.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
