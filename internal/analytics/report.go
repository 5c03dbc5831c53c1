package analytics

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"trafficlens/internal/traffic"
)

// TrendedMetrics are the metrics the report carries a trend comparison for.
var TrendedMetrics = []string{"page_views", "revenue", "conversion_rate"}

// Report is the exportable analytics document: the metrics snapshot plus every
// aggregation output, verbatim. encoding/json serializes map keys in sorted
// order, so the document round-trips deterministically.
type Report struct {
	GeneratedAt string                 `json:"generated_at"`
	Metrics     MetricsSnapshot        `json:"metrics"`
	DailyStats  map[string]DailyStat   `json:"daily_stats"`
	HourlyStats map[int]StatRow        `json:"hourly_stats"`
	DeviceStats map[string]StatRow     `json:"device_stats"`
	SourceStats map[string]StatRow     `json:"source_stats"`
	TopHours    []TopHoursEntry        `json:"top_hours"`
	Trends      map[string]TrendResult `json:"trends"`
}

// topHoursLimit matches the dashboard's "busiest hours" list length.
const topHoursLimit = 5

// AssembleReport stamps a generation time onto the given snapshot and tables.
// Pure composition; it computes nothing itself.
func AssembleReport(
	snapshot MetricsSnapshot,
	daily map[string]DailyStat,
	hourly map[int]StatRow,
	devices map[string]StatRow,
	sources map[string]StatRow,
	topHours []TopHoursEntry,
	trends map[string]TrendResult,
) Report {
	return Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Metrics:     snapshot,
		DailyStats:  daily,
		HourlyStats: hourly,
		DeviceStats: devices,
		SourceStats: sources,
		TopHours:    topHours,
		Trends:      trends,
	}
}

// BuildReport runs every aggregation over the dataset and assembles the
// result. It fails with ErrEmptyDataset when there is nothing to report on.
func BuildReport(dataset traffic.Dataset, trendWindowDays int) (Report, error) {
	snapshot, err := ComputeMetrics(dataset)
	if err != nil {
		return Report{}, err
	}

	trends := make(map[string]TrendResult, len(TrendedMetrics))
	for _, metric := range TrendedMetrics {
		trends[metric] = TrendAnalysis(dataset, metric, trendWindowDays)
	}

	return AssembleReport(
		snapshot,
		DailyStats(dataset),
		HourlyStats(dataset),
		DeviceStats(dataset),
		SourceStats(dataset),
		TopHours(dataset, topHoursLimit),
		trends,
	), nil
}

// WriteFile serializes the report as indented JSON to the given path.
func (r Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing report file %s: %w", path, err)
	}
	return nil
}
