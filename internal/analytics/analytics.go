// Package analytics computes aggregate statistics over a traffic dataset.
//
// The package is organized into focused modules:
//   - analytics.go: aggregation table model definitions
//   - stats.go: group-by reductions (daily, hourly, device, source) and top-N hours
//   - metrics.go: the summary metrics snapshot
//   - trends.go: trend-delta analysis over the per-date series
//   - report.go: report assembly and JSON export
//
// Every operation is a pure function of the dataset it is given: nothing here
// mutates the dataset, and calling any operation twice on the same dataset
// returns identical results.
package analytics

import "math"

// StatRow is one reduced row of an aggregation table: summed counts and
// revenue, averaged rates. All float values carry two decimal places.
type StatRow struct {
	PageViews      int     `json:"page_views"`
	UniqueVisitors int     `json:"unique_visitors"`
	BounceRate     float64 `json:"bounce_rate"`
	ConversionRate float64 `json:"conversion_rate"`
	Revenue        float64 `json:"revenue"`
}

// DailyStat is a StatRow plus the averaged session duration, which is only
// reported on the per-day table.
type DailyStat struct {
	PageViews          int     `json:"page_views"`
	UniqueVisitors     int     `json:"unique_visitors"`
	BounceRate         float64 `json:"bounce_rate"`
	AvgSessionDuration float64 `json:"avg_session_duration"`
	ConversionRate     float64 `json:"conversion_rate"`
	Revenue            float64 `json:"revenue"`
}

// TopHoursEntry is one entry of the top-N busiest hours of the day.
type TopHoursEntry struct {
	Hour       string  `json:"hour"` // formatted "HH:00"
	PageViews  int     `json:"page_views"`
	Percentage float64 `json:"percentage"` // share of total page views, 2dp
}

// TrendResult compares the recent window of a per-date metric series against
// the preceding period. The zero value is the sentinel for "no trend
// available" (unknown metric or fewer than two distinct dates).
type TrendResult struct {
	Metric           string  `json:"metric"`
	RecentAverage    float64 `json:"recent_average"`
	PreviousAverage  float64 `json:"previous_average"`
	ChangePercentage float64 `json:"change_percentage"`
	Trend            string  `json:"trend"` // "up" or "down"
	PeriodDays       int     `json:"period_days"`
}

// Empty reports whether the result is the no-trend sentinel.
func (t TrendResult) Empty() bool {
	return t.Metric == ""
}

// round2 rounds half away from zero to two decimal places. It is the single
// rounding helper for all aggregate outputs, so the rounding mode is
// consistent across tables within a run.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
