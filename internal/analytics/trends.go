package analytics

import (
	"sort"

	"trafficlens/internal/traffic"
)

// TrendUp and TrendDown classify the sign of a trend's change percentage.
// A change of exactly zero is classified down.
const (
	TrendUp   = "up"
	TrendDown = "down"
)

// trendMetrics maps a metric name onto its per-record value. Only these
// columns can be trended.
var trendMetrics = map[string]func(traffic.TrafficRecord) float64{
	"page_views":           func(r traffic.TrafficRecord) float64 { return float64(r.PageViews) },
	"unique_visitors":      func(r traffic.TrafficRecord) float64 { return float64(r.UniqueVisitors) },
	"bounce_rate":          func(r traffic.TrafficRecord) float64 { return r.BounceRate },
	"avg_session_duration": func(r traffic.TrafficRecord) float64 { return r.AvgSessionDuration },
	"conversion_rate":      func(r traffic.TrafficRecord) float64 { return r.ConversionRate },
	"revenue":              func(r traffic.TrafficRecord) float64 { return r.Revenue },
}

// TrendAnalysis compares the mean of the last windowDays per-date sums of a
// metric against the mean of the period before it. When the series is no
// longer than the window there is no preceding period, so the comparison
// degrades to the mean of the first windowDays values instead; short series
// therefore report a flat (zero-change) trend rather than an error.
//
// The zero-value sentinel is returned for unknown metrics and for series with
// fewer than two distinct dates.
func TrendAnalysis(dataset traffic.Dataset, metric string, windowDays int) TrendResult {
	value, ok := trendMetrics[metric]
	if !ok || windowDays < 1 {
		return TrendResult{}
	}

	sums := make(map[string]float64)
	for _, r := range dataset {
		sums[r.Date] += value(r)
	}
	if len(sums) < 2 {
		return TrendResult{}
	}

	dates := make([]string, 0, len(sums))
	for date := range sums {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]float64, len(dates))
	for i, date := range dates {
		series[i] = sums[date]
	}

	recent := mean(tail(series, windowDays))
	var previous float64
	if len(series) > windowDays {
		previous = mean(series[:len(series)-windowDays])
	} else {
		previous = mean(head(series, windowDays))
	}

	change := 0.0
	if previous > 0 {
		change = (recent - previous) / previous * 100
	}

	trend := TrendDown
	if change > 0 {
		trend = TrendUp
	}

	return TrendResult{
		Metric:           metric,
		RecentAverage:    round2(recent),
		PreviousAverage:  round2(previous),
		ChangePercentage: round2(change),
		Trend:            trend,
		PeriodDays:       windowDays,
	}
}

func head(s []float64, n int) []float64 {
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

func tail(s []float64, n int) []float64 {
	if n > len(s) {
		n = len(s)
	}
	return s[len(s)-n:]
}

func mean(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s))
}
