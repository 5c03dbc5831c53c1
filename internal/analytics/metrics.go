package analytics

import (
	"errors"

	"trafficlens/internal/traffic"
)

// ErrEmptyDataset is returned when a snapshot is requested over no records.
var ErrEmptyDataset = errors.New("analytics: empty dataset")

// weekdayAbbrev maps the Monday-first day-of-week index to its label.
var weekdayAbbrev = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// MetricsSnapshot is the fixed set of summary statistics computed from one
// dataset. It is immutable once computed; recompute it if the dataset changes.
type MetricsSnapshot struct {
	TotalPageViews         int     `json:"total_page_views"`
	TotalUniqueVisitors    int     `json:"total_unique_visitors"`
	AverageBounceRate      float64 `json:"average_bounce_rate"`
	AverageSessionDuration float64 `json:"average_session_duration"`
	AverageConversionRate  float64 `json:"average_conversion_rate"`
	TotalRevenue           float64 `json:"total_revenue"`
	PeakTrafficHour        int     `json:"peak_traffic_hour"`
	BestDayOfWeek          string  `json:"best_day_of_week"`
	TopDevice              string  `json:"top_device"`
	TopSource              string  `json:"top_source"`
}

// ComputeMetrics derives the summary snapshot from the dataset. An empty
// dataset yields ErrEmptyDataset rather than a snapshot of zeros.
//
// Tie-breaks are deterministic: the peak hour and best weekday prefer the
// lower index, the top device and source prefer whichever value was seen
// first in the dataset.
func ComputeMetrics(dataset traffic.Dataset) (MetricsSnapshot, error) {
	if len(dataset) == 0 {
		return MetricsSnapshot{}, ErrEmptyDataset
	}

	var (
		totalViews    int
		totalVisitors int
		bounceSum     float64
		durationSum   float64
		conversionSum float64
		revenueSum    float64

		viewsByHour [24]int
		viewsByDay  [7]int
	)

	deviceCounts := newModeCounter()
	sourceCounts := newModeCounter()

	for _, r := range dataset {
		totalViews += r.PageViews
		totalVisitors += r.UniqueVisitors
		bounceSum += r.BounceRate
		durationSum += r.AvgSessionDuration
		conversionSum += r.ConversionRate
		revenueSum += r.Revenue

		if r.Hour >= 0 && r.Hour < 24 {
			viewsByHour[r.Hour] += r.PageViews
		}
		if r.DayOfWeek >= 0 && r.DayOfWeek < 7 {
			viewsByDay[r.DayOfWeek] += r.PageViews
		}

		deviceCounts.add(string(r.Device))
		sourceCounts.add(string(r.Source))
	}

	n := float64(len(dataset))
	return MetricsSnapshot{
		TotalPageViews:         totalViews,
		TotalUniqueVisitors:    totalVisitors,
		AverageBounceRate:      round2(bounceSum / n),
		AverageSessionDuration: round2(durationSum / n),
		AverageConversionRate:  round2(conversionSum / n),
		TotalRevenue:           round2(revenueSum),
		PeakTrafficHour:        argmax(viewsByHour[:]),
		BestDayOfWeek:          weekdayAbbrev[argmax(viewsByDay[:])],
		TopDevice:              deviceCounts.mode(),
		TopSource:              sourceCounts.mode(),
	}, nil
}

// argmax returns the index of the largest value; the lowest index wins ties.
func argmax(values []int) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

// modeCounter tracks value frequencies while remembering first-seen order, so
// the mode has a deterministic tie-break.
type modeCounter struct {
	counts map[string]int
	order  []string
}

func newModeCounter() *modeCounter {
	return &modeCounter{counts: make(map[string]int)}
}

func (m *modeCounter) add(value string) {
	if _, seen := m.counts[value]; !seen {
		m.order = append(m.order, value)
	}
	m.counts[value]++
}

// mode returns the most frequent value; on a tie, the value first seen in the
// dataset wins.
func (m *modeCounter) mode() string {
	best := ""
	bestCount := -1
	for _, value := range m.order {
		if m.counts[value] > bestCount {
			best = value
			bestCount = m.counts[value]
		}
	}
	return best
}
