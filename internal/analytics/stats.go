package analytics

import (
	"fmt"
	"sort"

	"trafficlens/internal/traffic"
)

// accumulator collects running sums for one group key.
type accumulator struct {
	pageViews      int
	uniqueVisitors int
	bounceRate     float64
	duration       float64
	conversionRate float64
	revenue        float64
	count          int
}

func (a *accumulator) add(r traffic.TrafficRecord) {
	a.pageViews += r.PageViews
	a.uniqueVisitors += r.UniqueVisitors
	a.bounceRate += r.BounceRate
	a.duration += r.AvgSessionDuration
	a.conversionRate += r.ConversionRate
	a.revenue += r.Revenue
	a.count++
}

func (a *accumulator) statRow() StatRow {
	n := float64(a.count)
	return StatRow{
		PageViews:      a.pageViews,
		UniqueVisitors: a.uniqueVisitors,
		BounceRate:     round2(a.bounceRate / n),
		ConversionRate: round2(a.conversionRate / n),
		Revenue:        round2(a.revenue),
	}
}

// DailyStats aggregates the dataset per calendar day: counts and revenue are
// summed, rates and session duration averaged.
func DailyStats(dataset traffic.Dataset) map[string]DailyStat {
	groups := make(map[string]*accumulator)
	for _, r := range dataset {
		acc, ok := groups[r.Date]
		if !ok {
			acc = &accumulator{}
			groups[r.Date] = acc
		}
		acc.add(r)
	}

	stats := make(map[string]DailyStat, len(groups))
	for date, acc := range groups {
		n := float64(acc.count)
		stats[date] = DailyStat{
			PageViews:          acc.pageViews,
			UniqueVisitors:     acc.uniqueVisitors,
			BounceRate:         round2(acc.bounceRate / n),
			AvgSessionDuration: round2(acc.duration / n),
			ConversionRate:     round2(acc.conversionRate / n),
			Revenue:            round2(acc.revenue),
		}
	}
	return stats
}

// HourlyStats aggregates the dataset per hour of day (0-23), across all days
// sharing that hour.
func HourlyStats(dataset traffic.Dataset) map[int]StatRow {
	groups := make(map[int]*accumulator)
	for _, r := range dataset {
		acc, ok := groups[r.Hour]
		if !ok {
			acc = &accumulator{}
			groups[r.Hour] = acc
		}
		acc.add(r)
	}

	stats := make(map[int]StatRow, len(groups))
	for hour, acc := range groups {
		stats[hour] = acc.statRow()
	}
	return stats
}

// DeviceStats aggregates the dataset per device category.
func DeviceStats(dataset traffic.Dataset) map[string]StatRow {
	groups := make(map[string]*accumulator)
	for _, r := range dataset {
		key := string(r.Device)
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{}
			groups[key] = acc
		}
		acc.add(r)
	}

	stats := make(map[string]StatRow, len(groups))
	for device, acc := range groups {
		stats[device] = acc.statRow()
	}
	return stats
}

// SourceStats aggregates the dataset per acquisition channel.
func SourceStats(dataset traffic.Dataset) map[string]StatRow {
	groups := make(map[string]*accumulator)
	for _, r := range dataset {
		key := string(r.Source)
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{}
			groups[key] = acc
		}
		acc.add(r)
	}

	stats := make(map[string]StatRow, len(groups))
	for source, acc := range groups {
		stats[source] = acc.statRow()
	}
	return stats
}

// TopHours returns the n hours of the day with the highest summed page views,
// descending. Ties go to the lower hour so the ordering is deterministic. Each
// entry carries its share of the dataset's total page views.
func TopHours(dataset traffic.Dataset, n int) []TopHoursEntry {
	viewsByHour := make(map[int]int)
	total := 0
	for _, r := range dataset {
		viewsByHour[r.Hour] += r.PageViews
		total += r.PageViews
	}

	hours := make([]int, 0, len(viewsByHour))
	for hour := range viewsByHour {
		hours = append(hours, hour)
	}
	sort.Slice(hours, func(i, j int) bool {
		if viewsByHour[hours[i]] != viewsByHour[hours[j]] {
			return viewsByHour[hours[i]] > viewsByHour[hours[j]]
		}
		return hours[i] < hours[j]
	})

	if n > len(hours) {
		n = len(hours)
	}
	if n < 0 {
		n = 0
	}

	entries := make([]TopHoursEntry, 0, n)
	for _, hour := range hours[:n] {
		views := viewsByHour[hour]
		percentage := 0.0
		if total > 0 {
			percentage = round2(float64(views) / float64(total) * 100)
		}
		entries = append(entries, TopHoursEntry{
			Hour:       fmt.Sprintf("%02d:00", hour),
			PageViews:  views,
			Percentage: percentage,
		})
	}
	return entries
}
