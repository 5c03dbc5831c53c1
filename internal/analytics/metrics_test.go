package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trafficlens/internal/analytics"
	"trafficlens/internal/testsupport"
	"trafficlens/internal/traffic"
)

func TestComputeMetrics(t *testing.T) {
	snapshot, err := analytics.ComputeMetrics(fixtureDataset(t))
	require.NoError(t, err)

	assert.Equal(t, analytics.MetricsSnapshot{
		TotalPageViews:         600,
		TotalUniqueVisitors:    420,
		AverageBounceRate:      50,
		AverageSessionDuration: 5,
		AverageConversionRate:  3,
		TotalRevenue:           600,
		PeakTrafficHour:        12,
		BestDayOfWeek:          "Mon", // 2024-07-01 is a Monday with 400 views vs Tuesday's 200
		TopDevice:              "Desktop",
		TopSource:              "Organic",
	}, snapshot)
}

func TestComputeMetricsEmptyDataset(t *testing.T) {
	_, err := analytics.ComputeMetrics(traffic.Dataset{})
	assert.ErrorIs(t, err, analytics.ErrEmptyDataset)

	_, err = analytics.ComputeMetrics(nil)
	assert.ErrorIs(t, err, analytics.ErrEmptyDataset)
}

func TestPeakTrafficHourTieBreaksOnLowerHour(t *testing.T) {
	dataset := traffic.Dataset{
		testsupport.Record(t, "2024-07-01T05:00:00Z", 100, 50, 50, 3, 1, 10, traffic.DeviceDesktop, traffic.SourceOrganic),
		testsupport.Record(t, "2024-07-01T03:00:00Z", 100, 50, 50, 3, 1, 10, traffic.DeviceDesktop, traffic.SourceOrganic),
	}

	snapshot, err := analytics.ComputeMetrics(dataset)
	require.NoError(t, err)
	assert.Equal(t, 3, snapshot.PeakTrafficHour)
}

func TestBestDayOfWeekTieBreaksOnLowerIndex(t *testing.T) {
	// Equal views on Tuesday and Wednesday; Tuesday has the lower index.
	dataset := traffic.Dataset{
		testsupport.Record(t, "2024-07-03T10:00:00Z", 100, 50, 50, 3, 1, 10, traffic.DeviceDesktop, traffic.SourceOrganic), // Wednesday
		testsupport.Record(t, "2024-07-02T10:00:00Z", 100, 50, 50, 3, 1, 10, traffic.DeviceDesktop, traffic.SourceOrganic), // Tuesday
	}

	snapshot, err := analytics.ComputeMetrics(dataset)
	require.NoError(t, err)
	assert.Equal(t, "Tue", snapshot.BestDayOfWeek)
}

func TestTopDeviceAndSourceTieBreakOnFirstSeen(t *testing.T) {
	dataset := traffic.Dataset{
		testsupport.Record(t, "2024-07-01T10:00:00Z", 1, 1, 50, 3, 1, 10, traffic.DeviceMobile, traffic.SourcePaid),
		testsupport.Record(t, "2024-07-01T11:00:00Z", 1, 1, 50, 3, 1, 10, traffic.DeviceDesktop, traffic.SourceOrganic),
	}

	snapshot, err := analytics.ComputeMetrics(dataset)
	require.NoError(t, err)
	assert.Equal(t, "Mobile", snapshot.TopDevice)
	assert.Equal(t, "Paid", snapshot.TopSource)
}

func TestPeakHourOnGeneratedDataMatchesDiurnalPeak(t *testing.T) {
	dataset := traffic.NewGenerator(testsupport.Logger(), 42).Generate(30)

	snapshot, err := analytics.ComputeMetrics(dataset)
	require.NoError(t, err)

	// The diurnal factor peaks at 18:00; 30 days of data drown out the noise.
	assert.Equal(t, 18, snapshot.PeakTrafficHour)
}

func TestMetricsTotalsMatchAggregationTables(t *testing.T) {
	dataset := traffic.NewGenerator(testsupport.Logger(), 99).Generate(7)

	snapshot, err := analytics.ComputeMetrics(dataset)
	require.NoError(t, err)

	dailyTotal := 0
	for _, stat := range analytics.DailyStats(dataset) {
		dailyTotal += stat.PageViews
	}
	hourlyTotal := 0
	for _, stat := range analytics.HourlyStats(dataset) {
		hourlyTotal += stat.PageViews
	}

	assert.Equal(t, snapshot.TotalPageViews, dailyTotal)
	assert.Equal(t, snapshot.TotalPageViews, hourlyTotal)
}

func TestHourlyStatsCoverAllHoursForOneDay(t *testing.T) {
	dataset := traffic.NewGenerator(testsupport.Logger(), 42).Generate(1)
	require.Len(t, dataset, 24)

	stats := analytics.HourlyStats(dataset)
	require.Len(t, stats, 24)
	for hour := 0; hour < 24; hour++ {
		assert.Contains(t, stats, hour)
	}
}
