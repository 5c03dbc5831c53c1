package traffic

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow pins the generation window so runs are fully reproducible.
var fixedNow = time.Date(2024, 7, 31, 15, 30, 0, 0, time.UTC)

func testGenerator(seed int64) *Generator {
	g := NewGenerator(slog.New(slog.NewTextHandler(io.Discard, nil)), seed)
	g.now = func() time.Time { return fixedNow }
	return g
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	first := testGenerator(7).Generate(5)
	second := testGenerator(7).Generate(5)

	assert.Equal(t, first, second)
}

func TestGenerateDiffersAcrossSeeds(t *testing.T) {
	first := testGenerator(1).Generate(5)
	second := testGenerator(2).Generate(5)

	assert.NotEqual(t, first, second)
}

func TestGenerateRecordCountAndCoverage(t *testing.T) {
	dataset := testGenerator(42).Generate(2)
	require.Len(t, dataset, 48)

	// One record per hour per day, date-major then hour-minor
	for i, rec := range dataset {
		assert.Equal(t, i%24, rec.Hour, "record %d", i)
	}
	assert.Len(t, dataset.Dates(), 2)
}

func TestGenerateNonPositiveDays(t *testing.T) {
	assert.Empty(t, testGenerator(42).Generate(0))
	assert.Empty(t, testGenerator(42).Generate(-3))
}

func TestGenerateFieldRanges(t *testing.T) {
	dataset := testGenerator(42).Generate(7)

	validDevices := map[Device]bool{DeviceDesktop: true, DeviceMobile: true, DeviceTablet: true}
	validSources := map[Source]bool{SourceOrganic: true, SourceDirect: true, SourceReferral: true, SourcePaid: true}

	for i, rec := range dataset {
		assert.GreaterOrEqual(t, rec.PageViews, 0, "record %d", i)
		assert.GreaterOrEqual(t, rec.UniqueVisitors, 0, "record %d", i)
		assert.GreaterOrEqual(t, rec.BounceRate, 30.0, "record %d", i)
		assert.Less(t, rec.BounceRate, 70.0, "record %d", i)
		assert.GreaterOrEqual(t, rec.AvgSessionDuration, 2.0, "record %d", i)
		assert.Less(t, rec.AvgSessionDuration, 10.0, "record %d", i)
		assert.GreaterOrEqual(t, rec.ConversionRate, 0.5, "record %d", i)
		assert.Less(t, rec.ConversionRate, 5.0, "record %d", i)
		assert.GreaterOrEqual(t, rec.Revenue, 100.0, "record %d", i)
		assert.Less(t, rec.Revenue, 1000.0, "record %d", i)
		assert.True(t, validDevices[rec.Device], "record %d device %q", i, rec.Device)
		assert.True(t, validSources[rec.Source], "record %d source %q", i, rec.Source)
	}
}

func TestGenerateDiurnalPattern(t *testing.T) {
	// The diurnal factor 0.5 + 0.5*sin((hour-12)*pi/12) is largest at 18:00
	// and smallest at 06:00. Over 30 days the hourly noise averages out, so
	// the summed page views must peak exactly at the factor's maximum.
	dataset := testGenerator(42).Generate(30)

	viewsByHour := make(map[int]int)
	for _, rec := range dataset {
		viewsByHour[rec.Hour] += rec.PageViews
	}

	peak := 0
	for hour := 1; hour < 24; hour++ {
		if viewsByHour[hour] > viewsByHour[peak] {
			peak = hour
		}
	}
	assert.Equal(t, 18, peak)
	assert.Greater(t, viewsByHour[18], viewsByHour[6])
}

func TestGenerateWeeklyPatternFavorsLateWeekdays(t *testing.T) {
	// Base traffic is 1000 + 200*dow, so Sundays carry roughly double the
	// Monday volume over a 4-week window.
	dataset := testGenerator(42).Generate(28)

	sums := make(map[int]int)
	counts := make(map[int]int)
	for _, rec := range dataset {
		sums[rec.DayOfWeek] += rec.PageViews
		counts[rec.DayOfWeek]++
	}

	mondayMean := float64(sums[0]) / float64(counts[0])
	sundayMean := float64(sums[6]) / float64(counts[6])
	assert.Greater(t, sundayMean, mondayMean)
}
