package traffic

import (
	"log/slog"
	"math"
	"math/rand"
	"time"
)

// Generator produces synthetic traffic datasets with a weekly and diurnal
// shape, for demos and deterministic tests. The same seed always yields the
// same dataset for a given window.
type Generator struct {
	logger *slog.Logger
	seed   int64
	now    func() time.Time
}

// NewGenerator creates a generator with a fixed seed.
func NewGenerator(logger *slog.Logger, seed int64) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		logger: logger,
		seed:   seed,
		now:    time.Now,
	}
}

// Generate returns days*24 hourly records covering the window that ends at the
// current UTC day and starts days days earlier. days <= 0 yields an empty
// dataset.
//
// Traffic volume follows two structural patterns:
//   - weekly: base traffic grows with the day of week (1000 + 200*dow)
//   - diurnal: an hour's share is 0.5 + 0.5*sin((hour-12)*pi/12), a sinusoid
//     that bottoms out at 06:00 and peaks at 18:00
//
// Gaussian noise is added on top of both count signals. Counts are clamped at
// zero; the noise can otherwise push low-traffic hours negative.
func (g *Generator) Generate(days int) Dataset {
	if days <= 0 {
		g.logger.Warn("generate called with non-positive window, returning empty dataset",
			slog.Int("days", days))
		return Dataset{}
	}

	g.logger.Info("generating sample traffic dataset",
		slog.Int("days", days), slog.Int64("seed", g.seed))

	rng := rand.New(rand.NewSource(g.seed))
	base := g.now().UTC().AddDate(0, 0, -days)

	records := make(Dataset, 0, days*24)
	for day := 0; day < days; day++ {
		current := base.AddDate(0, 0, day)
		dayOfWeek := mondayIndexedWeekday(current)
		baseTraffic := 1000.0 + 200.0*float64(dayOfWeek)

		for hour := 0; hour < 24; hour++ {
			hourFactor := 0.5 + 0.5*math.Sin(float64(hour-12)*math.Pi/12)
			signal := baseTraffic * hourFactor

			rec := TrafficRecord{
				Timestamp: time.Date(current.Year(), current.Month(), current.Day(),
					hour, 0, 0, 0, time.UTC),
				PageViews:          clampCount(signal + rng.NormFloat64()*50),
				UniqueVisitors:     clampCount(signal*0.7 + rng.NormFloat64()*30),
				BounceRate:         uniformIn(rng, 30, 70),
				AvgSessionDuration: uniformIn(rng, 2, 10),
				ConversionRate:     uniformIn(rng, 0.5, 5),
				Revenue:            uniformIn(rng, 100, 1000),
				Device:             pickDevice(rng),
				Source:             pickSource(rng),
			}
			rec.DeriveTimeFields()
			records = append(records, rec)
		}
	}

	g.logger.Info("sample dataset generated", slog.Int("records", len(records)))
	return records
}

func clampCount(v float64) int {
	if v < 0 {
		return 0
	}
	return int(v)
}

func uniformIn(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Device mix: 60% desktop, 30% mobile, 10% tablet.
func pickDevice(rng *rand.Rand) Device {
	r := rng.Float64()
	switch {
	case r < 0.6:
		return DeviceDesktop
	case r < 0.9:
		return DeviceMobile
	default:
		return DeviceTablet
	}
}

// Source mix: 40% organic, 30% direct, 20% referral, 10% paid.
func pickSource(rng *rand.Rand) Source {
	r := rng.Float64()
	switch {
	case r < 0.4:
		return SourceOrganic
	case r < 0.7:
		return SourceDirect
	case r < 0.9:
		return SourceReferral
	default:
		return SourcePaid
	}
}
