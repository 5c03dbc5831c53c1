// Package traffic defines the site-traffic record model, dataset loading, and
// synthetic dataset generation.
package traffic

import "time"

// DateLayout is the calendar-day key format used across all aggregations.
const DateLayout = "2006-01-02"

// Device is the device category a visit originated from.
type Device string

const (
	DeviceDesktop Device = "Desktop"
	DeviceMobile  Device = "Mobile"
	DeviceTablet  Device = "Tablet"
)

// Source is the acquisition channel a visit originated from.
type Source string

const (
	SourceOrganic  Source = "Organic"
	SourceDirect   Source = "Direct"
	SourceReferral Source = "Referral"
	SourcePaid     Source = "Paid"
)

// TrafficRecord is one hourly row of site-traffic measurements.
//
// Date, Hour and DayOfWeek are derived from Timestamp via DeriveTimeFields and
// must stay consistent with it; every ingestion path (generation or loading)
// populates them through that single helper.
type TrafficRecord struct {
	Timestamp          time.Time `json:"timestamp"`
	Date               string    `json:"date"`
	Hour               int       `json:"hour"`
	DayOfWeek          int       `json:"day_of_week"` // Monday=0 .. Sunday=6
	PageViews          int       `json:"page_views"`
	UniqueVisitors     int       `json:"unique_visitors"`
	BounceRate         float64   `json:"bounce_rate"`          // percentage, 0-100
	AvgSessionDuration float64   `json:"avg_session_duration"` // minutes
	ConversionRate     float64   `json:"conversion_rate"`      // percentage, 0-100
	Revenue            float64   `json:"revenue"`
	Device             Device    `json:"device"`
	Source             Source    `json:"source"`
}

// DeriveTimeFields normalizes the timestamp to UTC and recomputes the derived
// calendar fields from it.
func (r *TrafficRecord) DeriveTimeFields() {
	ts := r.Timestamp.UTC()
	r.Timestamp = ts
	r.Date = ts.Format(DateLayout)
	r.Hour = ts.Hour()
	r.DayOfWeek = mondayIndexedWeekday(ts)
}

// mondayIndexedWeekday maps time.Weekday (Sunday=0) onto Monday=0 .. Sunday=6.
func mondayIndexedWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
