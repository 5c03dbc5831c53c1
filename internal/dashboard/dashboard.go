// Package dashboard renders the HTML dashboard from a report document.
package dashboard

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"

	"trafficlens/internal/analytics"
	"trafficlens/web"
)

// TemplateName is the dashboard template file inside the embedded web assets.
const TemplateName = "dashboard.html"

// View is the template data for the dashboard page. The chart payloads are
// pre-marshaled so the template can hand them to Plotly as JS object literals.
type View struct {
	GeneratedAt string
	Metrics     analytics.MetricsSnapshot
	TopHours    []analytics.TopHoursEntry
	Trends      map[string]analytics.TrendResult
	DailyJSON   template.JS
	HourlyJSON  template.JS
	DeviceJSON  template.JS
	SourceJSON  template.JS
}

// NewView builds the template data from a report.
func NewView(report analytics.Report) (View, error) {
	daily, err := json.Marshal(report.DailyStats)
	if err != nil {
		return View{}, fmt.Errorf("error serializing daily stats: %w", err)
	}
	hourly, err := json.Marshal(report.HourlyStats)
	if err != nil {
		return View{}, fmt.Errorf("error serializing hourly stats: %w", err)
	}
	devices, err := json.Marshal(report.DeviceStats)
	if err != nil {
		return View{}, fmt.Errorf("error serializing device stats: %w", err)
	}
	sources, err := json.Marshal(report.SourceStats)
	if err != nil {
		return View{}, fmt.Errorf("error serializing source stats: %w", err)
	}

	return View{
		GeneratedAt: report.GeneratedAt,
		Metrics:     report.Metrics,
		TopHours:    report.TopHours,
		Trends:      report.Trends,
		DailyJSON:   template.JS(daily),
		HourlyJSON:  template.JS(hourly),
		DeviceJSON:  template.JS(devices),
		SourceJSON:  template.JS(sources),
	}, nil
}

// WriteHTML renders the dashboard to a standalone HTML file.
func WriteHTML(report analytics.Report, path string) error {
	view, err := NewView(report)
	if err != nil {
		return err
	}

	tpl, err := template.ParseFS(web.Templates(), TemplateName)
	if err != nil {
		return fmt.Errorf("error parsing dashboard template: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating dashboard file %s: %w", path, err)
	}
	defer f.Close()

	if err := tpl.Execute(f, view); err != nil {
		return fmt.Errorf("error rendering dashboard: %w", err)
	}
	return nil
}
