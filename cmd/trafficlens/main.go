// main.go - traffic analytics CLI and dashboard server
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"trafficlens/internal"
	"trafficlens/internal/analytics"
	"trafficlens/internal/config"
	"trafficlens/internal/dashboard"
	"trafficlens/internal/logging"
	"trafficlens/internal/traffic"
)

const (
	defaultShutdownTimeout = 30 * time.Second
)

func main() {
	cfg := config.GetConfig()

	input := flag.String("input", "", "path to a JSON dataset file; omit to generate sample data")
	days := flag.Int("days", cfg.GeneratorDays, "days of sample data to generate")
	seed := flag.Int64("seed", cfg.GeneratorSeed, "sample generator seed")
	reportPath := flag.String("report", cfg.GetReportPath(), "JSON report output path")
	dashboardPath := flag.String("dashboard", cfg.GetDashboardPath(), "HTML dashboard output path")
	serve := flag.Bool("serve", false, "serve the dashboard over HTTP after exporting")
	flag.Parse()

	logger := logging.New(cfg)

	// Load or generate the dataset
	var dataset traffic.Dataset
	if *input != "" {
		var err error
		dataset, err = traffic.LoadDataset(*input)
		if err != nil {
			log.Fatalf("Failed to load dataset: %v", err)
		}
	} else {
		dataset = traffic.NewGenerator(logger, *seed).Generate(*days)
	}

	// Compute the report
	report, err := analytics.BuildReport(dataset, cfg.TrendWindowDays)
	if err != nil {
		log.Fatalf("Failed to build report: %v", err)
	}

	// Export the JSON report and the HTML dashboard
	for _, path := range []string{*reportPath, *dashboardPath} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}
	if err := report.WriteFile(*reportPath); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	if err := dashboard.WriteHTML(report, *dashboardPath); err != nil {
		log.Fatalf("Failed to write dashboard: %v", err)
	}

	printSummary(report, *reportPath, *dashboardPath)

	if *serve {
		app := internal.NewApp(cfg, logger, report)
		go func() {
			if err := app.Start(); err != nil {
				log.Fatalf("Server error: %v", err)
			}
		}()
		waitForShutdownSignal(app)
	}
}

// printSummary writes the human-readable report summary to stdout.
func printSummary(report analytics.Report, reportPath, dashboardPath string) {
	p := message.NewPrinter(language.English)
	m := report.Metrics

	p.Printf("Total page views:         %d\n", m.TotalPageViews)
	p.Printf("Total unique visitors:    %d\n", m.TotalUniqueVisitors)
	p.Printf("Average conversion rate:  %.2f%%\n", m.AverageConversionRate)
	p.Printf("Total revenue:            $%.2f\n", m.TotalRevenue)
	p.Printf("Average bounce rate:      %.2f%%\n", m.AverageBounceRate)
	p.Printf("Average session duration: %.2f min\n", m.AverageSessionDuration)
	p.Printf("Peak traffic hour:        %02d:00\n", m.PeakTrafficHour)
	p.Printf("Best day of week:         %s\n", m.BestDayOfWeek)
	p.Printf("Top device:               %s\n", m.TopDevice)
	p.Printf("Top source:               %s\n", m.TopSource)

	fmt.Println()
	for _, metric := range analytics.TrendedMetrics {
		trend := report.Trends[metric]
		if trend.Empty() {
			continue
		}
		p.Printf("%s: %.2f recent vs %.2f previous (%+.2f%%, %s)\n",
			metric, trend.RecentAverage, trend.PreviousAverage,
			trend.ChangePercentage, trend.Trend)
	}

	fmt.Println()
	for i, entry := range report.TopHours {
		p.Printf("%d. %s: %d views (%.1f%%)\n", i+1, entry.Hour, entry.PageViews, entry.Percentage)
	}

	fmt.Println()
	fmt.Printf("Report written to %s\n", reportPath)
	fmt.Printf("Dashboard written to %s\n", dashboardPath)
}

// waitForShutdownSignal sets up signal handling and performs graceful shutdown
func waitForShutdownSignal(app *internal.Application) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	sig := <-sigChan
	log.Printf("Received signal: %v", sig)

	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	if err := app.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
		os.Exit(1)
	}
	log.Println("Server shutdown complete")
}
