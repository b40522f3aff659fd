package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"

	"BetaScope/internal/collector"
	"BetaScope/internal/config"
	"BetaScope/internal/pipeline"
	"BetaScope/internal/plot"
	"BetaScope/internal/recorder"
	"BetaScope/internal/report"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] BetaScope starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	start, end, err := cfg.DateRange()
	if err != nil {
		log.Fatalf("[FATAL] parse date range: %v", err)
	}

	// Init fetchers
	prices := collector.NewYahooFetcher(cfg.Proxy)
	rates := collector.NewFredFetcher(cfg.DataSource.FredAPIKey, cfg.Proxy)
	log.Printf("[INFO] data sources: %s (prices), %s (risk-free)", prices.Name(), rates.Name())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scenario := cfg.ScenarioInputs()

	pipe := pipeline.New(collector.NewCollector(prices, rates), rec)
	result, err := pipe.Run(ctx, pipeline.Params{
		Symbol:         cfg.Analysis.Symbol,
		IndexSymbol:    cfg.Analysis.IndexSymbol,
		RiskFreeSeries: cfg.Analysis.RiskFreeSeries,
		Start:          start,
		End:            end,
		Scenario:       scenario,
	})
	if err != nil {
		log.Fatalf("[FATAL] analysis failed: %v", err)
	}

	text := report.Format(&report.Analysis{
		AssetSymbol: cfg.Analysis.Symbol,
		IndexSymbol: cfg.Analysis.IndexSymbol,
		StartDate:   start,
		EndDate:     end,
		Returns:     result.Returns,
		Regression:  result.Regression,
		Scenario:    scenario,
		Interval:    result.Interval,
	})
	fmt.Println(text)

	if cfg.Output.ReportPath != "" {
		if err := os.WriteFile(cfg.Output.ReportPath, []byte(text), 0o644); err != nil {
			log.Printf("[WARN] write report file: %v", err)
		}
	}

	if cfg.Output.ChartPath != "" {
		// Daily-scale half width of the interval band around the fitted line.
		band := (result.Interval.UpperBound - result.Interval.PointEstimate) / math.Sqrt(252)
		if err := plot.Render(cfg.Output.ChartPath, result.Returns, result.Regression, band); err != nil {
			log.Printf("[WARN] render chart: %v", err)
		} else {
			log.Printf("[INFO] chart written: %s", cfg.Output.ChartPath)
		}
	}

	log.Println("[INFO] BetaScope finished")
}
