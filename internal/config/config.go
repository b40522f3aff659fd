package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"BetaScope/internal/model"
)

const dateLayout = "2006-01-02"

// Config holds all application configuration.
type Config struct {
	Analysis struct {
		Symbol         string `yaml:"symbol"`
		IndexSymbol    string `yaml:"index_symbol"`
		RiskFreeSeries string `yaml:"risk_free_series"`
		StartDate      string `yaml:"start_date"`
		EndDate        string `yaml:"end_date"`
	} `yaml:"analysis"`
	// RiskFreeRate and MarketReturn are pointers so an explicit 0.0 in the
	// file is distinguishable from an absent key; a zero risk-free rate is a
	// legitimate scenario.
	Scenario struct {
		RiskFreeRate    *float64 `yaml:"risk_free_rate"`
		MarketReturn    *float64 `yaml:"market_return"`
		ConfidenceLevel float64  `yaml:"confidence_level"`
	} `yaml:"scenario"`
	DataSource struct {
		FredAPIKey string `yaml:"fred_api_key"`
	} `yaml:"data_source"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Output struct {
		ChartPath  string `yaml:"chart_path"`
		ReportPath string `yaml:"report_path"`
	} `yaml:"output"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.Analysis.Symbol = v
	}
	if v := os.Getenv("INDEX_SYMBOL"); v != "" {
		cfg.Analysis.IndexSymbol = v
	}
	if v := os.Getenv("RISK_FREE_SERIES"); v != "" {
		cfg.Analysis.RiskFreeSeries = v
	}
	if v := os.Getenv("START_DATE"); v != "" {
		cfg.Analysis.StartDate = v
	}
	if v := os.Getenv("END_DATE"); v != "" {
		cfg.Analysis.EndDate = v
	}
	if v := os.Getenv("FRED_API_KEY"); v != "" {
		cfg.DataSource.FredAPIKey = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Analysis.Symbol == "" {
		cfg.Analysis.Symbol = "AAPL"
	}
	if cfg.Analysis.IndexSymbol == "" {
		cfg.Analysis.IndexSymbol = "SP500"
	}
	if cfg.Analysis.RiskFreeSeries == "" {
		cfg.Analysis.RiskFreeSeries = "DGS3MO"
	}
	if cfg.Analysis.EndDate == "" {
		cfg.Analysis.EndDate = time.Now().Format(dateLayout)
	}
	if cfg.Analysis.StartDate == "" {
		if end, err := time.Parse(dateLayout, cfg.Analysis.EndDate); err == nil {
			cfg.Analysis.StartDate = end.AddDate(-3, 0, 0).Format(dateLayout)
		}
	}
	if cfg.Scenario.RiskFreeRate == nil {
		cfg.Scenario.RiskFreeRate = floatPtr(0.05)
	}
	if cfg.Scenario.MarketReturn == nil {
		cfg.Scenario.MarketReturn = floatPtr(0.133)
	}
	if cfg.Scenario.ConfidenceLevel == 0 {
		cfg.Scenario.ConfidenceLevel = 0.90
	}
	if cfg.Output.ChartPath == "" {
		cfg.Output.ChartPath = "data/regression.html"
	}

	return cfg, nil
}

func floatPtr(v float64) *float64 { return &v }

// ScenarioInputs returns the scenario scalars with defaults applied.
func (c *Config) ScenarioInputs() model.Scenario {
	sc := model.Scenario{ConfidenceLevel: c.Scenario.ConfidenceLevel}
	if c.Scenario.RiskFreeRate != nil {
		sc.RiskFreeRate = *c.Scenario.RiskFreeRate
	}
	if c.Scenario.MarketReturn != nil {
		sc.MarketReturn = *c.Scenario.MarketReturn
	}
	return sc
}

// DateRange parses the configured start/end dates.
func (c *Config) DateRange() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, c.Analysis.StartDate)
	if err != nil {
		return start, end, &model.InvalidParameterError{Param: "start_date", Reason: err.Error()}
	}
	end, err = time.Parse(dateLayout, c.Analysis.EndDate)
	if err != nil {
		return start, end, &model.InvalidParameterError{Param: "end_date", Reason: err.Error()}
	}
	return start, end, nil
}

// Validate checks all parameters eagerly, before any network I/O.
func (c *Config) Validate() error {
	if c.Analysis.Symbol == "" {
		return &model.InvalidParameterError{Param: "symbol", Reason: "must not be empty"}
	}
	if c.Analysis.IndexSymbol == "" {
		return &model.InvalidParameterError{Param: "index_symbol", Reason: "must not be empty"}
	}
	if c.Analysis.RiskFreeSeries == "" {
		return &model.InvalidParameterError{Param: "risk_free_series", Reason: "must not be empty"}
	}
	start, end, err := c.DateRange()
	if err != nil {
		return err
	}
	if !start.Before(end) {
		return &model.InvalidParameterError{
			Param:  "start_date",
			Reason: fmt.Sprintf("must precede end_date (%s >= %s)", c.Analysis.StartDate, c.Analysis.EndDate),
		}
	}
	if cl := c.Scenario.ConfidenceLevel; cl <= 0 || cl >= 1 {
		return &model.InvalidParameterError{
			Param:  "confidence_level",
			Reason: fmt.Sprintf("must be strictly between 0 and 1, got %g", cl),
		}
	}
	return nil
}
