package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"BetaScope/internal/calculator"
	"BetaScope/internal/collector"
	"BetaScope/internal/dataset"
	"BetaScope/internal/model"
	"BetaScope/internal/recorder"
)

// Params fixes one analysis invocation.
type Params struct {
	Symbol         string
	IndexSymbol    string
	RiskFreeSeries string
	Start          time.Time
	End            time.Time
	Scenario       model.Scenario
}

// Validate checks the parameters before any network I/O.
func (p Params) Validate() error {
	if p.Symbol == "" {
		return &model.InvalidParameterError{Param: "symbol", Reason: "must not be empty"}
	}
	if p.IndexSymbol == "" {
		return &model.InvalidParameterError{Param: "index_symbol", Reason: "must not be empty"}
	}
	if p.RiskFreeSeries == "" {
		return &model.InvalidParameterError{Param: "risk_free_series", Reason: "must not be empty"}
	}
	if !p.Start.Before(p.End) {
		return &model.InvalidParameterError{Param: "date_range", Reason: "start must precede end"}
	}
	if cl := p.Scenario.ConfidenceLevel; cl <= 0 || cl >= 1 {
		return &model.InvalidParameterError{
			Param:  "confidence_level",
			Reason: fmt.Sprintf("must be strictly between 0 and 1, got %g", cl),
		}
	}
	return nil
}

// Result carries every stage's output. Each field is produced exactly once
// and never mutated afterwards.
type Result struct {
	Dataset    model.JoinedDataset
	Returns    []model.ReturnRow
	Regression model.RegressionResult
	Interval   model.PredictionInterval
}

// Pipeline runs the four analysis stages in order.
type Pipeline struct {
	Collector *collector.Collector
	Recorder  recorder.Recorder
}

// New creates a new Pipeline.
func New(col *collector.Collector, rec recorder.Recorder) *Pipeline {
	return &Pipeline{Collector: col, Recorder: rec}
}

// Run executes acquisition, alignment, regression, and inference for the
// given parameters. Any stage failure aborts the run; no partial results are
// returned.
func (p *Pipeline) Run(ctx context.Context, params Params) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	data, err := p.Collector.Collect(ctx, params.Symbol, params.IndexSymbol,
		params.RiskFreeSeries, params.Start, params.End)
	if err != nil {
		return nil, err
	}

	ds, err := dataset.Join(data.Asset, data.Index, data.RiskFree)
	if err != nil {
		return nil, fmt.Errorf("align series: %w", err)
	}
	log.Printf("[INFO] aligned dataset: %d rows", len(ds.Rows))

	returns, err := calculator.ComputeReturns(ds)
	if err != nil {
		return nil, fmt.Errorf("compute returns: %w", err)
	}

	regression, err := calculator.Regress(returns)
	if err != nil {
		return nil, fmt.Errorf("fit regression: %w", err)
	}
	log.Printf("[INFO] beta=%.4f sigma=%.6f n=%d", regression.Beta,
		regression.ResidualStdError, regression.NObs)

	interval, err := calculator.PredictInterval(regression, params.Scenario)
	if err != nil {
		return nil, fmt.Errorf("prediction interval: %w", err)
	}

	if err := p.Recorder.RecordAnalysis(&recorder.AnalysisRecord{
		AssetSymbol:      params.Symbol,
		IndexSymbol:      params.IndexSymbol,
		RiskFreeSeries:   params.RiskFreeSeries,
		StartDate:        params.Start,
		EndDate:          params.End,
		NObs:             regression.NObs,
		Beta:             regression.Beta,
		Intercept:        regression.Intercept,
		ResidualStdError: regression.ResidualStdError,
		DegreesOfFreedom: regression.DegreesOfFreedom,
		RiskFreeRate:     params.Scenario.RiskFreeRate,
		MarketReturn:     params.Scenario.MarketReturn,
		ConfidenceLevel:  params.Scenario.ConfidenceLevel,
		PointEstimate:    interval.PointEstimate,
		LowerBound:       interval.LowerBound,
		UpperBound:       interval.UpperBound,
	}); err != nil {
		log.Printf("[WARN] record analysis failed: %v", err)
	}

	return &Result{
		Dataset:    ds,
		Returns:    returns,
		Regression: regression,
		Interval:   interval,
	}, nil
}
