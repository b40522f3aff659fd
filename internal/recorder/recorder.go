package recorder

import "time"

// AnalysisRecord holds one completed run: its inputs and every number the
// regression and inference stages produced.
type AnalysisRecord struct {
	AssetSymbol      string
	IndexSymbol      string
	RiskFreeSeries   string
	StartDate        time.Time
	EndDate          time.Time
	NObs             int
	Beta             float64
	Intercept        float64
	ResidualStdError float64
	DegreesOfFreedom int
	RiskFreeRate     float64
	MarketReturn     float64
	ConfidenceLevel  float64
	PointEstimate    float64
	LowerBound       float64
	UpperBound       float64
}

// Recorder persists run history for later comparison.
type Recorder interface {
	RecordAnalysis(rec *AnalysisRecord) error
	Close() error
}
