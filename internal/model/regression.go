package model

// RegressionResult is the fitted OLS model of asset excess return on index
// excess return. Beta is the slope. ResidualStdError uses the n-2
// denominator.
type RegressionResult struct {
	Beta             float64
	Intercept        float64
	ResidualStdError float64
	NObs             int
	DegreesOfFreedom int
}

// Scenario holds the externally supplied inputs for the inference stage.
// RiskFreeRate and MarketReturn are annual decimals (0.05 means 5%).
type Scenario struct {
	RiskFreeRate    float64
	MarketReturn    float64
	ConfidenceLevel float64
}

// PredictionInterval is the interval expected to contain the asset's
// annual return at the stated confidence level.
type PredictionInterval struct {
	PointEstimate   float64
	LowerBound      float64
	UpperBound      float64
	ConfidenceLevel float64
}
