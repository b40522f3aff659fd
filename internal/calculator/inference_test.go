package calculator

import (
	"errors"
	"math"
	"testing"

	"BetaScope/internal/model"
)

func TestPredictInterval_EndToEndScenario(t *testing.T) {
	res := model.RegressionResult{
		Beta:             1.57,
		ResidualStdError: 0.02,
		NObs:             2002,
		DegreesOfFreedom: 2000,
	}
	sc := model.Scenario{
		RiskFreeRate:    0.05,
		MarketReturn:    0.133,
		ConfidenceLevel: 0.90,
	}

	pi, err := PredictInterval(res, sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := pi.PointEstimate, 0.05+1.57*0.083; math.Abs(got-want) > 1e-9 {
		t.Errorf("point estimate = %v, want %v", got, want)
	}
	// with df=2000 the t quantile is close to the normal 1.645
	if math.Abs(pi.LowerBound-(-0.3419)) > 0.002 {
		t.Errorf("lower bound = %v, want about -0.3419", pi.LowerBound)
	}
	if math.Abs(pi.UpperBound-0.7025) > 0.002 {
		t.Errorf("upper bound = %v, want about 0.7025", pi.UpperBound)
	}
	if pi.ConfidenceLevel != 0.90 {
		t.Errorf("confidence level = %v, want 0.90", pi.ConfidenceLevel)
	}
}

func TestPredictInterval_Symmetry(t *testing.T) {
	res := model.RegressionResult{
		Beta:             0.8,
		ResidualStdError: 0.013,
		NObs:             500,
		DegreesOfFreedom: 498,
	}
	sc := model.Scenario{RiskFreeRate: 0.03, MarketReturn: 0.10, ConfidenceLevel: 0.95}

	pi, err := PredictInterval(res, sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	upper := pi.UpperBound - pi.PointEstimate
	lower := pi.PointEstimate - pi.LowerBound
	if math.Abs(upper-lower) > 1e-12 {
		t.Errorf("interval not symmetric: +%v vs -%v", upper, lower)
	}
	if upper <= 0 {
		t.Errorf("interval has non-positive half width %v", upper)
	}
}

func TestPredictInterval_WiderAtHigherConfidence(t *testing.T) {
	res := model.RegressionResult{
		Beta:             1.0,
		ResidualStdError: 0.02,
		DegreesOfFreedom: 100,
	}
	sc := model.Scenario{RiskFreeRate: 0.05, MarketReturn: 0.10, ConfidenceLevel: 0.90}

	narrow, err := PredictInterval(res, sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sc.ConfidenceLevel = 0.99
	wide, err := PredictInterval(res, sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wide.UpperBound-wide.LowerBound <= narrow.UpperBound-narrow.LowerBound {
		t.Errorf("99%% interval should be wider than 90%%: %v vs %v",
			wide.UpperBound-wide.LowerBound, narrow.UpperBound-narrow.LowerBound)
	}
}

func TestPredictInterval_InvalidConfidence(t *testing.T) {
	res := model.RegressionResult{DegreesOfFreedom: 100, ResidualStdError: 0.02}
	for _, cl := range []float64{0, 1, -0.5, 1.2} {
		sc := model.Scenario{RiskFreeRate: 0.05, MarketReturn: 0.10, ConfidenceLevel: cl}
		_, err := PredictInterval(res, sc)
		var invalid *model.InvalidParameterError
		if !errors.As(err, &invalid) {
			t.Errorf("confidence %v: expected InvalidParameterError, got %v", cl, err)
		}
	}
}

func TestPredictInterval_NoDegreesOfFreedom(t *testing.T) {
	res := model.RegressionResult{DegreesOfFreedom: 0, ResidualStdError: 0.02}
	sc := model.Scenario{RiskFreeRate: 0.05, MarketReturn: 0.10, ConfidenceLevel: 0.90}

	_, err := PredictInterval(res, sc)
	var invalid *model.InvalidParameterError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidParameterError, got %v", err)
	}
}
