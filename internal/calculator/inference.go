package calculator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"BetaScope/internal/model"
)

// PredictInterval builds the prediction interval for the asset's annual
// return under the supplied scenario. The daily residual standard error is
// scaled by sqrt(252), assuming independent daily returns, and the critical
// value comes from a Student-t with the regression's degrees of freedom.
func PredictInterval(res model.RegressionResult, sc model.Scenario) (model.PredictionInterval, error) {
	var pi model.PredictionInterval

	if sc.ConfidenceLevel <= 0 || sc.ConfidenceLevel >= 1 {
		return pi, &model.InvalidParameterError{
			Param:  "confidence_level",
			Reason: fmt.Sprintf("must be strictly between 0 and 1, got %g", sc.ConfidenceLevel),
		}
	}
	if res.DegreesOfFreedom < 1 {
		return pi, &model.InvalidParameterError{
			Param:  "degrees_of_freedom",
			Reason: fmt.Sprintf("must be at least 1, got %d", res.DegreesOfFreedom),
		}
	}

	expectedExcess := res.Beta * (sc.MarketReturn - sc.RiskFreeRate)
	point := sc.RiskFreeRate + expectedExcess
	annualStdErr := res.ResidualStdError * math.Sqrt(tradingDaysPerYear)

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(res.DegreesOfFreedom)}
	t := tDist.Quantile((1 + sc.ConfidenceLevel) / 2)

	pi = model.PredictionInterval{
		PointEstimate:   point,
		LowerBound:      point - t*annualStdErr,
		UpperBound:      point + t*annualStdErr,
		ConfidenceLevel: sc.ConfidenceLevel,
	}
	return pi, nil
}
