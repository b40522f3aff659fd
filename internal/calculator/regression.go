package calculator

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"BetaScope/internal/model"
)

// Regress fits an OLS line of asset excess return on index excess return
// with intercept. The slope is the CAPM beta. The residual standard error
// uses the n-2 denominator.
func Regress(rows []model.ReturnRow) (model.RegressionResult, error) {
	var res model.RegressionResult

	n := len(rows)
	if n-2 < 1 {
		return res, &model.InsufficientDataError{
			Reason: "cannot estimate residual variance with fewer than 3 observations",
			N:      n,
		}
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, r := range rows {
		xs[i] = r.IndexExcessReturn
		ys[i] = r.AssetExcessReturn
	}

	// A constant regressor has zero variance and an undefined slope. Checked
	// structurally: a computed variance of identical values can round to a
	// tiny nonzero residue instead of exactly zero.
	constant := true
	for _, x := range xs[1:] {
		if x != xs[0] {
			constant = false
			break
		}
	}
	if constant {
		return res, &model.InsufficientDataError{
			Reason: "index excess returns have zero variance, slope undefined",
			N:      n,
		}
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(beta) || math.IsInf(beta, 0) || math.IsNaN(alpha) {
		return res, &model.InsufficientDataError{
			Reason: "regression produced a non-finite coefficient",
			N:      n,
		}
	}

	var sse float64
	for i := range xs {
		resid := ys[i] - (alpha + beta*xs[i])
		sse += resid * resid
	}
	df := n - 2

	res = model.RegressionResult{
		Beta:             beta,
		Intercept:        alpha,
		ResidualStdError: math.Sqrt(sse / float64(df)),
		NObs:             n,
		DegreesOfFreedom: df,
	}
	return res, nil
}
