package calculator

import (
	"math"

	"BetaScope/internal/model"
)

// Money-market quotes compound on a 360-day year; equity volatility
// annualizes over 252 trading days. The two conventions are not
// interchangeable.
const (
	riskFreeCompoundingDays = 360
	tradingDaysPerYear      = 252
)

// DailyRiskFreeRate converts an annualized percentage quote (5.0 means 5%)
// to an effective daily rate.
func DailyRiskFreeRate(annualRatePercent float64) float64 {
	return math.Pow(1+annualRatePercent/100, 1.0/riskFreeCompoundingDays) - 1
}

// ComputeReturns derives per-date simple returns and excess returns from the
// aligned dataset. The first row has no prior-day price and is dropped, as is
// any row whose risk-free value forward-fill could not repair.
func ComputeReturns(ds model.JoinedDataset) ([]model.ReturnRow, error) {
	if len(ds.Rows) < 2 {
		return nil, &model.InsufficientDataError{
			Reason: "need at least two aligned rows to compute a return",
			N:      len(ds.Rows),
		}
	}

	rows := make([]model.ReturnRow, 0, len(ds.Rows)-1)
	for i := 1; i < len(ds.Rows); i++ {
		cur, prev := ds.Rows[i], ds.Rows[i-1]
		if !cur.HasRiskFree {
			continue // leading gap the forward-fill could not repair
		}
		rf := DailyRiskFreeRate(cur.RiskFreeRatePercent)
		assetRet := cur.AssetPrice/prev.AssetPrice - 1
		indexRet := cur.IndexPrice/prev.IndexPrice - 1
		rows = append(rows, model.ReturnRow{
			Date:              cur.Date,
			AssetReturn:       assetRet,
			IndexReturn:       indexRet,
			RiskFreeDailyRate: rf,
			AssetExcessReturn: assetRet - rf,
			IndexExcessReturn: indexRet - rf,
		})
	}

	if len(rows) == 0 {
		return nil, &model.InsufficientDataError{
			Reason: "no rows with a usable risk-free rate",
			N:      len(ds.Rows),
		}
	}
	return rows, nil
}
