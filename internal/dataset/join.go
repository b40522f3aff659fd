package dataset

import (
	"BetaScope/internal/model"
)

// Join aligns the three acquired series into one table keyed by date.
//
// Asset and index prices are inner-joined: only dates present in both
// survive. The risk-free series is then left-joined onto the result, since
// its provider quotes on a different calendar and may miss dates. Output
// ordering follows the asset series, strictly ascending.
func Join(asset, index model.PriceSeries, riskFree model.RateSeries) (model.JoinedDataset, error) {
	ds := model.JoinedDataset{
		AssetSymbol: asset.Symbol,
		IndexSymbol: index.Symbol,
	}

	indexByDay := make(map[int64]float64, len(index.Points))
	for _, p := range index.Points {
		indexByDay[model.Day(p.Date).Unix()] = p.Price
	}
	rateByDay := make(map[int64]float64, len(riskFree.Points))
	for _, p := range riskFree.Points {
		rateByDay[model.Day(p.Date).Unix()] = p.AnnualRatePercent
	}

	rows := make([]model.JoinedRow, 0, len(asset.Points))
	for _, p := range asset.Points {
		day := model.Day(p.Date)
		ip, ok := indexByDay[day.Unix()]
		if !ok {
			continue // inner join: require both prices
		}
		row := model.JoinedRow{
			Date:       day,
			AssetPrice: p.Price,
			IndexPrice: ip,
		}
		if rate, ok := rateByDay[day.Unix()]; ok {
			row.RiskFreeRatePercent = rate
			row.HasRiskFree = true
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return ds, &model.InsufficientDataError{
			Reason: "asset and index series share no dates",
		}
	}

	ds.Rows = forwardFill(rows)

	filled := 0
	for _, r := range ds.Rows {
		if r.HasRiskFree {
			filled++
		}
	}
	if filled == 0 {
		return ds, &model.InsufficientDataError{
			Reason: "risk-free series shares no dates with the price series",
			N:      len(ds.Rows),
		}
	}
	return ds, nil
}

// forwardFill fills each missing risk-free value with the most recent prior
// non-missing one. Leading rows with no prior value stay missing; the return
// stage drops them.
func forwardFill(rows []model.JoinedRow) []model.JoinedRow {
	out := make([]model.JoinedRow, len(rows))
	copy(out, rows)

	var last float64
	seen := false
	for i := range out {
		if out[i].HasRiskFree {
			last = out[i].RiskFreeRatePercent
			seen = true
			continue
		}
		if seen {
			out[i].RiskFreeRatePercent = last
			out[i].HasRiskFree = true
		}
	}
	return out
}
