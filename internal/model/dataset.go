package model

import "time"

// JoinedRow is one date of the aligned dataset. AssetPrice and IndexPrice are
// always present (inner join); the risk-free rate may be absent until the
// cleaning stage forward-fills it, tracked by HasRiskFree.
type JoinedRow struct {
	Date                time.Time
	AssetPrice          float64
	IndexPrice          float64
	RiskFreeRatePercent float64
	HasRiskFree         bool
}

// JoinedDataset is the aligned three-column table, strictly ascending by
// date. Built once by the alignment stage and read-only afterwards.
type JoinedDataset struct {
	AssetSymbol string
	IndexSymbol string
	Rows        []JoinedRow
}

// ReturnRow is one date of derived returns. The first joined row has no
// prior-day price and therefore never produces a ReturnRow.
type ReturnRow struct {
	Date              time.Time
	AssetReturn       float64
	IndexReturn       float64
	RiskFreeDailyRate float64
	AssetExcessReturn float64
	IndexExcessReturn float64
}
