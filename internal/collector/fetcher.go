package collector

import (
	"context"
	"time"

	"BetaScope/internal/model"
)

// PriceFetcher fetches historical closing prices for one instrument over an
// inclusive date range.
type PriceFetcher interface {
	FetchPrices(ctx context.Context, symbol string, start, end time.Time) (model.PriceSeries, error)
	Name() string
}

// RateFetcher fetches historical risk-free rate quotes (annualized
// percentages) over an inclusive date range.
type RateFetcher interface {
	FetchRates(ctx context.Context, seriesID string, start, end time.Time) (model.RateSeries, error)
	Name() string
}
