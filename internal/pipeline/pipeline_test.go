package pipeline

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BetaScope/internal/collector"
	"BetaScope/internal/model"
	"BetaScope/internal/recorder"
)

// syntheticMarket builds an index random walk and an asset whose daily return
// is exactly beta times the index return, with the risk-free rate pinned to
// zero so excess returns equal raw returns.
func syntheticMarket(t *testing.T, days int, beta float64) (*collector.MockPriceFetcher, *collector.MockRateFetcher) {
	t.Helper()
	rng := rand.New(rand.NewSource(7))

	start := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	indexPts := make([]model.PricePoint, days)
	assetPts := make([]model.PricePoint, days)
	ratePts := make([]model.RatePoint, days)

	indexPrice, assetPrice := 5000.0, 100.0
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		if i > 0 {
			r := rng.NormFloat64() * 0.01
			indexPrice *= 1 + r
			assetPrice *= 1 + beta*r
		}
		indexPts[i] = model.PricePoint{Date: d, Price: indexPrice}
		assetPts[i] = model.PricePoint{Date: d, Price: assetPrice}
		ratePts[i] = model.RatePoint{Date: d, AnnualRatePercent: 0}
	}

	prices := &collector.MockPriceFetcher{BySymbol: map[string]model.PriceSeries{
		"AAPL":  {Symbol: "AAPL", Points: assetPts},
		"SP500": {Symbol: "SP500", Points: indexPts},
	}}
	rates := &collector.MockRateFetcher{Series: model.RateSeries{SeriesID: "DGS3MO", Points: ratePts}}
	return prices, rates
}

func testParams() Params {
	return Params{
		Symbol:         "AAPL",
		IndexSymbol:    "SP500",
		RiskFreeSeries: "DGS3MO",
		Start:          time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		End:            time.Date(2023, 12, 29, 0, 0, 0, 0, time.UTC),
		Scenario: model.Scenario{
			RiskFreeRate:    0.05,
			MarketReturn:    0.133,
			ConfidenceLevel: 0.90,
		},
	}
}

func TestPipeline_RunEndToEnd(t *testing.T) {
	prices, rates := syntheticMarket(t, 300, 1.5)
	pipe := New(collector.NewCollector(prices, rates), recorder.NewNoopRecorder())

	result, err := pipe.Run(context.Background(), testParams())
	require.NoError(t, err)

	assert.InDelta(t, 1.5, result.Regression.Beta, 1e-9,
		"noiseless proportional returns must recover beta exactly")
	assert.InDelta(t, 0, result.Regression.Intercept, 1e-9)
	assert.Equal(t, 299, result.Regression.NObs, "first day has no return")
	assert.Equal(t, 297, result.Regression.DegreesOfFreedom)
	assert.Len(t, result.Returns, 299)

	// point estimate follows the CAPM line for the scenario
	assert.InDelta(t, 0.05+1.5*(0.133-0.05), result.Interval.PointEstimate, 1e-9)
	assert.Less(t, result.Interval.LowerBound, result.Interval.PointEstimate)
	assert.Greater(t, result.Interval.UpperBound, result.Interval.PointEstimate)
}

func TestPipeline_InvalidParamsBeforeFetch(t *testing.T) {
	// a fetcher that must never be reached
	prices := &collector.MockPriceFetcher{Err: errors.New("fetch should not happen")}
	rates := &collector.MockRateFetcher{Err: errors.New("fetch should not happen")}
	pipe := New(collector.NewCollector(prices, rates), recorder.NewNoopRecorder())

	params := testParams()
	params.Scenario.ConfidenceLevel = 1.5
	_, err := pipe.Run(context.Background(), params)
	var invalid *model.InvalidParameterError
	require.True(t, errors.As(err, &invalid), "got %v", err)

	params = testParams()
	params.Start, params.End = params.End, params.Start
	_, err = pipe.Run(context.Background(), params)
	require.True(t, errors.As(err, &invalid), "got %v", err)
}

func TestPipeline_ProviderFailureAborts(t *testing.T) {
	prices := &collector.MockPriceFetcher{
		Err: &model.DataUnavailableError{Source: "mock", Symbol: "AAPL", Reason: "unknown ticker"},
	}
	_, rates := syntheticMarket(t, 10, 1.0)
	pipe := New(collector.NewCollector(prices, rates), recorder.NewNoopRecorder())

	result, err := pipe.Run(context.Background(), testParams())
	assert.Nil(t, result, "no partial results on failure")
	var unavailable *model.DataUnavailableError
	require.True(t, errors.As(err, &unavailable), "got %v", err)
}

func TestPipeline_DegenerateIndex(t *testing.T) {
	start := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	days := 10
	assetPts := make([]model.PricePoint, days)
	indexPts := make([]model.PricePoint, days)
	ratePts := make([]model.RatePoint, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		assetPts[i] = model.PricePoint{Date: d, Price: 100 + float64(i)}
		indexPts[i] = model.PricePoint{Date: d, Price: 5000} // flat index
		ratePts[i] = model.RatePoint{Date: d, AnnualRatePercent: 0}
	}
	prices := &collector.MockPriceFetcher{BySymbol: map[string]model.PriceSeries{
		"AAPL":  {Symbol: "AAPL", Points: assetPts},
		"SP500": {Symbol: "SP500", Points: indexPts},
	}}
	rates := &collector.MockRateFetcher{Series: model.RateSeries{SeriesID: "DGS3MO", Points: ratePts}}
	pipe := New(collector.NewCollector(prices, rates), recorder.NewNoopRecorder())

	_, err := pipe.Run(context.Background(), testParams())
	var insufficient *model.InsufficientDataError
	require.True(t, errors.As(err, &insufficient), "got %v", err)
}
