package collector

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"BetaScope/internal/model"
)

// MockPriceFetcher returns controllable fixed data for development and testing.
type MockPriceFetcher struct {
	Series   model.PriceSeries
	BySymbol map[string]model.PriceSeries
	Err      error
}

func (m *MockPriceFetcher) Name() string { return "mock" }

func (m *MockPriceFetcher) FetchPrices(_ context.Context, symbol string, _, _ time.Time) (model.PriceSeries, error) {
	if m.Err != nil {
		return model.PriceSeries{}, m.Err
	}
	s := m.Series
	if mapped, ok := m.BySymbol[symbol]; ok {
		s = mapped
	}
	if s.Symbol == "" {
		s.Symbol = symbol
	}
	return s, nil
}

// MockRateFetcher is the rate-side counterpart of MockPriceFetcher.
type MockRateFetcher struct {
	Series model.RateSeries
	Err    error
}

func (m *MockRateFetcher) Name() string { return "mock" }

func (m *MockRateFetcher) FetchRates(_ context.Context, seriesID string, _, _ time.Time) (model.RateSeries, error) {
	if m.Err != nil {
		return model.RateSeries{}, m.Err
	}
	s := m.Series
	if s.SeriesID == "" {
		s.SeriesID = seriesID
	}
	return s, nil
}

// MarketData bundles the three acquired series handed to the alignment stage.
type MarketData struct {
	Asset    model.PriceSeries
	Index    model.PriceSeries
	RiskFree model.RateSeries
}

// Collector orchestrates the three independent acquisition calls.
type Collector struct {
	Prices PriceFetcher
	Rates  RateFetcher
}

// NewCollector creates a new Collector.
func NewCollector(prices PriceFetcher, rates RateFetcher) *Collector {
	return &Collector{Prices: prices, Rates: rates}
}

// Collect fetches the asset, index, and risk-free series concurrently and
// waits for all three before returning. A failure in any fetch fails the
// whole collection.
func (c *Collector) Collect(ctx context.Context, symbol, indexSymbol, riskFreeSeries string, start, end time.Time) (*MarketData, error) {
	data := &MarketData{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := c.Prices.FetchPrices(ctx, symbol, start, end)
		if err != nil {
			return fmt.Errorf("fetch asset prices: %w", err)
		}
		data.Asset = s
		return nil
	})
	g.Go(func() error {
		s, err := c.Prices.FetchPrices(ctx, indexSymbol, start, end)
		if err != nil {
			return fmt.Errorf("fetch index prices: %w", err)
		}
		data.Index = s
		return nil
	})
	g.Go(func() error {
		s, err := c.Rates.FetchRates(ctx, riskFreeSeries, start, end)
		if err != nil {
			return fmt.Errorf("fetch risk-free rates: %w", err)
		}
		data.RiskFree = s
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("[INFO] collected %d asset, %d index, %d risk-free observations",
		len(data.Asset.Points), len(data.Index.Points), len(data.RiskFree.Points))
	return data, nil
}
