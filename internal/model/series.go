package model

import "time"

// PricePoint is a single closing-price observation.
type PricePoint struct {
	Date  time.Time
	Price float64
}

// PriceSeries holds the price history of one instrument, unique dates,
// ascending chronological order. Immutable after acquisition.
type PriceSeries struct {
	Symbol    string
	Source    string
	Points    []PricePoint
	FetchedAt time.Time
}

// RatePoint is a single risk-free rate observation. The rate is an
// annualized percentage as quoted by the provider (5.25 means 5.25%).
type RatePoint struct {
	Date              time.Time
	AnnualRatePercent float64
}

// RateSeries holds the risk-free rate history. The provider may quote on a
// sparser calendar than the price series (no weekend observations etc.).
type RateSeries struct {
	SeriesID  string
	Source    string
	Points    []RatePoint
	FetchedAt time.Time
}

// Day truncates a timestamp to its calendar date in UTC. All joins key on
// this normalized form so that providers reporting different intraday
// timestamps still align.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
