package model

import "fmt"

// DataUnavailableError indicates a provider returned no data for the
// requested symbol or date range. Not recoverable; aborts the pipeline.
type DataUnavailableError struct {
	Source string
	Symbol string
	Reason string
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("%s: no data for %q: %s", e.Source, e.Symbol, e.Reason)
}

// InsufficientDataError indicates too few valid observations to estimate the
// regression, or a degenerate regressor with zero variance.
type InsufficientDataError struct {
	Reason string
	N      int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %s (n=%d)", e.Reason, e.N)
}

// InvalidParameterError indicates a malformed input parameter, caught before
// any network I/O is attempted.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}
