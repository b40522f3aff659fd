package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"BetaScope/internal/model"
)

// FredFetcher implements RateFetcher using the St. Louis Fed FRED
// observations API. Values come back as annualized percentages, which is
// what the alignment stage expects.
type FredFetcher struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
}

// NewFredFetcher creates a new FRED fetcher.
func NewFredFetcher(apiKey, proxyURL string) *FredFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &FredFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		BaseURL: "https://api.stlouisfed.org",
		APIKey:  apiKey,
	}
}

func (f *FredFetcher) Name() string { return "fred" }

type fredObservations struct {
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

// FetchRates retrieves the rate series for [start, end] inclusive. FRED
// reports market holidays with value ".", which are skipped here; the
// resulting gaps are repaired by forward-fill downstream.
func (f *FredFetcher) FetchRates(ctx context.Context, seriesID string, start, end time.Time) (model.RateSeries, error) {
	series := model.RateSeries{SeriesID: seriesID, Source: f.Name()}

	q := url.Values{}
	q.Set("series_id", seriesID)
	q.Set("api_key", f.APIKey)
	q.Set("file_type", "json")
	q.Set("observation_start", model.Day(start).Format("2006-01-02"))
	q.Set("observation_end", model.Day(end).Format("2006-01-02"))
	u := fmt.Sprintf("%s/fred/series/observations?%s", f.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return series, err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return series, fmt.Errorf("fred fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return series, fmt.Errorf("fred read body: %w", err)
	}

	var obs fredObservations
	if err := json.Unmarshal(body, &obs); err != nil {
		return series, fmt.Errorf("fred decode: %w", err)
	}
	if obs.ErrorCode != 0 {
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
			return series, &model.DataUnavailableError{
				Source: f.Name(), Symbol: seriesID, Reason: obs.ErrorMessage,
			}
		}
		return series, fmt.Errorf("fred api error %d: %s", obs.ErrorCode, obs.ErrorMessage)
	}
	if resp.StatusCode != http.StatusOK {
		return series, fmt.Errorf("fred: status %d, body: %s", resp.StatusCode, string(body))
	}

	points := make([]model.RatePoint, 0, len(obs.Observations))
	for _, o := range obs.Observations {
		if o.Value == "." {
			continue // market holiday, no quote
		}
		d, err := time.Parse("2006-01-02", o.Date)
		if err != nil {
			return series, fmt.Errorf("fred parse date %q: %w", o.Date, err)
		}
		v, err := strconv.ParseFloat(o.Value, 64)
		if err != nil {
			return series, fmt.Errorf("fred parse value %q: %w", o.Value, err)
		}
		points = append(points, model.RatePoint{Date: model.Day(d), AnnualRatePercent: v})
	}
	if len(points) == 0 {
		return series, &model.DataUnavailableError{
			Source: f.Name(), Symbol: seriesID, Reason: "no observations in requested range",
		}
	}

	series.Points = points
	series.FetchedAt = time.Now()
	return series, nil
}
