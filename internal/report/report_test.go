package report

import (
	"strings"
	"testing"
	"time"

	"BetaScope/internal/model"
)

func TestFormat(t *testing.T) {
	a := &Analysis{
		AssetSymbol: "AAPL",
		IndexSymbol: "SP500",
		StartDate:   time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2023, 12, 29, 0, 0, 0, 0, time.UTC),
		Returns: []model.ReturnRow{
			{AssetExcessReturn: 0.01, IndexExcessReturn: 0.005},
			{AssetExcessReturn: -0.02, IndexExcessReturn: -0.01},
			{AssetExcessReturn: 0.015, IndexExcessReturn: 0.008},
		},
		Regression: model.RegressionResult{
			Beta:             1.5703,
			Intercept:        0.000123,
			ResidualStdError: 0.0201,
			NObs:             249,
			DegreesOfFreedom: 247,
		},
		Scenario: model.Scenario{RiskFreeRate: 0.05, MarketReturn: 0.133, ConfidenceLevel: 0.90},
		Interval: model.PredictionInterval{
			PointEstimate:   0.1803,
			LowerBound:      -0.3419,
			UpperBound:      0.7025,
			ConfidenceLevel: 0.90,
		},
	}

	out := Format(a)

	for _, want := range []string{
		"AAPL", "SP500",
		"beta:                 1.5703",
		"degrees of freedom:   247",
		"90% prediction interval",
		"[-34.19%, +70.25%]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestFormat_SkipsStatsForTinySample(t *testing.T) {
	a := &Analysis{
		AssetSymbol: "AAPL",
		IndexSymbol: "SP500",
		StartDate:   time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC),
		Returns:     []model.ReturnRow{{AssetExcessReturn: 0.01}},
	}
	out := Format(a)
	if strings.Contains(out, "mean daily excess") {
		t.Error("descriptive stats should be omitted for a single observation")
	}
}
