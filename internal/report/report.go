package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/montanaflynn/stats"

	"BetaScope/internal/model"
)

// Analysis bundles everything a finished run produced, for rendering.
type Analysis struct {
	AssetSymbol string
	IndexSymbol string
	StartDate   time.Time
	EndDate     time.Time
	Returns     []model.ReturnRow
	Regression  model.RegressionResult
	Scenario    model.Scenario
	Interval    model.PredictionInterval
}

// Format renders the full analysis as a plain-text report.
func Format(a *Analysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("BetaScope | %s vs %s | %s .. %s\n\n",
		a.AssetSymbol, a.IndexSymbol,
		a.StartDate.Format("2006-01-02"), a.EndDate.Format("2006-01-02")))

	b.WriteString("Sample\n")
	b.WriteString(fmt.Sprintf("  trading days used:    %d\n", a.Regression.NObs))
	if mean, stdev, ok := describeExcess(a.Returns); ok {
		b.WriteString(fmt.Sprintf("  mean daily excess:    %+.5f (asset)\n", mean))
		b.WriteString(fmt.Sprintf("  stdev daily excess:   %.5f (asset)\n", stdev))
	}
	b.WriteString("\n")

	b.WriteString("Regression (asset excess on index excess)\n")
	b.WriteString(fmt.Sprintf("  beta:                 %.4f\n", a.Regression.Beta))
	b.WriteString(fmt.Sprintf("  intercept:            %+.6f\n", a.Regression.Intercept))
	b.WriteString(fmt.Sprintf("  residual std error:   %.6f (daily)\n", a.Regression.ResidualStdError))
	b.WriteString(fmt.Sprintf("  degrees of freedom:   %d\n\n", a.Regression.DegreesOfFreedom))

	b.WriteString("Scenario\n")
	b.WriteString(fmt.Sprintf("  risk-free rate:       %.2f%%\n", a.Scenario.RiskFreeRate*100))
	b.WriteString(fmt.Sprintf("  market return:        %.2f%%\n\n", a.Scenario.MarketReturn*100))

	b.WriteString(fmt.Sprintf("Expected annual return (%.0f%% prediction interval)\n",
		a.Interval.ConfidenceLevel*100))
	b.WriteString(fmt.Sprintf("  point estimate:       %+.2f%%\n", a.Interval.PointEstimate*100))
	b.WriteString(fmt.Sprintf("  interval:             [%+.2f%%, %+.2f%%]\n",
		a.Interval.LowerBound*100, a.Interval.UpperBound*100))

	return b.String()
}

func describeExcess(rows []model.ReturnRow) (mean, stdev float64, ok bool) {
	if len(rows) < 2 {
		return 0, 0, false
	}
	ex := make([]float64, len(rows))
	for i, r := range rows {
		ex[i] = r.AssetExcessReturn
	}
	mean, err := stats.Mean(stats.Float64Data(ex))
	if err != nil {
		return 0, 0, false
	}
	stdev, err = stats.StandardDeviationSample(stats.Float64Data(ex))
	if err != nil {
		return 0, 0, false
	}
	return mean, stdev, true
}
