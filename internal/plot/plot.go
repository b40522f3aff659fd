package plot

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"BetaScope/internal/model"
)

// Render writes a standalone HTML chart: the excess-return scatter with the
// fitted regression line and a confidence band of +/- t*sigma around it.
// Purely presentational; callers treat failures as non-fatal.
func Render(path string, rows []model.ReturnRow, res model.RegressionResult, bandHalfWidth float64) error {
	if len(rows) == 0 {
		return fmt.Errorf("no return rows to plot")
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Excess returns",
			Subtitle: fmt.Sprintf("beta = %.4f, n = %d", res.Beta, res.NObs),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "index excess return", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "asset excess return", Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	points := make([]opts.ScatterData, 0, len(rows))
	for _, r := range rows {
		points = append(points, opts.ScatterData{
			Value:      []interface{}{r.IndexExcessReturn, r.AssetExcessReturn},
			SymbolSize: 5,
		})
	}
	scatter.AddSeries("daily observations", points)

	xs := make([]float64, len(rows))
	for i, r := range rows {
		xs[i] = r.IndexExcessReturn
	}
	sort.Float64s(xs)
	lo, hi := xs[0], xs[len(xs)-1]

	line := charts.NewLine()
	line.AddSeries("fit", fitLine(lo, hi, res.Intercept, res.Beta, 0))
	line.AddSeries("band upper", fitLine(lo, hi, res.Intercept, res.Beta, bandHalfWidth),
		charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))
	line.AddSeries("band lower", fitLine(lo, hi, res.Intercept, res.Beta, -bandHalfWidth),
		charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))
	scatter.Overlap(line)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create chart dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := scatter.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func fitLine(lo, hi, intercept, beta, offset float64) []opts.LineData {
	return []opts.LineData{
		{Value: []interface{}{lo, intercept + beta*lo + offset}},
		{Value: []interface{}{hi, intercept + beta*hi + offset}},
	}
}
