package plot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BetaScope/internal/model"
)

func TestRender(t *testing.T) {
	rows := []model.ReturnRow{
		{IndexExcessReturn: -0.01, AssetExcessReturn: -0.018},
		{IndexExcessReturn: 0.002, AssetExcessReturn: 0.004},
		{IndexExcessReturn: 0.012, AssetExcessReturn: 0.02},
	}
	res := model.RegressionResult{Beta: 1.7, Intercept: 0.0002, NObs: 3}

	path := filepath.Join(t.TempDir(), "charts", "regression.html")
	require.NoError(t, Render(path, rows, res, 0.03))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.True(t, strings.Contains(html, "echarts"), "output should embed echarts")
	assert.Contains(t, html, "daily observations")
	assert.Contains(t, html, "band upper")
}

func TestRender_NoRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regression.html")
	err := Render(path, nil, model.RegressionResult{}, 0.01)
	assert.Error(t, err)
}
