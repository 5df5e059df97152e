package export

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/piwi3910/ShelfCut/internal/model"
)

// UtilizationChart builds a bar chart of per-sheet material utilization.
func UtilizationChart(result model.PackResult) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "ShelfCut Utilization",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Sheet utilization",
			Subtitle: fmt.Sprintf("%d sheets, %.1f%% overall", len(result.Sheets), result.TotalUtilization()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	x := make([]string, 0, len(result.Sheets))
	y := make([]opts.BarData, 0, len(result.Sheets))
	for _, s := range result.Sheets {
		x = append(x, s.SheetID)
		y = append(y, opts.BarData{Value: s.Utilization})
	}

	bar.SetXAxis(x).AddSeries("utilization %", y,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))
	return bar
}

// RenderUtilizationChart renders the utilization chart as a standalone
// HTML page to the writer.
func RenderUtilizationChart(w io.Writer, result model.PackResult) error {
	return UtilizationChart(result).Render(w)
}

// ExportUtilizationHTML writes the utilization chart to an HTML file.
func ExportUtilizationHTML(path string, result model.PackResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return RenderUtilizationChart(f, result)
}
