package render

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LearningCurve writes an HTML chart of per-episode lengths to
// filename. A downward-trending curve indicates the policy is
// improving.
func LearningCurve(title string, episodeLengths []float64,
	filename string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	episodes := make([]string, len(episodeLengths))
	items := make([]opts.LineData, len(episodeLengths))
	for i, length := range episodeLengths {
		episodes[i] = fmt.Sprintf("%d", i+1)
		items[i] = opts.LineData{Value: length}
	}

	line.SetXAxis(episodes)
	line.AddSeries("steps to goal", items)

	page := components.NewPage()
	page.AddCharts(line)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("render: could not create chart file: %v", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("render: could not render chart: %v", err)
	}
	return nil
}
