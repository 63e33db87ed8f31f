package util

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderHourlyCurves renders the predictor's hourly busyness curves as an
// HTML line chart, one series per venue type.
func RenderHourlyCurves(w io.Writer, curves map[string][]int) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Predicted Busyness Curves",
			Width:     "1000px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Predicted busyness by hour of day",
			Subtitle: "Base percentages before the day-of-week multiplier",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	hours := make([]string, 24)
	for h := 0; h < 24; h++ {
		hours[h] = fmt.Sprintf("%02d:00", h)
	}
	line.SetXAxis(hours)

	// Stable series order for a reproducible page.
	types := make([]string, 0, len(curves))
	for t := range curves {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		points := make([]opts.LineData, 0, 24)
		for _, v := range curves[t] {
			points = append(points, opts.LineData{Value: v})
		}
		line.AddSeries(t, points)
	}

	return line.Render(w)
}
