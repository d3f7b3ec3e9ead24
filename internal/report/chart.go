package report

import (
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
)

// LinesChart renders spending per category over time as a PNG line chart.
// The x axis is the fractional-year representation of the month buckets.
func LinesChart(path string, sum Summary) error {
	buckets := sum.Buckets()
	if len(buckets) == 0 {
		return fmt.Errorf("no outflows to plot")
	}

	xs := make([]float64, len(buckets))
	for i, b := range buckets {
		xs[i] = FractionalYear(b)
	}

	var series []chart.Series
	for _, name := range sum.CategoryNames() {
		ys := make([]float64, len(buckets))
		for i, b := range buckets {
			ys[i] = sum.Value(name, b).InexactFloat64()
		}
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
		})
	}

	graph := chart.Chart{
		Width:  1024,
		Height: 640,
		XAxis:  chart.XAxis{Name: "Year"},
		YAxis:  chart.YAxis{Name: "Spending"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return renderPNG(path, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// PieChart renders the per-category share of total spending as a PNG.
func PieChart(path string, sum Summary) error {
	names := sum.CategoryNames()
	if len(names) == 0 {
		return fmt.Errorf("no outflows to plot")
	}

	var values []chart.Value
	for _, name := range names {
		values = append(values, chart.Value{
			Label: name,
			Value: sum.CategoryTotal(name).InexactFloat64(),
		})
	}

	pie := chart.PieChart{
		Width:  640,
		Height: 640,
		Values: values,
	}

	return renderPNG(path, func(f *os.File) error {
		return pie.Render(chart.PNG, f)
	})
}

func renderPNG(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
