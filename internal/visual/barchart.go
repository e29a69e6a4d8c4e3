// Package visual renders analysis results: bar charts and word clouds as
// PNG, co-occurrence networks as Graphviz DOT.
package visual

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/dsgirard/tweetlab/internal/analysis"
)

// BarChart renders the term counts as a PNG bar chart.
func BarChart(title string, terms []analysis.TermCount, w io.Writer) error {
	if len(terms) == 0 {
		return fmt.Errorf("bar chart: no terms to plot")
	}

	bars := make([]chart.Value, len(terms))
	for i, tc := range terms {
		bars[i] = chart.Value{Label: tc.Term, Value: float64(tc.Count)}
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    1024,
		Height:   512,
		BarWidth: 36,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}
