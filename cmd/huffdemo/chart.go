package main

import (
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/chronos-tachyon/huffcode"
)

// writeChart renders one bar per symbol, with the bar height equal to the
// symbol's code length in bits.
func writeChart(path string, table huffcode.CodeTable) error {
	graph := codeLengthChart(table)

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := graph.Render(chart.SVG, fh); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

func codeLengthChart(table huffcode.CodeTable) chart.BarChart {
	symbols := table.Symbols()
	bars := make([]chart.Value, 0, len(symbols))
	var maxLen int
	for _, sym := range symbols {
		hc, _ := table.Lookup(sym)
		if maxLen < hc.Len() {
			maxLen = hc.Len()
		}
		bars = append(bars, chart.Value{
			Label: sym.String(),
			Value: float64(hc.Len()),
		})
	}
	return chart.BarChart{
		Title:    "Code length (bits) per symbol",
		Height:   512,
		BarWidth: 40,
		Bars:     bars,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxLen + 1)},
		},
	}
}
