package metrics

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates one metric series for the text report and the
// distribution panel.
type Summary struct {
	Min, Max   float64
	Mean       float64
	Q1, Median float64
	Q3         float64
}

// Summarize computes the five-number-ish summary of values. Empty input
// yields a zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return Summary{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   stat.Mean(sorted, nil),
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
	}
}

// Range returns the min and max of values, or (0, 0) for empty input.
func Range(values []float64) (min, max float64) {
	if len(values) == 0 {
		return 0, 0
	}
	return floats.Min(values), floats.Max(values)
}
