package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ComplexityScale is the fixed normalization constant applied to the
// theoretical O(V²E) series so it lands on the same visual scale as
// millisecond timings.
const ComplexityScale = 1e6

// ComplexityCurve computes the normalized theoretical max-flow complexity
// v²·e/scale, element-wise over the vertex and edge count series.
func ComplexityCurve(v, e []float64, scale float64) ([]float64, error) {
	if len(v) != len(e) {
		return nil, fmt.Errorf("complexity curve: length mismatch v=%d e=%d", len(v), len(e))
	}
	if scale == 0 {
		return nil, fmt.Errorf("complexity curve: zero scale")
	}
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i] * v[i] * e[i] / scale
	}
	return out, nil
}

// RescaleToMax returns series scaled so its maximum equals the maximum of
// reference. This is a display convenience so measured time and the
// theoretical curve share one y-range; it carries no statistical meaning.
// A series with a non-positive maximum is returned unchanged.
func RescaleToMax(series, reference []float64) []float64 {
	out := append([]float64(nil), series...)
	if len(series) == 0 || len(reference) == 0 {
		return out
	}
	smax := floats.Max(series)
	if smax <= 0 {
		return out
	}
	f := floats.Max(reference) / smax
	for i := range out {
		out[i] *= f
	}
	return out
}
