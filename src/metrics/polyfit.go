package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Polynomial holds least-squares fit coefficients in ascending power order:
// Coeffs[0] + Coeffs[1]*x + Coeffs[2]*x² + ...
type Polynomial struct {
	Coeffs []float64
}

// PolyFit fits a polynomial of the given degree to (x, y) by least squares,
// solving the Vandermonde system with a QR factorization. Needs at least
// degree+1 points.
func PolyFit(x, y []float64, degree int) (Polynomial, error) {
	if degree < 0 {
		return Polynomial{}, fmt.Errorf("polyfit: negative degree %d", degree)
	}
	if len(x) != len(y) {
		return Polynomial{}, fmt.Errorf("polyfit: length mismatch x=%d y=%d", len(x), len(y))
	}
	if len(x) < degree+1 {
		return Polynomial{}, fmt.Errorf("polyfit: need %d points for degree %d, have %d", degree+1, degree, len(x))
	}
	a := mat.NewDense(len(x), degree+1, nil)
	for i, xi := range x {
		p := 1.0
		for j := 0; j <= degree; j++ {
			a.Set(i, j, p)
			p *= xi
		}
	}
	b := mat.NewVecDense(len(y), append([]float64(nil), y...))
	var qr mat.QR
	qr.Factorize(a)
	var c mat.VecDense
	if err := qr.SolveVecTo(&c, false, b); err != nil {
		return Polynomial{}, fmt.Errorf("polyfit: solve: %w", err)
	}
	coeffs := make([]float64, degree+1)
	for j := range coeffs {
		coeffs[j] = c.AtVec(j)
	}
	return Polynomial{Coeffs: coeffs}, nil
}

// Eval evaluates the polynomial at x (Horner form).
func (p Polynomial) Eval(x float64) float64 {
	v := 0.0
	for j := len(p.Coeffs) - 1; j >= 0; j-- {
		v = v*x + p.Coeffs[j]
	}
	return v
}

// Sample evaluates the polynomial at n evenly spaced points across
// [min, max], for plotting a smooth overlay curve.
func (p Polynomial) Sample(min, max float64, n int) (xs, ys []float64) {
	if n < 2 {
		n = 2
	}
	xs = make([]float64, n)
	floats.Span(xs, min, max)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = p.Eval(x)
	}
	return xs, ys
}

// R2 reports the coefficient of determination of the fit against (x, y).
// Purely diagnostic; the charts do not depend on it.
func (p Polynomial) R2(x, y []float64) float64 {
	if len(x) != len(y) || len(y) == 0 {
		return math.NaN()
	}
	mean := floats.Sum(y) / float64(len(y))
	var ssRes, ssTot float64
	for i := range y {
		r := y[i] - p.Eval(x[i])
		ssRes += r * r
		d := y[i] - mean
		ssTot += d * d
	}
	if ssTot == 0 {
		return math.NaN()
	}
	return 1 - ssRes/ssTot
}
