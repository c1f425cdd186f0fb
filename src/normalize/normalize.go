// Package normalize maps loss series onto [0,1] after a logarithmic transform so that
// curves spanning several orders of magnitude can share one axis.
package normalize

import (
	"math"

	"github.com/tsotchke/PINN/src/logging"
)

const (
	// Epsilon keeps the smallest shifted value strictly positive before the log.
	Epsilon = 1e-10
	// FlatValue is emitted for every point of a series whose logged values are all equal.
	FlatValue = 0.5
)

// LogNormalize shifts values by |min|+Epsilon, takes the natural log and min-max scales
// the result to [0,1]. The output has the input's length and order.
//
// An empty input yields an empty slice. A zero-variance input has no defined scaling;
// it yields FlatValue everywhere rather than NaN, and a warning is logged.
func LogNormalize(values []float64) []float64 {
	if len(values) == 0 {
		logging.Warnf("no values provided for normalization")
		return []float64{}
	}
	lo := values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
	}
	shift := math.Abs(lo) + Epsilon

	logged := make([]float64, len(values))
	lmin, lmax := math.Inf(1), math.Inf(-1)
	for i, v := range values {
		logged[i] = math.Log(v + shift)
		lmin = math.Min(lmin, logged[i])
		lmax = math.Max(lmax, logged[i])
	}

	out := make([]float64, len(values))
	span := lmax - lmin
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		logging.Warnf("cannot normalize %d values with zero spread (log range [%g, %g]); using %.1f", len(values), lmin, lmax, FlatValue)
		for i := range out {
			out[i] = FlatValue
		}
		return out
	}
	for i, l := range logged {
		out[i] = (l - lmin) / span
	}
	return out
}
