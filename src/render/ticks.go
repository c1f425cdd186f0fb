package render

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Ticks returns ticks at multiples of step inside [min, max].
func Ticks(min, max, step float64) []chart.Tick {
	if step <= 0 || math.IsNaN(min) || math.IsNaN(max) || max < min {
		return nil
	}
	d := decimals(step)
	ticks := []chart.Tick{}
	for i := math.Ceil(min/step - 1e-9); ; i++ {
		v := i * step
		if v == 0 {
			v = 0 // normalize -0
		}
		if v > max+step*1e-9 {
			break
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', d, 64)})
		if len(ticks) > 200 {
			break
		}
	}
	return ticks
}

// niceStep picks a step of 1, 2, 2.5 or 5 times a power of ten giving roughly n ticks over span.
func niceStep(span float64, n int) float64 {
	if n < 2 || span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	best, bestScore := mag, math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		if score := math.Abs(count - float64(n)); score < bestScore {
			best, bestScore = step, score
		}
	}
	return best
}

// epochTicks spaces integer epoch ticks over [min, max].
func epochTicks(min, max float64, n int) []chart.Tick {
	step := niceStep(max-min, n)
	if step < 1 {
		step = 1
	}
	if step != math.Trunc(step) {
		step = math.Ceil(step)
	}
	return Ticks(min, max, step)
}

// decimals is the number of fraction digits needed to print multiples of step exactly.
func decimals(step float64) int {
	for d := 0; d < 8; d++ {
		scaled := step * math.Pow(10, float64(d))
		if math.Abs(scaled-math.Round(scaled)) < 1e-9*math.Max(1, scaled) {
			return d
		}
	}
	return 8
}
