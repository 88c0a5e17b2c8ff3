package charts

import (
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
)

// niceAxisBounds pads [min, max] by a small margin and rounds both ends to
// the span's order of magnitude so axis labels land on round numbers.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return 0, 1
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	lo := min - pad
	hi := max + pad

	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if mag > 0 && !math.IsInf(mag, 0) {
		lo = math.Floor(lo/mag) * mag
		hi = math.Ceil(hi/mag) * mag
	}
	return lo, hi
}

// niceTicks spreads about n ticks across [min, max] using 1/2/2.5/5 steps
// scaled to the span.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}

	mag := math.Pow(10, math.Floor(math.Log10((max-min)/float64(n-1))))
	step := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		candidate := c * mag
		count := math.Ceil((max - min) / candidate)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			step = candidate
		}
	}

	start := math.Floor(min/step) * step
	end := math.Ceil(max/step) * step
	ticks := make([]chart.Tick, 0, n+2)
	for v := start; v <= end+step/2; v += step {
		ticks = append(ticks, chart.Tick{Value: v, Label: axisValue(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

// axisValue renders axis values as integers when whole, with one decimal
// otherwise. Years and counts stay unpunctuated.
func axisValue(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	if f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', 1, 64)
}
