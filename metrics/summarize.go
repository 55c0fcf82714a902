package metrics

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary is a compact statistical summary of a set of scalar measurements
// (a degree sequence, a set of contour lengths, a set of angles — anything
// Summarize is handed). It is the supplemented reporting feature
// original_source/ computes ad hoc in several places (histogram/stats
// dumps alongside the core measurements); here it is unified into one
// reusable helper built on gonum/stat rather than re-derived per caller.
type Summary struct {
	Count    int
	Mean     float64
	StdDev   float64
	Min, Max float64
	Median   float64
}

// Summarize computes a Summary over values. It returns the zero Summary
// for an empty input.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	return Summary{
		Count:  len(sorted),
		Mean:   mean,
		StdDev: std,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}
}
