package metrics

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a sample by mean, median and maximum.
// All fields are zero for an empty sample.
type Summary struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	Max    float64 `json:"max" yaml:"max"`
}

// summarize computes a Summary. The median averages the two middle values
// of an even-length sample.
func summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	median, err := stats.Median(stats.Float64Data(values))
	if err != nil {
		median = 0
	}
	return Summary{
		Mean:   stat.Mean(values, nil),
		Median: median,
		Max:    floats.Max(values),
	}
}

func toFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
