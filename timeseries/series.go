package timeseries

import (
	"github.com/montanaflynn/stats"
)

// Series is a named, ordered sequence of real samples at a fixed time step.
// Estimators treat the values as immutable.
type Series struct {
	Name   string
	Values []float64
}

// New creates a series from values.
func New(name string, values []float64) *Series {
	return &Series{Name: name, Values: values}
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.Values) }

// Summary holds descriptive statistics for a series.
type Summary struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Std    float64
}

// Describe computes descriptive statistics for the series.
func (s *Series) Describe() (*Summary, error) {
	data := stats.Float64Data(s.Values)

	min, err := data.Min()
	if err != nil {
		return nil, err
	}
	max, err := data.Max()
	if err != nil {
		return nil, err
	}
	mean, err := data.Mean()
	if err != nil {
		return nil, err
	}
	median, err := data.Median()
	if err != nil {
		return nil, err
	}
	std, err := data.StandardDeviation()
	if err != nil {
		return nil, err
	}

	return &Summary{
		N:      len(s.Values),
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
		Std:    std,
	}, nil
}

// Binarize converts a series to a 0/1 indicator sequence: 1 where the
// sample exceeds the threshold, 0 elsewhere. Event-count data reduced this
// way pairs with the 2-bin mutual information path.
func Binarize(x []float64, threshold float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		if v > threshold {
			out[i] = 1
		}
	}
	return out
}
