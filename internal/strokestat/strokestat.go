// Package strokestat measures how regular the dab placement of a stroke is.
package strokestat

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the gaps between consecutive dabs of a stroke.
type Summary struct {
	Dabs   int
	Length float64 // sum of all gaps

	MeanGap   float64
	StdDevGap float64
	MinGap    float64
	MaxGap    float64

	// CV is the coefficient of variation of the gaps. 0 means perfectly
	// even spacing.
	CV float64
}

// Gaps returns the Euclidean distances between consecutive points.
// xs and ys must have the same length.
func Gaps(xs, ys []float64) []float64 {
	if len(xs) != len(ys) {
		panic("strokestat: coordinate slices differ in length")
	}
	if len(xs) < 2 {
		return nil
	}
	gaps := make([]float64, len(xs)-1)
	for i := range gaps {
		gaps[i] = math.Hypot(xs[i+1]-xs[i], ys[i+1]-ys[i])
	}
	return gaps
}

// Summarize computes the gap statistics of the dabs at (xs[i], ys[i]).
func Summarize(xs, ys []float64) Summary {
	s := Summary{Dabs: len(xs)}
	gaps := Gaps(xs, ys)
	if len(gaps) == 0 {
		return s
	}

	s.Length = floats.Sum(gaps)
	s.MinGap = floats.Min(gaps)
	s.MaxGap = floats.Max(gaps)
	if len(gaps) == 1 {
		s.MeanGap = gaps[0]
	} else {
		s.MeanGap, s.StdDevGap = stat.MeanStdDev(gaps, nil)
	}
	if s.MeanGap > 0 {
		s.CV = s.StdDevGap / s.MeanGap
	}
	return s
}
