package analysis

import (
	"math"
	"testing"
)

func TestDistribution_InterpolatesBetweenRanks(t *testing.T) {
	got := Distribution([]float64{4, math.NaN(), 1, 3, 2})
	want := BoxStats{N: 4, Min: 1, Q1: 1.75, Median: 2.5, Q3: 3.25, Max: 4, Mean: 2.5}
	if got != want {
		t.Fatalf("Distribution = %+v, want %+v", got, want)
	}
	if got.IQR() != 1.5 {
		t.Fatalf("IQR = %v", got.IQR())
	}
}

func TestDistribution_Empty(t *testing.T) {
	if got := Distribution([]float64{math.NaN()}); got != (BoxStats{}) {
		t.Fatalf("Distribution = %+v, want zero", got)
	}
}
