package analysis

import (
	"math"
	"sort"

	"github.com/KaramelBytes/exohab-cli/internal/catalog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BoxStats are the five-number summary behind a box plot, plus mean.
type BoxStats struct {
	N      int
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	Mean   float64
}

// IQR is the interquartile range.
func (b BoxStats) IQR() float64 { return b.Q3 - b.Q1 }

// Distribution summarises the non-missing values.
func Distribution(values []float64) BoxStats {
	cp := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			cp = append(cp, v)
		}
	}
	if len(cp) == 0 {
		return BoxStats{}
	}
	sort.Float64s(cp)
	return BoxStats{
		N:      len(cp),
		Min:    floats.Min(cp),
		Q1:     quantile(cp, 0.25),
		Median: quantile(cp, 0.5),
		Q3:     quantile(cp, 0.75),
		Max:    floats.Max(cp),
		Mean:   stat.Mean(cp, nil),
	}
}

// Field extracts one numeric field from each record.
func Field(records []catalog.Planet, get func(catalog.Planet) float64) []float64 {
	out := make([]float64, len(records))
	for i, p := range records {
		out[i] = get(p)
	}
	return out
}

// quantile interpolates linearly between closest ranks of sorted values.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
