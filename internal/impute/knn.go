// Package impute fills missing host-star parameters with a k-nearest-neighbours
// estimate over stellar mass and temperature.
package impute

import (
	"errors"
	"math"
	"sort"

	"github.com/KaramelBytes/exohab-cli/internal/catalog"
	"gonum.org/v1/gonum/stat"
)

// DefaultNeighbors is the donor count used when none is configured.
const DefaultNeighbors = 6

// ErrInvalidNeighbors is returned when the neighbour count is below one.
var ErrInvalidNeighbors = errors.New("impute: neighbors must be at least 1")

const nFeatures = 2

// KNN imputes StellarMass and StellarTemperature jointly.
type KNN struct {
	Neighbors int
}

// Result is the outcome of an imputation pass.
type Result struct {
	Planets []catalog.Planet
	// Imputed counts records that had at least one feature filled in.
	Imputed int
	// Unrecoverable counts records dropped because both features were missing.
	Unrecoverable int
	// MissingRadius counts records dropped because StellarRadius was missing.
	MissingRadius int
}

// Impute returns a new slice where both features are present. The input is
// not modified. Every record that had either feature missing is marked
// Uncertain.
func (k KNN) Impute(records []catalog.Planet) (Result, error) {
	if k.Neighbors < 1 {
		return Result{}, ErrInvalidNeighbors
	}

	var res Result
	fit := make([]catalog.Planet, 0, len(records))
	for _, p := range records {
		if catalog.Missing(p.StellarMass) && catalog.Missing(p.StellarTemperature) {
			res.Unrecoverable++
			continue
		}
		fit = append(fit, p)
	}

	rows := make([][nFeatures]float64, len(fit))
	for i, p := range fit {
		rows[i] = [nFeatures]float64{p.StellarMass, p.StellarTemperature}
	}
	means := columnMeans(rows)

	out := make([]catalog.Planet, 0, len(fit))
	for i, p := range fit {
		filled := rows[i]
		imputed := false
		for c := 0; c < nFeatures; c++ {
			if !math.IsNaN(rows[i][c]) {
				continue
			}
			filled[c] = k.estimate(rows, i, c, means)
			imputed = true
		}
		if math.IsNaN(filled[0]) || math.IsNaN(filled[1]) {
			// no record in the catalog carries this feature
			res.Unrecoverable++
			continue
		}
		p.Uncertain = imputed
		if imputed {
			res.Imputed++
		}
		p.StellarMass, p.StellarTemperature = filled[0], filled[1]
		if catalog.Missing(p.StellarRadius) {
			res.MissingRadius++
			continue
		}
		out = append(out, p)
	}
	res.Planets = out
	return res, nil
}

type donor struct {
	idx  int
	dist float64
}

// estimate averages column c over the nearest rows that have c.
func (k KNN) estimate(rows [][nFeatures]float64, target, c int, means [nFeatures]float64) float64 {
	donors := make([]donor, 0, len(rows))
	for j := range rows {
		if j == target || math.IsNaN(rows[j][c]) {
			continue
		}
		donors = append(donors, donor{idx: j, dist: nanEuclidean(rows[target], rows[j], means)})
	}
	if len(donors) == 0 {
		return means[c]
	}
	sort.SliceStable(donors, func(a, b int) bool { return donors[a].dist < donors[b].dist })
	n := k.Neighbors
	if n > len(donors) {
		n = len(donors)
	}
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = rows[donors[i].idx][c]
	}
	return stat.Mean(vals, nil)
}

// nanEuclidean is the Euclidean distance over the coordinates both rows
// have, scaled up by the fraction present. When the rows share no
// coordinate, the donor's missing ones are replaced by the column mean.
func nanEuclidean(a, b, means [nFeatures]float64) float64 {
	var sum float64
	present := 0
	for c := 0; c < nFeatures; c++ {
		if math.IsNaN(a[c]) || math.IsNaN(b[c]) {
			continue
		}
		d := a[c] - b[c]
		sum += d * d
		present++
	}
	if present == 0 {
		for c := 0; c < nFeatures; c++ {
			if math.IsNaN(a[c]) {
				continue
			}
			bc := b[c]
			if math.IsNaN(bc) {
				bc = means[c]
			}
			d := a[c] - bc
			sum += d * d
			present++
		}
		if present == 0 {
			return math.Inf(1)
		}
	}
	return math.Sqrt(float64(nFeatures) / float64(present) * sum)
}

func columnMeans(rows [][nFeatures]float64) [nFeatures]float64 {
	var means [nFeatures]float64
	for c := 0; c < nFeatures; c++ {
		vals := make([]float64, 0, len(rows))
		for _, r := range rows {
			if !math.IsNaN(r[c]) {
				vals = append(vals, r[c])
			}
		}
		if len(vals) == 0 {
			means[c] = math.NaN()
			continue
		}
		means[c] = stat.Mean(vals, nil)
	}
	return means
}
