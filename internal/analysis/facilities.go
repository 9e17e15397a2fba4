package analysis

import (
	"math"
	"sort"
	"strings"

	"github.com/KaramelBytes/exohab-cli/internal/catalog"
)

// DefaultExcludedFacilities are aggregate placeholders, not real observatories.
var DefaultExcludedFacilities = []string{"Multiple Observatories", "Multiple Facilities"}

// RankOptions controls RankFacilities.
type RankOptions struct {
	// Top limits the result; 0 means unlimited.
	Top      int
	Excluded []string
}

// FacilityScore summarises one facility's habitable discoveries.
type FacilityScore struct {
	Facility  string
	Planets   int
	Habitable int
	// Accuracy is the share of habitable discoveries, in percent.
	Accuracy float64
	// Score weighs accuracy by volume: Accuracy * Habitable.
	Score float64
}

// RankFacilities scores each facility that found at least one potentially
// habitable planet and returns them by descending score.
func RankFacilities(records []catalog.Planet, opt RankOptions) []FacilityScore {
	excluded := nameSet(opt.Excluded)
	acc := map[string]*FacilityScore{}
	for _, p := range records {
		if p.Facility == "" {
			continue
		}
		fs := acc[p.Facility]
		if fs == nil {
			fs = &FacilityScore{Facility: p.Facility}
			acc[p.Facility] = fs
		}
		fs.Planets++
		if p.PotentiallyHabitable {
			fs.Habitable++
		}
	}

	out := make([]FacilityScore, 0, len(acc))
	for name, fs := range acc {
		if fs.Habitable == 0 {
			continue
		}
		if _, skip := excluded[name]; skip {
			continue
		}
		fs.Accuracy = float64(fs.Habitable) / float64(fs.Planets) * 100
		fs.Score = fs.Accuracy * float64(fs.Habitable)
		out = append(out, *fs)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score == out[j].Score {
			return out[i].Facility < out[j].Facility
		}
		return out[i].Score > out[j].Score
	})
	if opt.Top > 0 && len(out) > opt.Top {
		out = out[:opt.Top]
	}
	return out
}

// TrendOptions controls FacilityTrends.
type TrendOptions struct {
	// MinYears keeps facilities with strictly more yearly points than this.
	MinYears int
	Excluded []string
}

// TrendPoint is one facility's discoveries in one year.
type TrendPoint struct {
	Year      int
	Planets   int
	Habitable int
	Accuracy  float64 // percent, two decimals
}

// FacilityTrend is a facility's accuracy over the years, oldest first.
type FacilityTrend struct {
	Facility string
	Points   []TrendPoint
}

// Best returns the highest yearly accuracy.
func (t FacilityTrend) Best() float64 {
	best := 0.0
	for _, p := range t.Points {
		if p.Accuracy > best {
			best = p.Accuracy
		}
	}
	return best
}

// FacilityTrends groups records by facility and discovery year. Years with
// no habitable discoveries are dropped before the MinYears filter.
func FacilityTrends(records []catalog.Planet, opt TrendOptions) []FacilityTrend {
	excluded := nameSet(opt.Excluded)
	type key struct {
		facility string
		year     int
	}
	acc := map[key]*TrendPoint{}
	for _, p := range records {
		if p.Facility == "" || p.DiscoveryYear == 0 {
			continue
		}
		if _, skip := excluded[p.Facility]; skip {
			continue
		}
		k := key{p.Facility, p.DiscoveryYear}
		tp := acc[k]
		if tp == nil {
			tp = &TrendPoint{Year: p.DiscoveryYear}
			acc[k] = tp
		}
		tp.Planets++
		if p.PotentiallyHabitable {
			tp.Habitable++
		}
	}

	byFacility := map[string][]TrendPoint{}
	for k, tp := range acc {
		tp.Accuracy = round2(float64(tp.Habitable) / float64(tp.Planets) * 100)
		if tp.Accuracy <= 0 {
			continue
		}
		byFacility[k.facility] = append(byFacility[k.facility], *tp)
	}

	out := make([]FacilityTrend, 0, len(byFacility))
	for name, pts := range byFacility {
		if len(pts) <= opt.MinYears {
			continue
		}
		sort.Slice(pts, func(i, j int) bool { return pts[i].Year < pts[j].Year })
		out = append(out, FacilityTrend{Facility: name, Points: pts})
	}
	sort.Slice(out, func(i, j int) bool {
		bi, bj := out[i].Best(), out[j].Best()
		if bi == bj {
			return out[i].Facility < out[j].Facility
		}
		return bi > bj
	})
	return out
}

func nameSet(names []string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[strings.TrimSpace(n)] = struct{}{}
	}
	return m
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
