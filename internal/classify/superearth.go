package classify

import "github.com/KaramelBytes/exohab-cli/internal/catalog"

// Range is an inclusive numeric interval.
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies in [Min, Max]. NaN is never contained.
func (r Range) Contains(v float64) bool { return r.Min <= v && v <= r.Max }

// Criteria are the thresholds of the super-Earth predicate.
type Criteria struct {
	OrbitalDistance    Range // AU
	StellarTemperature Range // K
	PlanetSize         Range // Jupiter radii
	PlanetMass         Range // Jupiter masses
	Density            Range // g/cm^3
	MaxEccentricity    float64
}

// DefaultMinDistance is the lower orbital-distance bound of DefaultCriteria.
// Its documented range begins at 0.9 AU; callers may override it.
const DefaultMinDistance = 0.02

// DefaultCriteria returns the survey's super-Earth thresholds.
func DefaultCriteria() Criteria {
	return Criteria{
		OrbitalDistance:    Range{DefaultMinDistance, 1.5},
		StellarTemperature: Range{4800, 6300},
		PlanetSize:         Range{0.05, 0.2},
		PlanetMass:         Range{0.002, 0.05},
		Density:            Range{3, 7.5},
		MaxEccentricity:    0.3,
	}
}

// SuperEarth reports whether p satisfies every threshold. Any missing field
// fails the test.
func (c Criteria) SuperEarth(p catalog.Planet) bool {
	return c.OrbitalDistance.Contains(p.OrbitalDistance) &&
		c.StellarTemperature.Contains(p.StellarTemperature) &&
		c.PlanetSize.Contains(p.PlanetSize) &&
		c.PlanetMass.Contains(p.PlanetMass) &&
		c.Density.Contains(p.Density) &&
		p.Eccentricity <= c.MaxEccentricity
}

// Apply returns a copy of records with the SuperEarth flag set.
func Apply(records []catalog.Planet, c Criteria) []catalog.Planet {
	out := catalog.Clone(records)
	for i := range out {
		out[i].SuperEarth = c.SuperEarth(out[i])
	}
	return out
}

// Names returns the names of records matching keep, in order.
func Names(records []catalog.Planet, keep func(catalog.Planet) bool) []string {
	var names []string
	for _, p := range records {
		if keep(p) {
			names = append(names, p.Name)
		}
	}
	return names
}
