package classify

import "github.com/KaramelBytes/exohab-cli/internal/catalog"

// ShortlistCriteria narrows habitable planets to rocky candidates worth
// follow-up. The density range is 0.266 to 3.2 Earth densities.
type ShortlistCriteria struct {
	Density       Range   // g/cm^3
	MaxPlanetMass float64 // Jupiter masses, exclusive
}

// DefaultShortlist returns the follow-up thresholds.
func DefaultShortlist() ShortlistCriteria {
	return ShortlistCriteria{
		Density:       Range{1.46566, 17.632},
		MaxPlanetMass: 0.2,
	}
}

// Certain reports whether p is potentially habitable without imputed values.
func Certain(p catalog.Planet) bool {
	return p.PotentiallyHabitable && !p.Uncertain
}

// Shortlist returns the certain habitable planets with complete data whose
// density and mass suggest a rocky composition.
func Shortlist(records []catalog.Planet, c ShortlistCriteria) []catalog.Planet {
	var out []catalog.Planet
	for _, p := range records {
		if !Certain(p) || !p.Complete() {
			continue
		}
		if c.Density.Contains(p.Density) && p.PlanetMass < c.MaxPlanetMass {
			out = append(out, p)
		}
	}
	return out
}
