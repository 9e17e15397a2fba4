package catalog

import "math"

// Planet is one confirmed exoplanet with its host-star parameters.
// Missing numeric values are NaN; use Missing to test for them.
type Planet struct {
	Name          string
	Facility      string
	DiscoveryTime string
	DiscoveryYear int // 0 when rowupdate could not be parsed

	StellarTemperature float64 // K
	StellarMass        float64 // solar masses
	StellarRadius      float64 // solar radii

	OrbitalDistance float64 // AU
	PlanetSize      float64 // Jupiter radii
	PlanetMass      float64 // Jupiter masses
	Density         float64 // g/cm^3
	Eccentricity    float64

	// Derived by later stages.
	Uncertain            bool
	Luminosity           float64 // solar luminosities
	HabitableZoneStart   float64 // AU
	HabitableZoneEnd     float64 // AU
	PotentiallyHabitable bool
	SuperEarth           bool
}

// Missing reports whether v holds no value.
func Missing(v float64) bool { return math.IsNaN(v) }

// Complete reports whether every numeric base field is present.
func (p Planet) Complete() bool {
	for _, v := range []float64{
		p.StellarTemperature, p.StellarMass, p.StellarRadius,
		p.OrbitalDistance, p.PlanetSize, p.PlanetMass, p.Density, p.Eccentricity,
	} {
		if Missing(v) {
			return false
		}
	}
	return p.Name != "" && p.Facility != "" && p.DiscoveryTime != ""
}

// Clone returns a copy of records so stages never share backing arrays.
func Clone(records []Planet) []Planet {
	out := make([]Planet, len(records))
	copy(out, records)
	return out
}
