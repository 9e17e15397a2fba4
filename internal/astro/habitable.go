// Package astro derives stellar luminosity and habitable-zone bounds.
package astro

import (
	"math"

	"github.com/KaramelBytes/exohab-cli/internal/catalog"
)

const (
	// SolarTemperature is the Sun's effective temperature in kelvin.
	SolarTemperature = 5778.0
	// Stellar flux, relative to Earth's, at the inner and outer habitable-zone edges.
	innerFlux = 1.1
	outerFlux = 0.53
)

// Luminosity in solar units from the Stefan-Boltzmann law, with radius in
// solar radii and temperature in kelvin. The 4πσ factor cancels against
// the Sun's.
func Luminosity(radius, temperature float64) float64 {
	t := temperature / SolarTemperature
	return radius * radius * t * t * t * t
}

// HabitableZone returns the inner and outer edges in AU for a luminosity.
func HabitableZone(luminosity float64) (inner, outer float64) {
	return math.Sqrt(luminosity / innerFlux), math.Sqrt(luminosity / outerFlux)
}

// InHabitableZone reports whether distance lies within [inner, outer].
// A missing distance is never inside.
func InHabitableZone(distance, inner, outer float64) bool {
	return inner <= distance && distance <= outer
}

// Derive returns a copy of records with luminosity, habitable-zone edges and
// the potentially-habitable flag populated.
func Derive(records []catalog.Planet) []catalog.Planet {
	out := catalog.Clone(records)
	for i := range out {
		p := &out[i]
		p.Luminosity = Luminosity(p.StellarRadius, p.StellarTemperature)
		p.HabitableZoneStart, p.HabitableZoneEnd = HabitableZone(p.Luminosity)
		p.PotentiallyHabitable = InHabitableZone(p.OrbitalDistance, p.HabitableZoneStart, p.HabitableZoneEnd)
	}
	return out
}
