package astro

import (
	"math"
	"testing"

	"github.com/KaramelBytes/exohab-cli/internal/catalog"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-3 }

func TestSunLikeStar(t *testing.T) {
	lum := Luminosity(1, 5778)
	if lum != 1 {
		t.Fatalf("luminosity = %v, want 1", lum)
	}
	inner, outer := HabitableZone(lum)
	if !near(inner, 0.953) || !near(outer, 1.374) {
		t.Fatalf("zone = [%v, %v], want [0.953, 1.374]", inner, outer)
	}
	if !InHabitableZone(1.0, inner, outer) {
		t.Fatalf("1 AU should be habitable around a Sun-like star")
	}
}

func TestHabitableZoneOrderedForNonNegativeLuminosity(t *testing.T) {
	for _, lum := range []float64{0, 1e-6, 0.2, 1, 35, 1e5} {
		inner, outer := HabitableZone(lum)
		if inner > outer {
			t.Fatalf("lum %v: inner %v > outer %v", lum, inner, outer)
		}
	}
	if l := Luminosity(0.5, 3000); l < 0 {
		t.Fatalf("negative luminosity %v", l)
	}
}

func TestHabitableFlagFlipsPastOuterEdge(t *testing.T) {
	_, outer := HabitableZone(1)
	inner, _ := HabitableZone(1)
	if !InHabitableZone(outer, inner, outer) || !InHabitableZone(inner, inner, outer) {
		t.Fatalf("edges are inclusive")
	}
	for _, d := range []float64{outer + 1e-9, outer + 0.5, 10} {
		if InHabitableZone(d, inner, outer) {
			t.Fatalf("distance %v beyond outer edge %v flagged habitable", d, outer)
		}
	}
	if InHabitableZone(math.NaN(), inner, outer) {
		t.Fatalf("missing distance flagged habitable")
	}
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	in := []catalog.Planet{
		{Name: "earth-like", StellarRadius: 1, StellarTemperature: 5778, OrbitalDistance: 1},
		{Name: "hot", StellarRadius: 1, StellarTemperature: 5778, OrbitalDistance: 0.05},
	}
	out := Derive(in)
	if !out[0].PotentiallyHabitable || out[1].PotentiallyHabitable {
		t.Fatalf("flags = %v, %v", out[0].PotentiallyHabitable, out[1].PotentiallyHabitable)
	}
	if in[0].Luminosity != 0 || in[0].PotentiallyHabitable {
		t.Fatalf("input mutated: %+v", in[0])
	}
	if !near(out[0].HabitableZoneEnd, 1.374) {
		t.Fatalf("outer edge = %v", out[0].HabitableZoneEnd)
	}
}
