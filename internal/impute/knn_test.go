package impute

import (
	"errors"
	"math"
	"testing"

	"github.com/KaramelBytes/exohab-cli/internal/catalog"
)

var nan = math.NaN()

func star(name string, mass, temp float64) catalog.Planet {
	return catalog.Planet{Name: name, StellarMass: mass, StellarTemperature: temp, StellarRadius: 1}
}

func byName(ps []catalog.Planet) map[string]catalog.Planet {
	m := make(map[string]catalog.Planet, len(ps))
	for _, p := range ps {
		m[p.Name] = p
	}
	return m
}

func TestImpute_FillsFromNearestDonors(t *testing.T) {
	in := []catalog.Planet{
		star("a", 1.0, 5000),
		star("b", 1.1, 5100),
		star("c", 3.0, 9000),
		star("d", nan, 5050),
		star("e", 1.05, nan),
	}
	res, err := KNN{Neighbors: 2}.Impute(in)
	if err != nil {
		t.Fatalf("Impute: %v", err)
	}
	if res.Imputed != 2 || res.Unrecoverable != 0 {
		t.Fatalf("imputed=%d unrecoverable=%d", res.Imputed, res.Unrecoverable)
	}
	got := byName(res.Planets)

	// d's nearest by temperature are a (5000) and b (5100).
	if m := got["d"].StellarMass; math.Abs(m-1.05) > 1e-9 {
		t.Fatalf("d mass = %v, want 1.05", m)
	}
	// e's nearest by mass are a (1.0) and b (1.1).
	if tmp := got["e"].StellarTemperature; math.Abs(tmp-5050) > 1e-9 {
		t.Fatalf("e temperature = %v, want 5050", tmp)
	}
	for _, name := range []string{"a", "b", "c"} {
		if got[name].Uncertain {
			t.Fatalf("%s should not be uncertain", name)
		}
	}
	if !got["d"].Uncertain || !got["e"].Uncertain {
		t.Fatalf("imputed records must be flagged uncertain")
	}
	if !math.IsNaN(in[3].StellarMass) {
		t.Fatalf("input slice was mutated")
	}
}

func TestImpute_DropsBothMissingAndMissingRadius(t *testing.T) {
	noRadius := star("r", 1.0, 5000)
	noRadius.StellarRadius = nan
	in := []catalog.Planet{
		star("a", 1.0, 5000),
		star("b", 2.0, 6000),
		star("x", nan, nan),
		noRadius,
	}
	res, err := KNN{Neighbors: DefaultNeighbors}.Impute(in)
	if err != nil {
		t.Fatalf("Impute: %v", err)
	}
	if res.Unrecoverable != 1 || res.MissingRadius != 1 {
		t.Fatalf("unrecoverable=%d missingRadius=%d", res.Unrecoverable, res.MissingRadius)
	}
	if len(res.Planets) != 2 {
		t.Fatalf("planets = %d, want 2", len(res.Planets))
	}
	for _, p := range res.Planets {
		if catalog.Missing(p.StellarMass) || catalog.Missing(p.StellarTemperature) {
			t.Fatalf("%s still has missing features", p.Name)
		}
	}
}

func TestImpute_FewerDonorsThanNeighborsUsesAll(t *testing.T) {
	in := []catalog.Planet{
		star("a", 1.0, 4000),
		star("b", 2.0, 6000),
		star("c", nan, 5000),
	}
	res, err := KNN{Neighbors: 6}.Impute(in)
	if err != nil {
		t.Fatalf("Impute: %v", err)
	}
	got := byName(res.Planets)
	if m := got["c"].StellarMass; math.Abs(m-1.5) > 1e-9 {
		t.Fatalf("c mass = %v, want 1.5", m)
	}
}

func TestImpute_DonorWithoutSharedFeatureUsesMean(t *testing.T) {
	// b has only temperature, c has only mass: they share nothing, so the
	// distance falls back to column means instead of excluding the donor.
	in := []catalog.Planet{
		star("a", 1.0, 5000),
		star("b", nan, 5200),
		star("c", 1.4, nan),
	}
	res, err := KNN{Neighbors: 1}.Impute(in)
	if err != nil {
		t.Fatalf("Impute: %v", err)
	}
	for _, p := range res.Planets {
		if catalog.Missing(p.StellarMass) || catalog.Missing(p.StellarTemperature) {
			t.Fatalf("%s not imputed: %+v", p.Name, p)
		}
	}
}

func TestImpute_FeatureAbsentEverywhereIsUnrecoverable(t *testing.T) {
	in := []catalog.Planet{star("a", nan, 5000), star("b", nan, 6000)}
	res, err := KNN{Neighbors: 3}.Impute(in)
	if err != nil {
		t.Fatalf("Impute: %v", err)
	}
	if len(res.Planets) != 0 || res.Unrecoverable != 2 {
		t.Fatalf("planets=%d unrecoverable=%d", len(res.Planets), res.Unrecoverable)
	}
}

func TestImpute_InvalidNeighbors(t *testing.T) {
	if _, err := (KNN{}).Impute(nil); !errors.Is(err, ErrInvalidNeighbors) {
		t.Fatalf("err = %v, want ErrInvalidNeighbors", err)
	}
}

func TestNanEuclidean_ScalesByPresentFraction(t *testing.T) {
	means := [nFeatures]float64{0, 0}
	d := nanEuclidean([nFeatures]float64{nan, 3}, [nFeatures]float64{1, 0}, means)
	if want := math.Sqrt(2 * 9); math.Abs(d-want) > 1e-12 {
		t.Fatalf("distance = %v, want %v", d, want)
	}
}
