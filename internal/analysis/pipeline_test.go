package analysis

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/exohab-cli/internal/catalog"
	"github.com/KaramelBytes/exohab-cli/internal/impute"
)

func nan() float64 { return math.NaN() }

var surveyRows = []string{
	"pl_name,pl_orbsmax,st_teff,pl_radj,pl_bmassj,pl_dens,pl_orbeccen,rowupdate,pl_facility,st_mass,st_rad",
	"Earth Twin b,1.0,5778,0.089,0.003,5.5,0.02,2016-05-10,Kepler,1.0,1.0",
	"Earth Twin b,1.0,5778,0.089,0.003,5.5,0.02,2016-05-10,Kepler,1.0,1.0",
	"Hot Jupiter b,0.05,5700,1.2,1.0,0.8,0.01,2016-06-01,Kepler,1.0,1.0",
	"Imputed b,1.0,,0.5,0.3,2.0,0.1,2020-01-01,Transiting Exoplanet Survey Satellite (TESS),1.0,1.0",
	"Lost b,1.0,,0.1,0.01,5.0,0.1,2020-02-01,Transiting Exoplanet Survey Satellite (TESS),,1.0",
	"No Radius b,1.0,5778,0.1,0.01,5.0,0.1,2019-01-01,Kepler,1.0,",
	"Shared b,1.0,5778,1.0,1.0,1.3,0.05,2018-03-03,Multiple Observatories,1.0,1.0",
}

func writeSurvey(t *testing.T, rows []string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "confirmed_exoplanets.csv")
	if err := os.WriteFile(p, []byte(strings.Join(rows, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return p
}

func TestRun_EndToEnd(t *testing.T) {
	rep, err := Run(writeSurvey(t, surveyRows), DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.RunID == "" {
		t.Fatalf("missing run id")
	}
	if rep.Rows != 7 || rep.Duplicates != 1 {
		t.Fatalf("rows=%d dups=%d", rep.Rows, rep.Duplicates)
	}
	if rep.Unrecoverable != 1 || rep.MissingRadius != 1 || rep.Imputed != 1 {
		t.Fatalf("unrecoverable=%d missingRadius=%d imputed=%d", rep.Unrecoverable, rep.MissingRadius, rep.Imputed)
	}
	if len(rep.Planets) != 4 {
		t.Fatalf("planets = %d, want 4", len(rep.Planets))
	}
	for _, p := range rep.Planets {
		if catalog.Missing(p.StellarMass) || catalog.Missing(p.StellarTemperature) {
			t.Fatalf("%s has unresolved stellar parameters", p.Name)
		}
		if p.Uncertain != (p.Name == "Imputed b") {
			t.Fatalf("%s uncertain = %v", p.Name, p.Uncertain)
		}
	}
	if rep.Habitable != 3 || len(rep.HabitableCertain) != 2 {
		t.Fatalf("habitable=%d certain=%d", rep.Habitable, len(rep.HabitableCertain))
	}
	if len(rep.SuperEarths) != 1 || rep.SuperEarths[0] != "Earth Twin b" {
		t.Fatalf("super-Earths = %v", rep.SuperEarths)
	}
	if len(rep.Shortlist) != 1 || rep.Shortlist[0].Name != "Earth Twin b" {
		t.Fatalf("shortlist = %+v", rep.Shortlist)
	}
	if len(rep.Ranking) != 2 {
		t.Fatalf("ranking = %+v", rep.Ranking)
	}
	if rep.Ranking[0].Facility != "Transiting Exoplanet Survey Satellite (TESS)" || rep.Ranking[0].Score != 100 {
		t.Fatalf("top facility = %+v", rep.Ranking[0])
	}
	if rep.Ranking[1].Facility != "Kepler" || rep.Ranking[1].Score != 50 {
		t.Fatalf("second facility = %+v", rep.Ranking[1])
	}
	if rep.StellarTemperature.N != 2 || rep.StellarTemperature.Median != 5778 {
		t.Fatalf("temperature stats = %+v", rep.StellarTemperature)
	}

	md := rep.Markdown()
	for _, want := range []string{
		"[CATALOG]",
		"File: confirmed_exoplanets.csv",
		"Rows: 7 (duplicates removed 1)",
		"[IMPUTATION]",
		"Number of Potentially Habitable planets: 3",
		"\"Super Earth\" like planets (1): Earth Twin b",
		"examined further: Earth Twin b",
		"1. Transiting Exoplanet Survey Satellite (TESS) | Score: 100.00 | 1 planet(s) | 100.00% Accurate (Overall)",
		"[DISTRIBUTIONS]",
		"[NOTES]",
		"documented range starts at 0.9 AU",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestRun_CustomDistanceBoundHasNoNote(t *testing.T) {
	opt := DefaultOptions()
	opt.Criteria.OrbitalDistance.Min = 0.9
	rep, err := Run(writeSurvey(t, surveyRows), opt)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, w := range rep.Warnings {
		if strings.Contains(w, "0.9 AU") {
			t.Fatalf("unexpected note: %s", w)
		}
	}
	if len(rep.SuperEarths) != 1 {
		t.Fatalf("super-Earths = %v", rep.SuperEarths)
	}
}

func TestRun_Errors(t *testing.T) {
	_, err := Run(writeSurvey(t, []string{"pl_name\nx"}), DefaultOptions())
	var se *catalog.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *catalog.SchemaError", err)
	}

	opt := DefaultOptions()
	opt.Neighbors = 0
	if _, err := Run(writeSurvey(t, surveyRows), opt); !errors.Is(err, impute.ErrInvalidNeighbors) {
		t.Fatalf("err = %v, want ErrInvalidNeighbors", err)
	}
}

func TestSectionRenderers(t *testing.T) {
	rep := &Report{
		SuperEarths: []string{"a", "b"},
		Ranking:     []FacilityScore{{Facility: "K|2", Habitable: 2, Planets: 4, Accuracy: 50, Score: 100}},
	}
	fm := rep.FacilitiesMarkdown()
	if !strings.HasPrefix(fm, "[FACILITY RANKING]") || !strings.Contains(fm, "1. K/2 | Score: 100.00") {
		t.Fatalf("facilities markdown = %q", fm)
	}
	sm := rep.SuperEarthsMarkdown()
	if !strings.Contains(sm, "(2): a, b") || !strings.Contains(sm, "further: (none)") {
		t.Fatalf("super-Earths markdown = %q", sm)
	}
}
