package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/KaramelBytes/exohab-cli/internal/catalog"
)

// Report is the outcome of a pipeline run.
type Report struct {
	RunID       string
	GeneratedAt time.Time
	Name        string

	Rows          int
	Duplicates    int
	Imputed       int
	Unrecoverable int
	MissingRadius int
	Neighbors     int

	// Planets are the resolved records after every stage.
	Planets []catalog.Planet
	// Habitable counts potentially habitable planets, imputed or not.
	Habitable int
	// HabitableCertain are habitable planets without imputed values.
	HabitableCertain []catalog.Planet
	SuperEarths      []string
	Shortlist        []catalog.Planet

	Ranking []FacilityScore
	Trends  []FacilityTrend

	// Distributions over HabitableCertain.
	StellarMass        BoxStats
	StellarTemperature BoxStats

	Warnings []string
}

// Markdown renders the report for the console or a standalone doc.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString(r.catalogSection())
	b.WriteString(r.habitableSection())
	b.WriteString(r.superEarthSection())
	b.WriteString(r.facilitySection())
	b.WriteString(r.distributionSection())
	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FacilitiesMarkdown renders only the ranking and trend sections.
func (r *Report) FacilitiesMarkdown() string {
	return strings.TrimPrefix(r.facilitySection(), "\n")
}

// SuperEarthsMarkdown renders only the super-Earth and shortlist sections.
func (r *Report) SuperEarthsMarkdown() string {
	return strings.TrimPrefix(r.superEarthSection(), "\n")
}

func (r *Report) catalogSection() string {
	var b strings.Builder
	b.WriteString("[CATALOG]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	if r.RunID != "" {
		b.WriteString(fmt.Sprintf("Run: %s (%s)\n", r.RunID, r.GeneratedAt.Format(time.RFC3339)))
	}
	b.WriteString(fmt.Sprintf("Rows: %d (duplicates removed %d)\n", r.Rows, r.Duplicates))
	b.WriteString(fmt.Sprintf("Planets analysed: %d\n", len(r.Planets)))

	b.WriteString("\n[IMPUTATION]\n")
	b.WriteString(fmt.Sprintf("- k-nearest neighbours: %d\n", r.Neighbors))
	b.WriteString(fmt.Sprintf("- imputed (uncertain): %d\n", r.Imputed))
	b.WriteString(fmt.Sprintf("- dropped, no stellar mass or temperature: %d\n", r.Unrecoverable))
	b.WriteString(fmt.Sprintf("- dropped, no stellar radius: %d\n", r.MissingRadius))
	return b.String()
}

func (r *Report) habitableSection() string {
	var b strings.Builder
	b.WriteString("\n[HABITABLE ZONE]\n")
	b.WriteString(fmt.Sprintf("Number of Potentially Habitable planets: %d\n", r.Habitable))
	b.WriteString(fmt.Sprintf("Without imputed values: %d\n", len(r.HabitableCertain)))
	return b.String()
}

func (r *Report) superEarthSection() string {
	var b strings.Builder
	b.WriteString("\n[SUPER-EARTHS]\n")
	b.WriteString(fmt.Sprintf("\"Super Earth\" like planets (%d): %s\n", len(r.SuperEarths), joinOrNone(r.SuperEarths)))

	b.WriteString("\n[SHORTLIST]\n")
	names := make([]string, len(r.Shortlist))
	for i, p := range r.Shortlist {
		names[i] = p.Name
	}
	b.WriteString(fmt.Sprintf("The final list of planets that should be examined further: %s\n", joinOrNone(names)))
	return b.String()
}

func (r *Report) facilitySection() string {
	var b strings.Builder
	b.WriteString("\n[FACILITY RANKING]\n")
	if len(r.Ranking) == 0 {
		b.WriteString("(no facility with potentially habitable planets)\n")
	}
	for i, f := range r.Ranking {
		b.WriteString(fmt.Sprintf("%d. %s | Score: %.2f | %d planet(s) | %.2f%% Accurate (Overall)\n",
			i+1, safeVal(f.Facility), f.Score, f.Habitable, f.Accuracy))
	}

	if len(r.Trends) > 0 {
		b.WriteString("\n[FACILITY TRENDS]\n")
		for _, t := range r.Trends {
			b.WriteString(fmt.Sprintf("- %s (best %.2f%%)\n", safeVal(t.Facility), t.Best()))
			for _, p := range t.Points {
				b.WriteString(fmt.Sprintf("  • %d: %.2f%% (%d/%d)\n", p.Year, p.Accuracy, p.Habitable, p.Planets))
			}
		}
	}
	return b.String()
}

func (r *Report) distributionSection() string {
	if r.StellarMass.N == 0 && r.StellarTemperature.N == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n[DISTRIBUTIONS]\n")
	write := func(label string, s BoxStats) {
		if s.N == 0 {
			return
		}
		b.WriteString(fmt.Sprintf("- %s (n=%d): min %.4g, q1 %.4g, median %.4g, q3 %.4g, max %.4g, mean %.4g\n",
			label, s.N, s.Min, s.Q1, s.Median, s.Q3, s.Max, s.Mean))
	}
	write("Stellar Mass [M☉]", r.StellarMass)
	write("Stellar Temperature [K]", r.StellarTemperature)
	return b.String()
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
