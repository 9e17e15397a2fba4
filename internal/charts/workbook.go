// Package charts renders a Report into an .xlsx workbook with native charts.
package charts

import (
	"fmt"
	"os"
	"sort"

	"github.com/KaramelBytes/exohab-cli/internal/analysis"
	"github.com/KaramelBytes/exohab-cli/internal/utils"
	"github.com/xuri/excelize/v2"
)

const (
	sheetHabitable     = "Habitable"
	sheetFacilities    = "Facilities"
	sheetTrends        = "Trends"
	sheetDistributions = "Distributions"
)

// Write renders rep into an .xlsx workbook at path, replacing it atomically.
func Write(path string, rep *analysis.Report) error {
	f, err := Build(rep)
	if err != nil {
		return err
	}
	defer f.Close()

	return utils.AtomicReplace(path, func(tmp string) error {
		out, err := os.Create(tmp)
		if err != nil {
			return fmt.Errorf("create workbook: %w", err)
		}
		if err := f.Write(out); err != nil {
			_ = out.Close()
			return fmt.Errorf("save workbook: %w", err)
		}
		return out.Close()
	})
}

// Build assembles the workbook in memory.
func Build(rep *analysis.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	steps := []func(*excelize.File, *analysis.Report) error{
		habitableSheet,
		facilitiesSheet,
		trendsSheet,
		distributionsSheet,
	}
	for _, step := range steps {
		if err := step(f, rep); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	// NewFile starts with Sheet1; drop it once the real sheets exist.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	if idx, err := f.GetSheetIndex(sheetHabitable); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       "Exoplanet habitability survey: " + rep.Name,
		Identifier:  rep.RunID,
		Created:     rep.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Creator:     "exohab",
		Description: fmt.Sprintf("%d planets, %d potentially habitable", len(rep.Planets), rep.Habitable),
	}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("set doc props: %w", err)
	}
	return f, nil
}

// writeRows writes rows from A1. nil values leave the cell blank.
func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

func newSheet(f *excelize.File, name string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("new sheet %s: %w", name, err)
	}
	return nil
}

func title(text string) []excelize.RichTextRun {
	return []excelize.RichTextRun{{Text: text}}
}

func ref(sheet string, col string, from, to int) string {
	return fmt.Sprintf("'%s'!$%s$%d:$%s$%d", sheet, col, from, col, to)
}

func habitableSheet(f *excelize.File, rep *analysis.Report) error {
	if err := newSheet(f, sheetHabitable); err != nil {
		return err
	}
	rows := [][]any{{"Planet", "Facility", "Orbital Distance (AU)", "Stellar Temperature (K)", "Stellar Mass (M☉)", "HZ Start (AU)", "HZ End (AU)"}}
	for _, p := range rep.HabitableCertain {
		rows = append(rows, []any{p.Name, p.Facility, p.OrbitalDistance, p.StellarTemperature, p.StellarMass, p.HabitableZoneStart, p.HabitableZoneEnd})
	}
	if err := writeRows(f, sheetHabitable, rows); err != nil {
		return err
	}
	n := len(rep.HabitableCertain)
	if n == 0 {
		return nil
	}
	last := n + 1
	scatter := func(cell, name, xCol, xLabel string) error {
		return f.AddChart(sheetHabitable, cell, &excelize.Chart{
			Type: excelize.Scatter,
			Series: []excelize.ChartSeries{{
				Name:       name,
				Categories: ref(sheetHabitable, xCol, 2, last),
				Values:     ref(sheetHabitable, "D", 2, last),
				Marker:     excelize.ChartMarker{Symbol: "circle", Size: 5},
			}},
			Title:  title(name),
			XAxis:  excelize.ChartAxis{Title: title(xLabel), MajorGridLines: true},
			YAxis:  excelize.ChartAxis{Title: title("Stellar Temperature (Kelvin)"), MajorGridLines: true},
			Legend: excelize.ChartLegend{Position: "none"},
			Dimension: excelize.ChartDimension{
				Width:  640,
				Height: 400,
			},
		})
	}
	if err := scatter("I2", "Potentially habitable planets", "C", "Orbital Distance (AU)"); err != nil {
		return fmt.Errorf("add distance chart: %w", err)
	}
	if err := scatter("I24", "Correlation between Stellar Temperature and Mass", "E", "Stellar Mass (Relative to the sun)"); err != nil {
		return fmt.Errorf("add mass chart: %w", err)
	}
	return nil
}

func facilitiesSheet(f *excelize.File, rep *analysis.Report) error {
	if err := newSheet(f, sheetFacilities); err != nil {
		return err
	}
	rows := [][]any{{"Facility", "Planets", "Habitable Planets", "Accuracy (%)", "Score"}}
	for _, fs := range rep.Ranking {
		rows = append(rows, []any{fs.Facility, fs.Planets, fs.Habitable, fs.Accuracy, fs.Score})
	}
	if err := writeRows(f, sheetFacilities, rows); err != nil {
		return err
	}
	if len(rep.Ranking) == 0 {
		return nil
	}
	last := len(rep.Ranking) + 1
	if err := f.AddChart(sheetFacilities, "G2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       "Score",
			Categories: ref(sheetFacilities, "A", 2, last),
			Values:     ref(sheetFacilities, "E", 2, last),
			Fill:       excelize.Fill{Type: "pattern", Color: []string{"008000"}, Pattern: 1},
		}},
		Title:     title("(Relative) Score of facilities"),
		XAxis:     excelize.ChartAxis{Title: title("Name of the Facility")},
		YAxis:     excelize.ChartAxis{MajorGridLines: true},
		Legend:    excelize.ChartLegend{Position: "none"},
		Dimension: excelize.ChartDimension{Width: 960, Height: 400},
	}); err != nil {
		return fmt.Errorf("add ranking chart: %w", err)
	}
	return nil
}

// trendsSheet lays out one row per year and one column per facility so each
// facility becomes a line series. Years a facility lacks stay empty.
func trendsSheet(f *excelize.File, rep *analysis.Report) error {
	if err := newSheet(f, sheetTrends); err != nil {
		return err
	}
	yearSet := map[int]struct{}{}
	for _, t := range rep.Trends {
		for _, p := range t.Points {
			yearSet[p.Year] = struct{}{}
		}
	}
	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)
	yearRow := make(map[int]int, len(years))

	header := []any{"Discovery Year"}
	for _, t := range rep.Trends {
		header = append(header, t.Facility)
	}
	rows := [][]any{header}
	for i, y := range years {
		yearRow[y] = i
		row := make([]any, len(rep.Trends)+1)
		row[0] = y
		rows = append(rows, row)
	}
	for c, t := range rep.Trends {
		for _, p := range t.Points {
			rows[yearRow[p.Year]+1][c+1] = p.Accuracy
		}
	}
	if err := writeRows(f, sheetTrends, rows); err != nil {
		return err
	}
	if len(rep.Trends) == 0 {
		return nil
	}
	last := len(years) + 1
	series := make([]excelize.ChartSeries, 0, len(rep.Trends))
	for c := range rep.Trends {
		col, err := excelize.ColumnNumberToName(c + 2)
		if err != nil {
			return err
		}
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("'%s'!$%s$1", sheetTrends, col),
			Categories: ref(sheetTrends, "A", 2, last),
			Values:     ref(sheetTrends, col, 2, last),
			Marker:     excelize.ChartMarker{Symbol: "circle", Size: 5},
		})
	}
	if err := f.AddChart(sheetTrends, "H2", &excelize.Chart{
		Type:         excelize.Line,
		Series:       series,
		Title:        title("% of correct observations per facility"),
		XAxis:        excelize.ChartAxis{Title: title("Discovery Year")},
		YAxis:        excelize.ChartAxis{Title: title("Accuracy (%)"), MajorGridLines: true},
		Legend:       excelize.ChartLegend{Position: "top"},
		ShowBlanksAs: "gap",
		Dimension:    excelize.ChartDimension{Width: 900, Height: 480},
	}); err != nil {
		return fmt.Errorf("add trend chart: %w", err)
	}
	return nil
}

func distributionsSheet(f *excelize.File, rep *analysis.Report) error {
	if err := newSheet(f, sheetDistributions); err != nil {
		return err
	}
	rows := [][]any{{"Statistic", "Stellar Mass (M☉)", "Stellar Temperature (K)"}}
	m, t := rep.StellarMass, rep.StellarTemperature
	rows = append(rows,
		[]any{"n", m.N, t.N},
		[]any{"min", m.Min, t.Min},
		[]any{"q1", m.Q1, t.Q1},
		[]any{"median", m.Median, t.Median},
		[]any{"q3", m.Q3, t.Q3},
		[]any{"max", m.Max, t.Max},
		[]any{"mean", m.Mean, t.Mean},
	)
	return writeRows(f, sheetDistributions, rows)
}
