package catalog

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Source column names of the NASA Exoplanet Archive export.
const (
	ColName          = "pl_name"
	ColOrbitalDist   = "pl_orbsmax"
	ColStellarTemp   = "st_teff"
	ColPlanetSize    = "pl_radj"
	ColPlanetMass    = "pl_bmassj"
	ColDensity       = "pl_dens"
	ColEccentricity  = "pl_orbeccen"
	ColDiscoveryTime = "rowupdate"
	ColFacility      = "pl_facility"
	ColStellarMass   = "st_mass"
	ColStellarRadius = "st_rad"
)

// RequiredColumns lists every column Load resolves, in output order.
var RequiredColumns = []string{
	ColName, ColFacility, ColDiscoveryTime,
	ColStellarTemp, ColStellarMass, ColStellarRadius,
	ColOrbitalDist, ColPlanetSize, ColPlanetMass, ColDensity, ColEccentricity,
}

// LoadOptions controls CSV reading.
type LoadOptions struct {
	// Delimiter for the CSV. If 0, ',' is used.
	Delimiter rune
	// Comment marks lines to skip. Archive exports prefix metadata with '#'.
	Comment rune
}

// DefaultLoadOptions returns options matching the archive's CSV export.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Delimiter: ',', Comment: '#'}
}

// Catalog is the typed, deduplicated result of Load.
type Catalog struct {
	Name       string
	Rows       int // data rows read, before dedup
	Duplicates int
	Planets    []Planet
	Warnings   []string
}

// Load reads the CSV at path, drops exact duplicate rows and resolves the
// archive columns into Planet records. A missing required column is a
// *SchemaError.
func Load(path string, opt LoadOptions) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	delim := opt.Delimiter
	if delim == 0 {
		delim = ','
	}
	loadOpts := []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithDelimiter(delim),
		dataframe.WithLazyQuotes(true),
	}
	if opt.Comment != 0 {
		loadOpts = append(loadOpts, dataframe.WithComments(opt.Comment))
	}
	df := dataframe.ReadCSV(f, loadOpts...)
	if df.Err != nil {
		return nil, fmt.Errorf("read csv: %w", df.Err)
	}

	if missing := missingColumns(df.Names()); len(missing) > 0 {
		return nil, &SchemaError{Path: path, Missing: missing}
	}

	cat := &Catalog{Name: filepath.Base(path), Rows: df.Nrow()}
	df, cat.Duplicates = dropDuplicates(df)

	df = df.Select(RequiredColumns)
	if df.Err != nil {
		return nil, fmt.Errorf("select columns: %w", df.Err)
	}

	cols := make(map[string][]string, len(RequiredColumns))
	for _, name := range RequiredColumns {
		cols[name] = df.Col(name).Records()
	}

	n := df.Nrow()
	cat.Planets = make([]Planet, 0, n)
	for i := 0; i < n; i++ {
		num := func(col string) float64 {
			v, ok := parseNumber(cols[col][i])
			if !ok {
				cat.Warnings = append(cat.Warnings, fmt.Sprintf("row %d: %s: cannot parse %q as number", i+1, col, cols[col][i]))
			}
			return v
		}
		p := Planet{
			Name:          text(cols[ColName][i]),
			Facility:      text(cols[ColFacility][i]),
			DiscoveryTime: text(cols[ColDiscoveryTime][i]),

			StellarTemperature: num(ColStellarTemp),
			StellarMass:        num(ColStellarMass),
			StellarRadius:      num(ColStellarRadius),
			OrbitalDistance:    num(ColOrbitalDist),
			PlanetSize:         num(ColPlanetSize),
			PlanetMass:         num(ColPlanetMass),
			Density:            num(ColDensity),
			Eccentricity:       num(ColEccentricity),
		}
		p.DiscoveryYear = ParseYear(p.DiscoveryTime)
		cat.Planets = append(cat.Planets, p)
	}
	return cat, nil
}

func missingColumns(have []string) []string {
	seen := make(map[string]struct{}, len(have))
	for _, h := range have {
		seen[strings.TrimSpace(h)] = struct{}{}
	}
	var missing []string
	for _, want := range RequiredColumns {
		if _, ok := seen[want]; !ok {
			missing = append(missing, want)
		}
	}
	return missing
}

// dropDuplicates keeps the first occurrence of each identical row.
func dropDuplicates(df dataframe.DataFrame) (dataframe.DataFrame, int) {
	records := df.Records()
	if len(records) <= 1 {
		return df, 0
	}
	seen := make(map[string]struct{}, len(records)-1)
	keep := make([]int, 0, len(records)-1)
	for i, row := range records[1:] { // first record is the header
		key := strings.Join(row, "\x1f")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, i)
	}
	dups := df.Nrow() - len(keep)
	if dups == 0 {
		return df, 0
	}
	return df.Subset(keep), dups
}

func isNA(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "NA", "NaN", "nan", "<nil>":
		return true
	}
	return false
}

func text(s string) string {
	if isNA(s) {
		return ""
	}
	return strings.TrimSpace(s)
}

// parseNumber returns NaN for empty cells. ok is false only when a non-empty
// cell is not a number.
func parseNumber(s string) (float64, bool) {
	if isNA(s) {
		return math.NaN(), true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN(), false
	}
	return f, true
}

var yearLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339, "2006/01/02", "2006-01"}

// ParseYear extracts the calendar year of a rowupdate value, or 0.
func ParseYear(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	for _, l := range yearLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t.Year()
		}
	}
	return 0
}
