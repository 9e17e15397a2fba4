package analysis

import (
	"fmt"
	"time"

	"github.com/KaramelBytes/exohab-cli/internal/astro"
	"github.com/KaramelBytes/exohab-cli/internal/catalog"
	"github.com/KaramelBytes/exohab-cli/internal/classify"
	"github.com/KaramelBytes/exohab-cli/internal/impute"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options controls a pipeline run.
type Options struct {
	Load      catalog.LoadOptions
	Neighbors int
	Criteria  classify.Criteria
	Shortlist classify.ShortlistCriteria
	Rank      RankOptions
	Trend     TrendOptions
	// Logger receives stage progress; nil discards it.
	Logger *zap.Logger
}

// DefaultOptions returns the survey defaults.
func DefaultOptions() Options {
	return Options{
		Load:      catalog.DefaultLoadOptions(),
		Neighbors: impute.DefaultNeighbors,
		Criteria:  classify.DefaultCriteria(),
		Shortlist: classify.DefaultShortlist(),
		Rank:      RankOptions{Top: 5, Excluded: DefaultExcludedFacilities},
		Trend:     TrendOptions{MinYears: 2, Excluded: DefaultExcludedFacilities},
	}
}

// Run loads the catalog at path and executes every stage in order:
// load, impute, derive, classify, then aggregate into a Report.
func Run(path string, opt Options) (*Report, error) {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}

	cat, err := catalog.Load(path, opt.Load)
	if err != nil {
		return nil, err
	}
	log.Info("catalog loaded",
		zap.String("file", cat.Name),
		zap.Int("rows", cat.Rows),
		zap.Int("duplicates", cat.Duplicates),
		zap.Int("parse_warnings", len(cat.Warnings)))

	imp, err := impute.KNN{Neighbors: opt.Neighbors}.Impute(cat.Planets)
	if err != nil {
		return nil, fmt.Errorf("impute: %w", err)
	}
	log.Info("stellar parameters imputed",
		zap.Int("neighbors", opt.Neighbors),
		zap.Int("imputed", imp.Imputed),
		zap.Int("unrecoverable", imp.Unrecoverable),
		zap.Int("missing_radius", imp.MissingRadius))

	planets := astro.Derive(imp.Planets)
	planets = classify.Apply(planets, opt.Criteria)

	rep := &Report{
		RunID:         uuid.NewString(),
		GeneratedAt:   time.Now(),
		Name:          cat.Name,
		Rows:          cat.Rows,
		Duplicates:    cat.Duplicates,
		Imputed:       imp.Imputed,
		Unrecoverable: imp.Unrecoverable,
		MissingRadius: imp.MissingRadius,
		Neighbors:     opt.Neighbors,
		Planets:       planets,
		Warnings:      append([]string(nil), cat.Warnings...),
	}
	for _, p := range planets {
		if p.PotentiallyHabitable {
			rep.Habitable++
		}
		if classify.Certain(p) {
			rep.HabitableCertain = append(rep.HabitableCertain, p)
		}
	}
	rep.SuperEarths = classify.Names(planets, func(p catalog.Planet) bool { return p.SuperEarth })
	rep.Shortlist = classify.Shortlist(planets, opt.Shortlist)
	rep.Ranking = RankFacilities(planets, opt.Rank)
	rep.Trends = FacilityTrends(planets, opt.Trend)
	rep.StellarMass = Distribution(Field(rep.HabitableCertain, func(p catalog.Planet) float64 { return p.StellarMass }))
	rep.StellarTemperature = Distribution(Field(rep.HabitableCertain, func(p catalog.Planet) float64 { return p.StellarTemperature }))

	if opt.Criteria.OrbitalDistance.Min == classify.DefaultMinDistance {
		msg := fmt.Sprintf("super-Earth distance lower bound is %.2f AU; the documented range starts at 0.9 AU", classify.DefaultMinDistance)
		rep.Warnings = append(rep.Warnings, msg)
		log.Warn("super-Earth distance bound differs from documented range",
			zap.Float64("min_au", classify.DefaultMinDistance))
	}
	log.Info("analysis complete",
		zap.String("run_id", rep.RunID),
		zap.Int("planets", len(planets)),
		zap.Int("habitable", rep.Habitable),
		zap.Int("super_earths", len(rep.SuperEarths)))
	return rep, nil
}
