package cmd

import (
	"errors"
	"fmt"

	"github.com/KaramelBytes/exohab-cli/internal/analysis"
	"github.com/KaramelBytes/exohab-cli/internal/classify"
	"github.com/spf13/cobra"
)

const defaultInputFile = "confirmed_exoplanets.csv"

// addPipelineFlags registers the flags shared by every command that runs the pipeline.
func addPipelineFlags(c *cobra.Command) {
	c.Flags().Int("neighbors", 0, "k for KNN imputation of stellar mass/temperature (default from config, 6)")
	c.Flags().Int("top", 0, "number of facilities to rank, 0 for all (default from config, 5)")
	c.Flags().Int("min-years", 0, "keep facility trends with more than this many yearly points (default from config, 2)")
	c.Flags().Float64("super-earth-min-au", 0, "super-Earth orbital distance lower bound in AU (default from config, 0.02)")
	c.Flags().StringSlice("exclude-facility", nil, "facility names left out of ranking and trends (repeatable)")
}

// checkNeighbors, checkCount and checkMinDistance hold the limits shared by
// the pipeline flags and `config set`.
func checkNeighbors(n int) error {
	if n < 1 {
		return fmt.Errorf("invalid knn_neighbors: %d (must be >= 1)", n)
	}
	return nil
}

func checkCount(key string, n int) error {
	if n < 0 {
		return fmt.Errorf("invalid %s: %d (must be >= 0)", key, n)
	}
	return nil
}

func checkMinDistance(v float64) error {
	upper := classify.DefaultCriteria().OrbitalDistance.Max
	if v < 0 || v > upper {
		return fmt.Errorf("invalid super_earth_min_distance_au: %v (must be within 0..%v)", v, upper)
	}
	return nil
}

func checkOptions(path string, opt analysis.Options) error {
	if path == "" {
		return errors.New("no input file: pass [csv] or set input_file")
	}
	return errors.Join(
		checkNeighbors(opt.Neighbors),
		checkCount("top_facilities", opt.Rank.Top),
		checkCount("trend_min_years", opt.Trend.MinYears),
		checkMinDistance(opt.Criteria.OrbitalDistance.Min),
	)
}

// pipelineOptions resolves defaults < config < flags and the input path.
// The merged result is validated once, so a bad config value can be
// overridden by a flag.
func pipelineOptions(c *cobra.Command, args []string) (string, analysis.Options, error) {
	opt := analysis.DefaultOptions()
	opt.Logger = logger
	path := defaultInputFile

	if cfg != nil {
		path = cfg.InputFile
		opt.Neighbors = cfg.KNNNeighbors
		opt.Rank.Top = cfg.TopFacilities
		opt.Trend.MinYears = cfg.TrendMinYears
		opt.Rank.Excluded = cfg.ExcludedFacilities
		opt.Trend.Excluded = cfg.ExcludedFacilities
		opt.Criteria.OrbitalDistance.Min = cfg.SuperEarthMinDistanceAU
	}
	if len(args) > 0 {
		path = args[0]
	}

	f := c.Flags()
	if f.Changed("neighbors") {
		opt.Neighbors, _ = f.GetInt("neighbors")
	}
	if f.Changed("top") {
		opt.Rank.Top, _ = f.GetInt("top")
	}
	if f.Changed("min-years") {
		opt.Trend.MinYears, _ = f.GetInt("min-years")
	}
	if f.Changed("super-earth-min-au") {
		opt.Criteria.OrbitalDistance.Min, _ = f.GetFloat64("super-earth-min-au")
	}
	if f.Changed("exclude-facility") {
		names, _ := f.GetStringSlice("exclude-facility")
		opt.Rank.Excluded = names
		opt.Trend.Excluded = names
	}
	if err := checkOptions(path, opt); err != nil {
		return "", opt, err
	}
	return path, opt, nil
}
