package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	InputFile          string   `mapstructure:"input_file" yaml:"input_file"`
	KNNNeighbors       int      `mapstructure:"knn_neighbors" yaml:"knn_neighbors"`
	TopFacilities      int      `mapstructure:"top_facilities" yaml:"top_facilities"`
	TrendMinYears      int      `mapstructure:"trend_min_years" yaml:"trend_min_years"`
	ExcludedFacilities []string `mapstructure:"excluded_facilities" yaml:"excluded_facilities"`
	// Lower orbital-distance bound of the super-Earth filter, in AU.
	SuperEarthMinDistanceAU float64 `mapstructure:"super_earth_min_distance_au" yaml:"super_earth_min_distance_au"`
	// ChartsPath, if set, makes analyze write the chart workbook there.
	ChartsPath string `mapstructure:"charts_path" yaml:"charts_path"`
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".exohab"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.exohab/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("EXOHAB")
	v.AutomaticEnv()

	v.SetDefault("input_file", "confirmed_exoplanets.csv")
	v.SetDefault("knn_neighbors", 6)
	v.SetDefault("top_facilities", 5)
	v.SetDefault("trend_min_years", 2)
	v.SetDefault("excluded_facilities", []string{"Multiple Observatories", "Multiple Facilities"})
	v.SetDefault("super_earth_min_distance_au", 0.02)
	v.SetDefault("charts_path", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
