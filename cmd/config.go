package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/exohab-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set exohab configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("input_file: %s\n", cfg.InputFile)
		fmt.Printf("knn_neighbors: %d\n", cfg.KNNNeighbors)
		fmt.Printf("top_facilities: %d\n", cfg.TopFacilities)
		fmt.Printf("trend_min_years: %d\n", cfg.TrendMinYears)
		fmt.Printf("excluded_facilities: %s\n", strings.Join(cfg.ExcludedFacilities, ", "))
		fmt.Printf("super_earth_min_distance_au: %g\n", cfg.SuperEarthMinDistanceAU)
		if cfg.ChartsPath != "" {
			fmt.Printf("charts_path: %s\n", cfg.ChartsPath)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "input_file":
			if val == "" {
				return fmt.Errorf("input_file cannot be empty")
			}
			cfg.InputFile = val
		case "knn_neighbors":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for knn_neighbors: %w", err)
			}
			if err := checkNeighbors(i); err != nil {
				return err
			}
			cfg.KNNNeighbors = i
		case "top_facilities":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for top_facilities: %w", err)
			}
			if err := checkCount(key, i); err != nil {
				return err
			}
			cfg.TopFacilities = i
		case "trend_min_years":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for trend_min_years: %w", err)
			}
			if err := checkCount(key, i); err != nil {
				return err
			}
			cfg.TrendMinYears = i
		case "excluded_facilities":
			var names []string
			for _, n := range strings.Split(val, ",") {
				if n = strings.TrimSpace(n); n != "" {
					names = append(names, n)
				}
			}
			cfg.ExcludedFacilities = names
		case "super_earth_min_distance_au":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for super_earth_min_distance_au: %w", err)
			}
			if err := checkMinDistance(f); err != nil {
				return err
			}
			cfg.SuperEarthMinDistanceAU = f
		case "charts_path":
			cfg.ChartsPath = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
