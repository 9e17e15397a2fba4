package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/exohab-cli/internal/config"
	"github.com/KaramelBytes/exohab-cli/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
	// logger is replaced once flags are parsed
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "exohab",
	Short: "exohab: habitability survey of confirmed exoplanets",
	Long: `exohab loads a NASA Exoplanet Archive CSV export, imputes missing stellar
parameters, derives habitable-zone bounds, classifies super-Earths and ranks
the facilities that discovered potentially habitable planets.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.exohab/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	if l, err := logging.New(debug); err == nil {
		logger = l
	} else {
		fmt.Fprintf(os.Stderr, "⚠ Warning: %v\n", err)
	}

	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
	logger.Debug("config loaded", zap.String("input_file", cfg.InputFile), zap.Int("knn_neighbors", cfg.KNNNeighbors))
}
