package cmd

import (
	"fmt"

	"github.com/KaramelBytes/exohab-cli/internal/analysis"
	"github.com/KaramelBytes/exohab-cli/internal/charts"
	"github.com/KaramelBytes/exohab-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	anaOutputPath string
	anaXLSXPath   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [csv]",
	Short: "Run the full habitability survey and print the report",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, opt, err := pipelineOptions(cmd, args)
		if err != nil {
			return err
		}
		rep, err := analysis.Run(path, opt)
		if err != nil {
			return err
		}
		md := rep.Markdown()

		if anaOutputPath != "" {
			if err := utils.SafeWriteFile(anaOutputPath, []byte(md)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote analysis to %s\n", anaOutputPath)
		} else {
			fmt.Println(md)
		}

		xlsx := anaXLSXPath
		if xlsx == "" && cfg != nil {
			xlsx = cfg.ChartsPath
		}
		if xlsx != "" {
			if err := charts.Write(xlsx, rep); err != nil {
				return fmt.Errorf("write charts: %w", err)
			}
			fmt.Printf("✓ Wrote charts to %s\n", xlsx)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addPipelineFlags(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "optional path to write the report (Markdown)")
	analyzeCmd.Flags().StringVar(&anaXLSXPath, "xlsx", "", "optional path to write charts as an .xlsx workbook")
}
