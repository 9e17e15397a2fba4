package cmd

import (
	"fmt"

	"github.com/KaramelBytes/exohab-cli/internal/analysis"
	"github.com/spf13/cobra"
)

var facilitiesCmd = &cobra.Command{
	Use:   "facilities [csv]",
	Short: "Rank discovery facilities by potentially habitable finds",
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
		fmt.Print(rep.FacilitiesMarkdown())
		return nil
	},
}

var superEarthsCmd = &cobra.Command{
	Use:     "super-earths [csv]",
	Aliases: []string{"superearths"},
	Short:   "List super-Earth like planets and the follow-up shortlist",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, opt, err := pipelineOptions(cmd, args)
		if err != nil {
			return err
		}
		rep, err := analysis.Run(path, opt)
		if err != nil {
			return err
		}
		fmt.Print(rep.SuperEarthsMarkdown())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(facilitiesCmd)
	rootCmd.AddCommand(superEarthsCmd)
	addPipelineFlags(facilitiesCmd)
	addPipelineFlags(superEarthsCmd)
}
