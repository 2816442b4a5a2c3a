package main

import (
	"fmt"

	"github.com/pbanos/bough/evaluation"
	"github.com/spf13/cobra"
)

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a training set and test how well it classifies the samples of a testing set`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateMetadataFlag(rootConfig); err != nil {
				return exit(1, err)
			}
			testInput := rootConfig.v.GetString("test")
			if testInput == "" {
				return exit(1, fmt.Errorf("required test flag was not set"))
			}
			md, err := rootConfig.metadata()
			if err != nil {
				return exit(2, err)
			}
			trainingSet, err := rootConfig.dataset(cmd.Context(), "training", rootConfig.v.GetString("input"), md)
			if err != nil {
				return exit(3, err)
			}
			testingSet, err := rootConfig.dataset(cmd.Context(), "testing", testInput, md)
			if err != nil {
				return exit(4, err)
			}
			t, err := rootConfig.grow(trainingSet)
			if err != nil {
				return exit(5, err)
			}
			if testingSet.Count() == 0 {
				rootConfig.Warn().Msg("testing set is empty, success rate is undefined")
			}
			rootConfig.Logf("Testing tree against testing set with %d samples...", testingSet.Count())
			report := evaluation.Evaluate(t, testingSet)
			rootConfig.Logf("Done, %v", report)
			err = report.Write(cmd.OutOrStdout(), rootConfig.v.GetBool("instances"))
			if err != nil {
				return exit(6, err)
			}
			return nil
		},
	}
	cmd.Flags().StringP("input", "i", "", "training set: "+inputFlagUsage+" (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringP("test", "t", "", "testing set: "+inputFlagUsage+" (required)")
	cmd.Flags().Bool("instances", false, "report the classification of every testing sample")
	addMetadataFlags(cmd)
	return cmd
}
