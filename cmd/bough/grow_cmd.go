package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pbanos/bough"
	"github.com/pbanos/bough/dataset"
	"github.com/pbanos/bough/tree"
	"github.com/pbanos/bough/tree/dot"
	"github.com/spf13/cobra"
)

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a binary decision tree from a labelled set of data and write it in text or DOT format.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := rootConfig.v.GetString("format")
			if err := validateMetadataFlag(rootConfig); err != nil {
				return exit(1, err)
			}
			if format != "text" && format != "dot" {
				return exit(1, fmt.Errorf("unknown tree format %q, expected text or dot", format))
			}
			md, err := rootConfig.metadata()
			if err != nil {
				return exit(2, err)
			}
			trainingSet, err := rootConfig.dataset(cmd.Context(), "training", rootConfig.v.GetString("input"), md)
			if err != nil {
				return exit(3, err)
			}
			t, err := rootConfig.grow(trainingSet)
			if err != nil {
				return exit(5, err)
			}
			err = outputTree(rootConfig.v.GetString("output"), cmd.OutOrStdout(), format, t)
			if err != nil {
				return exit(6, err)
			}
			return nil
		},
	}
	cmd.Flags().StringP("input", "i", "", "training set: "+inputFlagUsage+" (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringP("output", "o", "", "path to a file to which the grown tree will be written (defaults to STDOUT)")
	cmd.Flags().String("format", "text", "format in which to write the tree: text or dot")
	addMetadataFlags(cmd)
	return cmd
}

func addMetadataFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("metadata", "m", "", "path to a YML file with metadata describing the features and labels of the input (required)")
	cmd.Flags().String("table", defaultTable, "table (SQL) or collection (MongoDB) holding the samples")
	cmd.Flags().String("label-column", defaultLabelColumn, "column (SQL) or field (MongoDB) holding the sample labels")
}

func validateMetadataFlag(rc *rootCmdConfig) error {
	if rc.v.GetString("metadata") == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	return nil
}

func (rc *rootCmdConfig) grow(trainingSet *dataset.Dataset) (*tree.Tree, error) {
	names := trainingSet.Schema().Names()
	rc.Logf("Growing tree from a set with %d samples and %d features...", trainingSet.Count(), len(names))
	t, err := bough.GrowTree(trainingSet, names, bough.WithLogger(rc.Logger))
	if err != nil {
		return nil, err
	}
	rc.Logf("Done, grown tree has %d nodes and depth %d", t.Size(), t.Depth())
	return t, nil
}

func outputTree(outputPath string, stdout io.Writer, format string, t *tree.Tree) error {
	w := stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output file: %v", err)
		}
		defer f.Close()
		w = f
	}
	if format == "dot" {
		return dot.Write(w, t)
	}
	_, err := io.WriteString(w, t.String())
	if err != nil {
		return fmt.Errorf("writing tree: %v", err)
	}
	return nil
}
