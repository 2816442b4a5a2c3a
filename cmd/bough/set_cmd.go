package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/bough/dataset"
	"github.com/pbanos/bough/dataset/mongodataset"
	"github.com/pbanos/bough/dataset/sqldataset"
	"github.com/pbanos/bough/dataset/sqldataset/pgadapter"
	"github.com/pbanos/bough/dataset/sqldataset/sqlite3adapter"
	"github.com/spf13/cobra"
)

const outputFlagUsage = "a SQLite3 (.db) file path, a PostgreSQL (postgresql://) or MongoDB (mongodb://) connection URL"

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Copy a set of data into a database",
		Long:  `Read a labelled set of data and store it in a SQL table or MongoDB collection from which trees can be grown and tested`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateMetadataFlag(rootConfig); err != nil {
				return exit(1, err)
			}
			output := rootConfig.v.GetString("output")
			if !isDatabaseInput(output) {
				return exit(1, fmt.Errorf("output %q is not %s", output, outputFlagUsage))
			}
			md, err := rootConfig.metadata()
			if err != nil {
				return exit(2, err)
			}
			ds, err := rootConfig.dataset(cmd.Context(), "input", rootConfig.v.GetString("input"), md)
			if err != nil {
				return exit(3, err)
			}
			n, err := rootConfig.writeDataset(cmd.Context(), output, ds)
			if err != nil {
				return exit(4, err)
			}
			rootConfig.Logf("Done, wrote %d samples", n)
			return nil
		},
	}
	cmd.Flags().StringP("input", "i", "", "set to copy: "+inputFlagUsage+" (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringP("output", "o", "", "database to write the set to: "+outputFlagUsage+" (required)")
	cmd.Flags().String("output-table", "", "table (SQL) or collection (MongoDB) to write the samples to (defaults to --table)")
	cmd.Flags().String("output-label-column", "", "column (SQL) or field (MongoDB) to write the sample labels to (defaults to --label-column)")
	addMetadataFlags(cmd)
	return cmd
}

func isDatabaseInput(input string) bool {
	return strings.HasPrefix(input, "postgresql://") ||
		strings.HasPrefix(input, "postgres://") ||
		strings.HasPrefix(input, "mongodb://") ||
		strings.HasSuffix(input, ".db")
}

/*
writeDataset stores the dataset in the database the output points to,
creating the table if needed, and returns the number of samples written.
*/
func (rc *rootCmdConfig) writeDataset(ctx context.Context, output string, ds *dataset.Dataset) (int, error) {
	table := rc.v.GetString("output-table")
	if table == "" {
		table = rc.table()
	}
	labelColumn := rc.v.GetString("output-label-column")
	if labelColumn == "" {
		labelColumn = rc.labelColumn()
	}
	var n int
	var err error
	switch {
	case strings.HasPrefix(output, "mongodb://"):
		rc.Logf("Connecting to MongoDB at %s to write %d samples...", output, ds.Count())
		session, derr := mongodataset.Dial(output)
		if derr != nil {
			return 0, derr
		}
		defer session.Close()
		n, err = mongodataset.Write(session, ds, mongodataset.Collection{Name: table, LabelField: labelColumn})
	default:
		newAdapter := sqlite3adapter.New
		if strings.HasPrefix(output, "postgres") {
			newAdapter = pgadapter.New
		}
		rc.Logf("Creating SQL adapter for %s to write %d samples...", output, ds.Count())
		adapter, aerr := newAdapter(output)
		if aerr != nil {
			return 0, aerr
		}
		defer adapter.Close()
		n, err = sqldataset.Write(ctx, adapter, ds, sqldataset.Table{Name: table, LabelColumn: labelColumn})
	}
	if err != nil {
		return n, fmt.Errorf("writing set to %s: %v", output, err)
	}
	return n, nil
}
