package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/bough/dataset"
	"github.com/pbanos/bough/dataset/csv"
	"github.com/pbanos/bough/dataset/mongodataset"
	"github.com/pbanos/bough/dataset/sqldataset"
	"github.com/pbanos/bough/dataset/sqldataset/pgadapter"
	"github.com/pbanos/bough/dataset/sqldataset/sqlite3adapter"
	"github.com/pbanos/bough/feature/yaml"
)

const (
	defaultTable       = "samples"
	defaultLabelColumn = "label"
	inputFlagUsage     = "a CSV file path, a SQLite3 (.db) file path, a PostgreSQL (postgresql://) or MongoDB (mongodb://) connection URL"
)

func (rc *rootCmdConfig) metadata() (*yaml.Metadata, error) {
	path := rc.v.GetString("metadata")
	rc.Logf("Reading metadata from %s...", path)
	return yaml.ReadMetadataFromFile(path)
}

/*
dataset reads the dataset for the given role (training, testing) from the
given input, which may be a PostgreSQL or MongoDB connection URL, a path to
an SQLite3 file ending in .db, or a path to a CSV file. An empty input
means CSV on STDIN.
*/
func (rc *rootCmdConfig) dataset(ctx context.Context, role, input string, md *yaml.Metadata) (*dataset.Dataset, error) {
	var ds *dataset.Dataset
	var err error
	switch {
	case strings.HasPrefix(input, "postgresql://") || strings.HasPrefix(input, "postgres://"):
		ds, err = rc.sqlDataset(ctx, role, input, md, pgadapter.New)
	case strings.HasPrefix(input, "mongodb://"):
		ds, err = rc.mongoDataset(ctx, role, input, md)
	case strings.HasSuffix(input, ".db"):
		ds, err = rc.sqlDataset(ctx, role, input, md, sqlite3adapter.New)
	default:
		if input == "" {
			rc.Logf("Reading %s set from STDIN...", role)
		} else {
			rc.Logf("Reading %s set from %s...", role, input)
		}
		ds, err = csv.ReadDatasetFromFilePath(input, md.Schema, csv.Options{
			Header:    md.Header,
			Delimiter: md.Delimiter,
			Label:     md.Label,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s set: %v", role, err)
	}
	rc.Logf("Read %s set with %d samples (%d positive)", role, ds.Count(), ds.Positives())
	return ds, nil
}

func (rc *rootCmdConfig) sqlDataset(ctx context.Context, role, input string, md *yaml.Metadata, newAdapter func(string) (sqldataset.Adapter, error)) (*dataset.Dataset, error) {
	rc.Logf("Creating SQL adapter for %s to read %s set...", input, role)
	adapter, err := newAdapter(input)
	if err != nil {
		return nil, err
	}
	defer adapter.Close()
	t := sqldataset.Table{Name: rc.table(), LabelColumn: rc.labelColumn()}
	rc.Logf("Reading %s set from table %s...", role, t.Name)
	return sqldataset.Read(ctx, adapter, md.Schema, t, md.Label)
}

func (rc *rootCmdConfig) mongoDataset(ctx context.Context, role, input string, md *yaml.Metadata) (*dataset.Dataset, error) {
	rc.Logf("Connecting to MongoDB at %s to read %s set...", input, role)
	session, err := mongodataset.Dial(input)
	if err != nil {
		return nil, err
	}
	defer session.Close()
	c := mongodataset.Collection{Name: rc.table(), LabelField: rc.labelColumn()}
	rc.Logf("Reading %s set from collection %s...", role, c.Name)
	return mongodataset.Read(ctx, session, md.Schema, c, md.Label)
}

func (rc *rootCmdConfig) table() string {
	if t := rc.v.GetString("table"); t != "" {
		return t
	}
	return defaultTable
}

func (rc *rootCmdConfig) labelColumn() string {
	if c := rc.v.GetString("label-column"); c != "" {
		return c
	}
	return defaultLabelColumn
}
