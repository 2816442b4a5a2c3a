package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pbanos/bough/dataset"
	"github.com/pbanos/bough/dataset/sqldataset"
	"github.com/pbanos/bough/dataset/sqldataset/sqlite3adapter"
	"github.com/pbanos/bough/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	metadataYML = "features: [x, y]\nlabel:\n  positive: [\"yes\"]\n"
	trainingCSV = "1,5,no\n2,3,no\n10,4,yes\n11,6,yes\n"
	testingCSV  = "0,1,no\n12,2,yes\n9,9,no\n"
)

type fixture struct {
	dir      string
	metadata string
	training string
	testing  string
}

func newFixture(t *testing.T) *fixture {
	dir := t.TempDir()
	f := &fixture{
		dir:      dir,
		metadata: filepath.Join(dir, "meta.yml"),
		training: filepath.Join(dir, "train.csv"),
		testing:  filepath.Join(dir, "test.csv"),
	}
	require.NoError(t, os.WriteFile(f.metadata, []byte(metadataYML), 0600))
	require.NoError(t, os.WriteFile(f.training, []byte(trainingCSV), 0600))
	require.NoError(t, os.WriteFile(f.testing, []byte(testingCSV), 0600))
	return f
}

func run(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := cliParser(&stderr)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func exitCode(t *testing.T, err error) int {
	var ee *exitError
	require.True(t, errors.As(err, &ee), "expected an exit error, got %v", err)
	return ee.code
}

func TestGrowText(t *testing.T) {
	f := newFixture(t)
	out, stderr, err := run("grow", "-m", f.metadata, "-i", f.training)
	require.NoError(t, err)
	assert.Contains(t, out, "[root]\n{ x } (gain 1.000000, 4 samples)")
	assert.Contains(t, out, "|__[x >= 6.000000]")
	assert.Contains(t, out, "{ true } (2 samples)")
	assert.Empty(t, stderr)
}

func TestGrowDotToFile(t *testing.T) {
	f := newFixture(t)
	output := filepath.Join(f.dir, "tree.dot")
	out, _, err := run("grow", "-m", f.metadata, "-i", f.training, "--format", "dot", "-o", output)
	require.NoError(t, err)
	assert.Empty(t, out)
	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(written), "digraph G")
	assert.Contains(t, string(written), `x >= 6.000000`)
}

func TestGrowFormatFromEnvironment(t *testing.T) {
	f := newFixture(t)
	t.Setenv("BOUGH_FORMAT", "dot")
	out, _, err := run("grow", "-m", f.metadata, "-i", f.training)
	require.NoError(t, err)
	assert.Contains(t, out, "digraph G")
}

func TestGrowFromConfigFile(t *testing.T) {
	f := newFixture(t)
	config := filepath.Join(f.dir, "bough.yml")
	require.NoError(t, os.WriteFile(config, []byte("metadata: "+f.metadata+"\ninput: "+f.training+"\n"), 0600))
	out, _, err := run("grow", "--config", config)
	require.NoError(t, err)
	assert.Contains(t, out, "[root]")
}

func TestGrowVerboseLogs(t *testing.T) {
	f := newFixture(t)
	_, stderr, err := run("grow", "-v", "-m", f.metadata, "-i", f.training)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Growing tree from a set with 4 samples and 2 features...")
	assert.Contains(t, stderr, "split")
}

func TestSetAndGrowFromSQLite3(t *testing.T) {
	f := newFixture(t)
	db := filepath.Join(f.dir, "train.db")
	_, _, err := run("set", "-m", f.metadata, "-i", f.training, "-o", db, "--output-table", "horses", "--output-label-column", "class")
	require.NoError(t, err)

	a, err := sqlite3adapter.New(db)
	require.NoError(t, err)
	schema, err := feature.NewSchema("x", "y")
	require.NoError(t, err)
	stored, err := sqldataset.Read(context.Background(), a, schema, sqldataset.Table{Name: "horses", LabelColumn: "class"}, dataset.LabelRule{Positive: []string{"yes"}})
	require.NoError(t, err)
	require.NoError(t, a.Close())
	assert.Equal(t, 4, stored.Count())
	assert.Equal(t, 2, stored.Positives())
	assert.Equal(t, []float64{10, 4}, stored.Sample(2).Values())

	out, _, err := run("grow", "-m", f.metadata, "-i", db, "--table", "horses", "--label-column", "class")
	require.NoError(t, err)
	assert.Contains(t, out, "[root]\n{ x } (gain 1.000000, 4 samples)")
	assert.Contains(t, out, "|__[x >= 6.000000]")

	out, _, err = run("test", "-m", f.metadata, "-i", db, "-t", f.testing, "--table", "horses", "--label-column", "class")
	require.NoError(t, err)
	assert.Contains(t, out, "0.666667")
}

func TestSetExitCodes(t *testing.T) {
	f := newFixture(t)
	tests := map[string]struct {
		args []string
		code int
	}{
		"without-output":  {[]string{"set", "-m", f.metadata, "-i", f.training}, 1},
		"csv-output":      {[]string{"set", "-m", f.metadata, "-i", f.training, "-o", filepath.Join(f.dir, "out.csv")}, 1},
		"without-meta":    {[]string{"set", "-i", f.training, "-o", filepath.Join(f.dir, "out.db")}, 1},
		"missing-input":   {[]string{"set", "-m", f.metadata, "-i", filepath.Join(f.dir, "missing.csv"), "-o", filepath.Join(f.dir, "out.db")}, 3},
		"unwritable-file": {[]string{"set", "-m", f.metadata, "-i", f.training, "-o", filepath.Join(f.dir, "missing", "out.db")}, 4},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := run(tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, exitCode(t, err))
		})
	}
}

func TestTest(t *testing.T) {
	f := newFixture(t)
	out, _, err := run("test", "-m", f.metadata, "-i", f.training, "-t", f.testing)
	require.NoError(t, err)
	assert.Contains(t, out, "0.666667")
	assert.NotContains(t, out, "successful")

	out, _, err = run("test", "-m", f.metadata, "-i", f.training, "-t", f.testing, "--instances")
	require.NoError(t, err)
	assert.Contains(t, out, "successful")
	assert.Contains(t, out, "failed")
}

func TestExitCodes(t *testing.T) {
	f := newFixture(t)
	broken := filepath.Join(f.dir, "broken.csv")
	require.NoError(t, os.WriteFile(broken, []byte("1,2,yes\nx,2,no\n"), 0600))
	tests := map[string]struct {
		args []string
		code int
	}{
		"grow-without-metadata": {[]string{"grow", "-i", f.training}, 1},
		"grow-unknown-format":   {[]string{"grow", "-m", f.metadata, "-i", f.training, "--format", "json"}, 1},
		"grow-missing-metadata": {[]string{"grow", "-m", filepath.Join(f.dir, "missing.yml"), "-i", f.training}, 2},
		"grow-broken-training":  {[]string{"grow", "-m", f.metadata, "-i", broken}, 3},
		"test-without-test":     {[]string{"test", "-m", f.metadata, "-i", f.training}, 1},
		"test-broken-training":  {[]string{"test", "-m", f.metadata, "-i", broken, "-t", f.testing}, 3},
		"test-broken-testing":   {[]string{"test", "-m", f.metadata, "-i", f.training, "-t", broken}, 4},
		"missing-config-file":   {[]string{"grow", "--config", filepath.Join(f.dir, "missing.yml")}, 1},
		"grow-missing-training": {[]string{"grow", "-m", f.metadata, "-i", filepath.Join(f.dir, "missing.csv")}, 3},
		"test-missing-testing":  {[]string{"test", "-m", f.metadata, "-i", f.training, "-t", filepath.Join(f.dir, "missing.csv")}, 4},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := run(tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, exitCode(t, err))
		})
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run("version")
	require.NoError(t, err)
	assert.Equal(t, "bough v0.1.0\n", out)
}
