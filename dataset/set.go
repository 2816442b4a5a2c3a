/*
Package dataset provides the in-memory collection of labeled samples trees
are grown from and tested against.
*/
package dataset

import (
	"fmt"
	"sort"

	"github.com/pbanos/bough/feature"
)

/*
Dataset represents an ordered collection of samples sharing a schema.

Datasets are immutable: subsetting one with Partition produces new
datasets holding disjoint slices of samples and leaves the original
untouched.
*/
type Dataset struct {
	schema    *feature.Schema
	samples   []*Sample
	positives int
}

/*
New takes a schema and a slice of samples and returns a dataset with them,
or an error if a sample does not have exactly one value per feature in the
schema.
*/
func New(schema *feature.Schema, samples []*Sample) (*Dataset, error) {
	for i, s := range samples {
		if s.Len() != schema.Len() {
			return nil, fmt.Errorf("sample #%d has %d values, schema declares %d features", i+1, s.Len(), schema.Len())
		}
	}
	return newDataset(schema, append([]*Sample(nil), samples...)), nil
}

func newDataset(schema *feature.Schema, samples []*Sample) *Dataset {
	var positives int
	for _, s := range samples {
		if s.label {
			positives++
		}
	}
	return &Dataset{schema, samples, positives}
}

// Schema returns the schema shared by the samples of the dataset.
func (ds *Dataset) Schema() *feature.Schema {
	return ds.schema
}

// Count returns the number of samples in the dataset.
func (ds *Dataset) Count() int {
	return len(ds.samples)
}

// Positives returns the number of samples labeled true.
func (ds *Dataset) Positives() int {
	return ds.positives
}

// Negatives returns the number of samples labeled false.
func (ds *Dataset) Negatives() int {
	return len(ds.samples) - ds.positives
}

/*
Entropy returns the entropy in bits of the labels of the samples in the
dataset: a measure of the disinformation we have on the class of a sample
belonging to it.
*/
func (ds *Dataset) Entropy() float64 {
	return Entropy(ds.Positives(), ds.Negatives())
}

/*
Pure returns the label shared by all samples in the dataset and true, or
false as second value if the dataset is empty or has samples of both
classes.
*/
func (ds *Dataset) Pure() (label bool, ok bool) {
	switch {
	case len(ds.samples) == 0:
		return false, false
	case ds.positives == len(ds.samples):
		return true, true
	case ds.positives == 0:
		return false, true
	}
	return false, false
}

/*
Majority returns the label of most samples in the dataset. Half or more
positive samples, using integer division on the sample count, resolve to
true.
*/
func (ds *Dataset) Majority() bool {
	return ds.positives >= len(ds.samples)/2
}

// Samples returns a copy of the slice of samples in the dataset.
func (ds *Dataset) Samples() []*Sample {
	return append([]*Sample(nil), ds.samples...)
}

// Sample returns the i-th sample of the dataset.
func (ds *Dataset) Sample(i int) *Sample {
	return ds.samples[i]
}

/*
Values takes a feature and returns the distinct values the samples of the
dataset take for it, sorted in ascending order.
*/
func (ds *Dataset) Values(f *feature.Feature) []float64 {
	encountered := make(map[float64]bool)
	result := []float64{}
	for _, s := range ds.samples {
		v := s.ValueFor(f)
		if !encountered[v] {
			encountered[v] = true
			result = append(result, v)
		}
	}
	sort.Float64s(result)
	return result
}

/*
Partition takes a criterion and returns two datasets: one with the samples
that satisfy it and one with those that do not. Every sample ends up in
exactly one of them and relative order is preserved.
*/
func (ds *Dataset) Partition(c feature.Criterion) (satisfying, rest *Dataset) {
	var in, out []*Sample
	for _, s := range ds.samples {
		if c.SatisfiedBy(s) {
			in = append(in, s)
		} else {
			out = append(out, s)
		}
	}
	return newDataset(ds.schema, in), newDataset(ds.schema, out)
}

func (ds *Dataset) String() string {
	return fmt.Sprintf("{Dataset %d samples (%d+/%d-)}", ds.Count(), ds.Positives(), ds.Negatives())
}
