package dataset

import (
	"testing"

	"github.com/pbanos/bough/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func xySchema(t *testing.T) (*feature.Schema, *feature.Feature, *feature.Feature) {
	s, err := feature.NewSchema("x", "y")
	require.NoError(t, err)
	x, _ := s.Feature("x")
	y, _ := s.Feature("y")
	return s, x, y
}

func TestNewRejectsSamplesNotMatchingSchema(t *testing.T) {
	s, _, _ := xySchema(t)
	_, err := New(s, []*Sample{NewSample([]float64{1, 2}, true), NewSample([]float64{1}, false)})
	assert.Error(t, err)
}

func TestDatasetCounts(t *testing.T) {
	s, _, _ := xySchema(t)
	ds, err := New(s, []*Sample{
		NewSample([]float64{1, 2}, true),
		NewSample([]float64{3, 4}, false),
		NewSample([]float64{5, 6}, true),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Count())
	assert.Equal(t, 2, ds.Positives())
	assert.Equal(t, 1, ds.Negatives())
	assert.Equal(t, s, ds.Schema())
}

func TestDatasetPure(t *testing.T) {
	s, _, _ := xySchema(t)
	tests := map[string]struct {
		labels []bool
		label  bool
		ok     bool
	}{
		"empty":         {nil, false, false},
		"all-positive":  {[]bool{true, true}, true, true},
		"all-negative":  {[]bool{false}, false, true},
		"mixed":         {[]bool{true, false}, false, false},
		"mixed-reverse": {[]bool{false, false, true}, false, false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var samples []*Sample
			for _, l := range tt.labels {
				samples = append(samples, NewSample([]float64{0, 0}, l))
			}
			ds, err := New(s, samples)
			require.NoError(t, err)
			label, ok := ds.Pure()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestDatasetMajority(t *testing.T) {
	s, _, _ := xySchema(t)
	tests := map[string]struct {
		positives, negatives int
		majority             bool
	}{
		"tie":              {1, 1, true},
		"more-positive":    {3, 1, true},
		"more-negative":    {1, 3, false},
		"odd-integer-half": {1, 2, true},
		"odd-below-half":   {1, 4, false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var samples []*Sample
			for i := 0; i < tt.positives; i++ {
				samples = append(samples, NewSample([]float64{0, 0}, true))
			}
			for i := 0; i < tt.negatives; i++ {
				samples = append(samples, NewSample([]float64{0, 0}, false))
			}
			ds, err := New(s, samples)
			require.NoError(t, err)
			assert.Equal(t, tt.majority, ds.Majority())
		})
	}
}

func TestDatasetValues(t *testing.T) {
	s, x, y := xySchema(t)
	ds, err := New(s, []*Sample{
		NewSample([]float64{5, 1}, true),
		NewSample([]float64{1, 1}, false),
		NewSample([]float64{3, 1}, true),
		NewSample([]float64{1, 1}, true),
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 5}, ds.Values(x))
	assert.Equal(t, []float64{1}, ds.Values(y))
}

func TestDatasetPartition(t *testing.T) {
	s, x, _ := xySchema(t)
	ds, err := New(s, []*Sample{
		NewSample([]float64{1, 0}, false),
		NewSample([]float64{10, 0}, true),
		NewSample([]float64{2, 0}, false),
		NewSample([]float64{11, 0}, true),
	})
	require.NoError(t, err)

	ge, lt := ds.Partition(feature.NewThresholdCriterion(x, 6))
	assert.Equal(t, 2, ge.Count())
	assert.Equal(t, 2, ge.Positives())
	assert.Equal(t, 2, lt.Count())
	assert.Equal(t, 0, lt.Positives())
	assert.Equal(t, 10.0, ge.Sample(0).ValueFor(x))
	assert.Equal(t, 11.0, ge.Sample(1).ValueFor(x))
	assert.Equal(t, 4, ds.Count())

	ge, lt = ds.Partition(feature.NewThresholdCriterion(x, 1))
	assert.Equal(t, 4, ge.Count())
	assert.Equal(t, 0, lt.Count())
}

func TestSampleIsImmutable(t *testing.T) {
	_, x, _ := xySchema(t)
	values := []float64{1, 2}
	s := NewSample(values, true)
	values[0] = 100
	assert.Equal(t, 1.0, s.ValueFor(x))
	s.Values()[0] = 100
	assert.Equal(t, 1.0, s.ValueFor(x))
}
