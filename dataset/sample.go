package dataset

import (
	"fmt"

	"github.com/pbanos/bough/feature"
)

/*
Sample represents a labeled item from which to learn, or against which to
test what was learned.

It holds one value per feature of the schema of its dataset, in schema
order, and a boolean label. Samples are immutable.
*/
type Sample struct {
	values []float64
	label  bool
}

/*
NewSample takes a slice of feature values in schema order and a label and
returns a sample. The values are copied.
*/
func NewSample(values []float64, label bool) *Sample {
	return &Sample{append([]float64(nil), values...), label}
}

// ValueFor returns the value of the sample for the given feature.
func (s *Sample) ValueFor(f *feature.Feature) float64 {
	return s.values[f.Index()]
}

// Label returns the class of the sample.
func (s *Sample) Label() bool {
	return s.label
}

// Len returns the number of feature values in the sample.
func (s *Sample) Len() int {
	return len(s.values)
}

// Values returns a copy of the feature values of the sample.
func (s *Sample) Values() []float64 {
	return append([]float64(nil), s.values...)
}

func (s *Sample) String() string {
	return fmt.Sprintf("[%v %t]", s.values, s.label)
}
