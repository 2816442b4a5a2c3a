/*
Package feature defines the numeric features samples are described with,
the schema that fixes their order for a dataset and the criteria that
constrain their values.
*/
package feature

import (
	"fmt"
	"strings"
)

/*
Feature represents a numeric property that can be observed on a sample.
Integer-valued properties are represented as whole float64 values.

A Feature belongs to the Schema that declared it: its position in the
schema is the position of its value in every sample of a dataset with
that schema.
*/
type Feature struct {
	name  string
	index int
}

/*
Schema represents the fixed, ordered list of features shared by all
samples of a dataset.
*/
type Schema struct {
	features []*Feature
	byName   map[string]*Feature
}

// SchemaError represents an error related with feature schemas
type SchemaError string

/*
ErrUnknownFeature is the error returned when a feature is requested by a
name the schema does not declare.
*/
const ErrUnknownFeature = SchemaError("unknown feature")

func (se SchemaError) Error() string {
	return string(se)
}

/*
NewSchema takes a list of feature names and returns a Schema declaring a
feature for each of them in the given order, or an error if a name is
empty or repeated.
*/
func NewSchema(names ...string) (*Schema, error) {
	s := &Schema{
		features: make([]*Feature, 0, len(names)),
		byName:   make(map[string]*Feature, len(names)),
	}
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("declaring feature #%d: empty name", i+1)
		}
		if _, ok := s.byName[name]; ok {
			return nil, fmt.Errorf("declaring feature #%d: duplicated name %q", i+1, name)
		}
		f := &Feature{name: name, index: i}
		s.features = append(s.features, f)
		s.byName[name] = f
	}
	return s, nil
}

/*
Name returns a string with the name of the feature
*/
func (f *Feature) Name() string {
	return f.name
}

/*
Index returns the position of the feature in its schema, which is also
the position of its value in samples.
*/
func (f *Feature) Index() int {
	return f.index
}

func (f *Feature) String() string {
	return f.name
}

// Len returns the number of features in the schema.
func (s *Schema) Len() int {
	return len(s.features)
}

/*
Features returns a copy of the slice of features in the schema in their
declared order.
*/
func (s *Schema) Features() []*Feature {
	return append([]*Feature(nil), s.features...)
}

// Names returns the names of the features in the schema in their declared order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.features))
	for i, f := range s.features {
		names[i] = f.name
	}
	return names
}

/*
Feature takes a name and returns the feature in the schema with that name
or an error wrapping ErrUnknownFeature if there is none.
*/
func (s *Schema) Feature(name string) (*Feature, error) {
	f, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFeature, name)
	}
	return f, nil
}

/*
Lookup takes a list of feature names and returns the corresponding
features in the same order, or an error if any of them is unknown.
*/
func (s *Schema) Lookup(names ...string) ([]*Feature, error) {
	features := make([]*Feature, 0, len(names))
	for _, name := range names {
		f, err := s.Feature(name)
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	return features, nil
}
