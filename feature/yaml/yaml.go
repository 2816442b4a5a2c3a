/*
Package yaml provides methods to parse dataset descriptions, also known as
metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"
	"unicode/utf8"

	"github.com/pbanos/bough/dataset"
	"github.com/pbanos/bough/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
Metadata describes a dataset: the schema of its samples and how they are
laid out in delimited text.
*/
type Metadata struct {
	// Schema declares the features of the samples, in the order their
	// values appear in each record.
	Schema *feature.Schema
	// Label tells how class tokens become sample labels.
	Label dataset.LabelRule
	// Header is true when the first line of a text dataset holds column
	// names instead of a sample.
	Header bool
	// Delimiter separates the fields of a record.
	Delimiter rune
}

type document struct {
	Features  []string          `yaml:"features"`
	Label     dataset.LabelRule `yaml:"label"`
	Header    bool              `yaml:"header"`
	Delimiter string            `yaml:"delimiter"`
}

/*
ReadMetadata takes a slice of bytes with a dataset description in YAML and
returns the Metadata parsed from it or an error.
The YAML is expected to be an object with the following properties:
  - features: the list of feature names, in the order their values appear
    in each record (required),
  - label: an object with either a positive or a negative list of class
    tokens (optional, defaults to parsing class tokens as booleans),
  - header: whether text datasets start with a header line (optional,
    defaults to false),
  - delimiter: the single character separating fields (optional, defaults
    to ',').
*/
func ReadMetadata(md []byte) (*Metadata, error) {
	doc := &document{}
	err := yaml.Unmarshal(md, doc)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if len(doc.Features) == 0 {
		return nil, fmt.Errorf("metadata has no feature information")
	}
	schema, err := feature.NewSchema(doc.Features...)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if err = doc.Label.Validate(); err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	delimiter := ','
	if doc.Delimiter != "" {
		if utf8.RuneCountInString(doc.Delimiter) != 1 {
			return nil, fmt.Errorf("parsing yml metadata: delimiter %q is not a single character", doc.Delimiter)
		}
		delimiter, _ = utf8.DecodeRuneInString(doc.Delimiter)
	}
	return &Metadata{
		Schema:    schema,
		Label:     doc.Label,
		Header:    doc.Header,
		Delimiter: delimiter,
	}, nil
}

/*
ReadFeatures takes a slice of bytes with a dataset description in YAML and
returns the schema declared in it or an error.
*/
func ReadFeatures(md []byte) (*feature.Schema, error) {
	m, err := ReadMetadata(md)
	if err != nil {
		return nil, err
	}
	return m.Schema, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the parsed Metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadMetadataFromFile(filepath string) (*Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	m, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %v", filepath, err)
	}
	return m, err
}
