/*
Package csv reads datasets from delimited text, one sample per line: the
values of the schema's features in order, followed by the class token.
*/
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/bough/dataset"
	"github.com/pbanos/bough/feature"
)

/*
Options tells how records are laid out and labelled.
*/
type Options struct {
	// Header is true when the first line holds column names and must be
	// skipped.
	Header bool
	// Delimiter separates fields. Zero means ','.
	Delimiter rune
	// Label turns the last field of a record into the sample label.
	Label dataset.LabelRule
}

/*
ReadDataset takes an io.Reader for a delimited text stream, a schema and
options and returns the dataset of samples parsed from the reader or an
error.
*/
func ReadDataset(reader io.Reader, schema *feature.Schema, opts Options) (*dataset.Dataset, error) {
	samples := []*dataset.Sample{}
	err := ReadBySample(reader, schema, opts, func(_ int, s *dataset.Sample) (bool, error) {
		samples = append(samples, s)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dataset.New(schema, samples)
}

/*
ReadBySample takes an io.Reader for a delimited text stream, a schema,
options and a lambda function on an integer and a sample that returns a
boolean value. It parses the samples from the reader and for each it calls
the lambda function with the sample and its index as parameters. If the
lambda function returns true, it will continue processing the next sample,
otherwise it will stop. An error is returned if something goes wrong when
reading the stream or parsing a sample; parsing errors report the line
they occurred at.

Every record is expected to have exactly one field per feature of the
schema plus the class token as last field.
*/
func ReadBySample(reader io.Reader, schema *feature.Schema, opts Options, lambda func(int, *dataset.Sample) (bool, error)) error {
	if err := opts.Label.Validate(); err != nil {
		return err
	}
	r := csv.NewReader(reader)
	r.Comma = ','
	if opts.Delimiter != 0 {
		r.Comma = opts.Delimiter
	}
	r.FieldsPerRecord = schema.Len() + 1
	r.TrimLeadingSpace = true
	if opts.Header {
		// the header may name the label column differently, so its
		// length is not enforced
		r.FieldsPerRecord = -1
		_, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading header: %v", err)
		}
		r.FieldsPerRecord = schema.Len() + 1
	}
	for i := 0; ; i++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return fmt.Errorf("parsing line %d: %v", pe.Line, pe.Err)
		}
		if err != nil {
			return fmt.Errorf("reading body: %v", err)
		}
		sample, err := parseSample(record, opts.Label)
		if err != nil {
			line, _ := r.FieldPos(0)
			return fmt.Errorf("parsing line %d: %v", line, err)
		}
		ok, err := lambda(i, sample)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadDatasetFromFilePath takes a filepath string, a schema and options,
opens the file to which the filepath points to and uses ReadDataset to
return the dataset read from it or an error. If the filepath is "",
os.Stdin is read instead.
*/
func ReadDatasetFromFilePath(filepath string, schema *feature.Schema, opts Options) (*dataset.Dataset, error) {
	f := os.Stdin
	if filepath != "" {
		var err error
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %v", err)
		}
		defer f.Close()
	}
	ds, err := ReadDataset(f, schema, opts)
	if err != nil {
		err = fmt.Errorf("parsing file %s: %v", filepath, err)
	}
	return ds, err
}

func parseSample(record []string, rule dataset.LabelRule) (*dataset.Sample, error) {
	values := make([]float64, len(record)-1)
	for i := range values {
		f, err := dataset.ParseFloat(record[i])
		if err != nil {
			return nil, fmt.Errorf("field %d: %v", i+1, err)
		}
		values[i] = f
	}
	label, err := rule.Parse(record[len(record)-1])
	if err != nil {
		return nil, fmt.Errorf("field %d: %v", len(record), err)
	}
	return dataset.NewSample(values, label), nil
}
