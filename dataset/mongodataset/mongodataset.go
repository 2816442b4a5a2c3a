/*
Package mongodataset reads datasets from and writes them to MongoDB
collections.

A collection holds one sample per document, with one numeric field per
feature of the schema, named after it, plus a label field.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/bough/dataset"
	"github.com/pbanos/bough/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	// DefaultCollection is the collection read when none is given.
	DefaultCollection = "samples"
)

/*
Collection names the collection holding a dataset and its label field.
An empty Name means DefaultCollection.
*/
type Collection struct {
	Name       string
	LabelField string
}

/*
Dial takes a MongoDB connection URL (mongodb://...) and returns a session
on it or an error if it fails to connect. The database the collections are
read from is the one named in the URL.
*/
func Dial(url string) (*mgo.Session, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %v", err)
	}
	return session, nil
}

/*
Read takes a context, a MongoDB session, a schema, a collection and a
label rule, and returns the dataset made of the collection's documents or
an error.
*/
func Read(ctx context.Context, session *mgo.Session, schema *feature.Schema, c Collection, rule dataset.LabelRule) (*dataset.Dataset, error) {
	samples := []*dataset.Sample{}
	sampleChan, errs := Stream(ctx, session, schema, c, rule)
	for s := range sampleChan {
		samples = append(samples, s)
	}
	if err := <-errs; err != nil {
		return nil, err
	}
	return dataset.New(schema, samples)
}

/*
Stream takes a context, a MongoDB session, a schema, a collection and a
label rule and returns a channel on which the samples of the collection's
documents are sent and a channel on which an error is sent if reading or
converting a document fails or the context is cancelled. Both channels are
closed once reading stops.
*/
func Stream(ctx context.Context, session *mgo.Session, schema *feature.Schema, c Collection, rule dataset.LabelRule) (<-chan *dataset.Sample, <-chan error) {
	samples := make(chan *dataset.Sample)
	errs := make(chan error, 1)
	go func() {
		defer close(errs)
		defer close(samples)
		err := validateFieldNames(schema, c.LabelField)
		if err == nil {
			err = rule.Validate()
		}
		if err != nil {
			errs <- err
			return
		}
		iter := collection(session, c).Find(nil).Iter()
		var doc bson.M
	loop:
		for i := 1; iter.Next(&doc); i++ {
			s, perr := SampleFromDocument(doc, schema, c.LabelField, rule)
			if perr != nil {
				iter.Close()
				errs <- fmt.Errorf("parsing document %d: %v", i, perr)
				return
			}
			doc = nil
			select {
			case <-ctx.Done():
				err = ctx.Err()
				break loop
			case samples <- s:
			}
		}
		if err == nil {
			err = iter.Close()
		} else {
			iter.Close()
		}
		if err != nil {
			errs <- err
		}
	}()
	return samples, errs
}

/*
Write takes a MongoDB session, a dataset and a collection and inserts one
document per sample of the dataset in the collection, with the label stored
as a boolean. It returns the number of inserted documents or an error.
*/
func Write(session *mgo.Session, ds *dataset.Dataset, c Collection) (int, error) {
	if err := validateFieldNames(ds.Schema(), c.LabelField); err != nil {
		return 0, err
	}
	samples := ds.Samples()
	docs := make([]interface{}, 0, len(samples))
	for _, s := range samples {
		docs = append(docs, DocumentFromSample(s, ds.Schema(), c.LabelField))
	}
	if len(docs) == 0 {
		return 0, nil
	}
	err := collection(session, c).Insert(docs...)
	if err != nil {
		return 0, fmt.Errorf("inserting %d documents: %v", len(docs), err)
	}
	return len(docs), nil
}

/*
SampleFromDocument takes a document, a schema, the name of the label field
and a label rule and returns the sample the document describes or an error
if a feature field is missing or not numeric, or the label field cannot be
parsed with the rule.
*/
func SampleFromDocument(doc bson.M, schema *feature.Schema, labelField string, rule dataset.LabelRule) (*dataset.Sample, error) {
	names := schema.Names()
	values := make([]float64, len(names))
	for i, name := range names {
		raw, ok := doc[name]
		if !ok {
			return nil, fmt.Errorf("missing field %s", name)
		}
		v, err := dataset.NumericValue(raw)
		if err != nil {
			return nil, fmt.Errorf("field %s: %v", name, err)
		}
		values[i] = v
	}
	raw, ok := doc[labelField]
	if !ok {
		return nil, fmt.Errorf("missing label field %s", labelField)
	}
	label, err := rule.ParseValue(raw)
	if err != nil {
		return nil, fmt.Errorf("field %s: %v", labelField, err)
	}
	return dataset.NewSample(values, label), nil
}

/*
DocumentFromSample takes a sample, its schema and the name of the label
field and returns the document describing the sample.
*/
func DocumentFromSample(s *dataset.Sample, schema *feature.Schema, labelField string) bson.M {
	doc := make(bson.M, schema.Len()+1)
	for _, f := range schema.Features() {
		doc[f.Name()] = s.ValueFor(f)
	}
	doc[labelField] = s.Label()
	return doc
}

func validateFieldNames(schema *feature.Schema, labelField string) error {
	for _, name := range append(schema.Names(), labelField) {
		if name == "_id" {
			return fmt.Errorf("invalid field name %q: reserved collection field", name)
		}
		if name == "" || strings.ContainsAny(name, ".$") {
			return fmt.Errorf("invalid field name %q: empty or containing reserved characters %q or %q", name, ".", "$")
		}
	}
	return nil
}

func collection(session *mgo.Session, c Collection) *mgo.Collection {
	name := c.Name
	if name == "" {
		name = DefaultCollection
	}
	return session.DB("").C(name)
}
