/*
Package evaluation measures how well a classifier labels a held-out
dataset.
*/
package evaluation

import (
	"fmt"
	"io"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pbanos/bough/dataset"
	"github.com/pbanos/bough/feature"
)

/*
Classifier is implemented by anything that assigns one of two classes to
a sample, such as a tree.Tree.
*/
type Classifier interface {
	Classify(feature.Sample) bool
}

/*
Outcome is the result of classifying a single sample.
*/
type Outcome struct {
	// Index is the position of the sample in the evaluated dataset.
	Index     int
	Expected  bool
	Predicted bool
}

// Successful returns whether the predicted class matches the expected one.
func (o Outcome) Successful() bool {
	return o.Expected == o.Predicted
}

/*
Report holds the outcomes of an evaluation, in dataset order.
*/
type Report struct {
	Outcomes  []Outcome
	successes int
}

/*
Evaluate takes a classifier and a dataset and returns the report of
classifying every sample of the dataset and comparing the result with the
sample's label.
*/
func Evaluate(c Classifier, ds *dataset.Dataset) *Report {
	r := &Report{Outcomes: make([]Outcome, 0, ds.Count())}
	for i := 0; i < ds.Count(); i++ {
		s := ds.Sample(i)
		o := Outcome{Index: i, Expected: s.Label(), Predicted: c.Classify(s)}
		if o.Successful() {
			r.successes++
		}
		r.Outcomes = append(r.Outcomes, o)
	}
	return r
}

// Total returns the number of evaluated samples.
func (r *Report) Total() int {
	return len(r.Outcomes)
}

// Successes returns the number of samples classified correctly.
func (r *Report) Successes() int {
	return r.successes
}

// Failures returns the number of samples classified incorrectly.
func (r *Report) Failures() int {
	return len(r.Outcomes) - r.successes
}

/*
Rate returns the ratio of samples classified correctly. It is NaN for an
empty evaluation.
*/
func (r *Report) Rate() float64 {
	if len(r.Outcomes) == 0 {
		return math.NaN()
	}
	return float64(r.successes) / float64(len(r.Outcomes))
}

func (r *Report) String() string {
	return fmt.Sprintf("%d successes, %d failures, %f success rate", r.Successes(), r.Failures(), r.Rate())
}

/*
Write renders the report as text tables on the given writer: a table with
one row per outcome when verbose is true, followed by a summary with the
successes, failures and success rate.
*/
func (r *Report) Write(w io.Writer, verbose bool) error {
	if verbose {
		t := table.NewWriter()
		t.SetTitle("INSTANCES")
		t.AppendHeader(table.Row{"Instance", "Expected", "Predicted", "Classification"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Name: "Instance", Align: text.AlignRight},
			{Name: "Classification", Align: text.AlignCenter},
		})
		for _, o := range r.Outcomes {
			result := "failed"
			if o.Successful() {
				result = "successful"
			}
			t.AppendRow(table.Row{o.Index, o.Expected, o.Predicted, result})
		}
		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return fmt.Errorf("writing instances: %v", err)
		}
	}
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Success", "Failed", "Rate"})
	t.AppendRow(table.Row{r.Successes(), r.Failures(), fmt.Sprintf("%f", r.Rate())})
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("writing summary: %v", err)
	}
	return nil
}
