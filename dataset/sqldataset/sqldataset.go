/*
Package sqldataset reads datasets from and writes them to SQL database
tables.

A table holds one sample per row, with one numeric column per feature of
the schema, named after it, plus a label column. Label columns may be
numeric (non-zero values are positive), boolean, or text parsed with a
dataset.LabelRule.
*/
package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/bough/dataset"
	"github.com/pbanos/bough/feature"
)

/*
MaxSampleInsertionsPerStatement is the maximum number of samples that are
added with a single insert command by Write. Writing more will result in
making more insertion commands.
*/
const MaxSampleInsertionsPerStatement = 10

/*
Adapter is an interface providing the database specifics needed to read
and write datasets.
*/
type Adapter interface {
	// DB returns the database the adapter works on.
	DB() *sql.DB
	// QuoteIdentifier quotes a table or column name for use in a statement.
	QuoteIdentifier(string) string
	// Placeholder returns the parameter placeholder for the i-th (1-based)
	// argument of a statement.
	Placeholder(i int) string
	// Close releases the database.
	Close() error
}

/*
Table names the table holding a dataset and its label column.
*/
type Table struct {
	Name        string
	LabelColumn string
}

/*
Read takes a context, an adapter, a schema, a table and a label rule and
returns the dataset made of the table's rows or an error.
*/
func Read(ctx context.Context, a Adapter, schema *feature.Schema, t Table, rule dataset.LabelRule) (*dataset.Dataset, error) {
	samples := []*dataset.Sample{}
	err := ReadBySample(ctx, a, schema, t, rule, func(_ int, s *dataset.Sample) (bool, error) {
		samples = append(samples, s)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dataset.New(schema, samples)
}

/*
ReadBySample takes a context, an adapter, a schema, a table, a label rule
and a lambda function on an integer and a sample that returns a boolean
value. It queries the table for the columns of the schema's features and
the label column and for each row it calls the lambda function with the
sample read from it and its index. If the lambda function returns true, it
will continue processing the next row, otherwise it will stop. An error is
returned if the query fails or a row holds a value that cannot be
converted.
*/
func ReadBySample(ctx context.Context, a Adapter, schema *feature.Schema, t Table, rule dataset.LabelRule, lambda func(int, *dataset.Sample) (bool, error)) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	columns := make([]string, 0, schema.Len()+1)
	for _, name := range schema.Names() {
		columns = append(columns, a.QuoteIdentifier(name))
	}
	columns = append(columns, a.QuoteIdentifier(t.LabelColumn))
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), a.QuoteIdentifier(t.Name))
	rows, err := a.DB().QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("querying table %s: %v", t.Name, err)
	}
	defer rows.Close()
	raw := make([]interface{}, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range raw {
		dest[i] = &raw[i]
	}
	names := schema.Names()
	for j := 0; rows.Next(); j++ {
		err = rows.Scan(dest...)
		if err != nil {
			return fmt.Errorf("scanning row %d: %v", j+1, err)
		}
		values := make([]float64, len(names))
		for i, name := range names {
			values[i], err = dataset.NumericValue(raw[i])
			if err != nil {
				return fmt.Errorf("parsing row %d: column %s: %v", j+1, name, err)
			}
		}
		label, err := rule.ParseValue(raw[len(raw)-1])
		if err != nil {
			return fmt.Errorf("parsing row %d: column %s: %v", j+1, t.LabelColumn, err)
		}
		ok, err := lambda(j, dataset.NewSample(values, label))
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	err = rows.Err()
	if err != nil {
		return fmt.Errorf("reading table %s: %v", t.Name, err)
	}
	return nil
}

/*
Write takes a context, an adapter, a dataset and a table, ensures the table
exists with a REAL column per feature and an INTEGER label column, and
inserts the dataset's samples in it, with labels stored as 1 or 0. It
returns the number of samples inserted and an error if not all of them
could be.
*/
func Write(ctx context.Context, a Adapter, ds *dataset.Dataset, t Table) (int, error) {
	columns := make([]string, 0, ds.Schema().Len()+1)
	for _, name := range ds.Schema().Names() {
		columns = append(columns, a.QuoteIdentifier(name))
	}
	columns = append(columns, a.QuoteIdentifier(t.LabelColumn))
	err := createTable(ctx, a, t, columns)
	if err != nil {
		return 0, err
	}
	samples := ds.Samples()
	n := 0
	for n < len(samples) {
		end := n + MaxSampleInsertionsPerStatement
		if end > len(samples) {
			end = len(samples)
		}
		err = insert(ctx, a, t, columns, samples[n:end])
		if err != nil {
			return n, fmt.Errorf("inserting samples %d to %d: %v", n+1, end, err)
		}
		n = end
	}
	return n, nil
}

func createTable(ctx context.Context, a Adapter, t Table, columns []string) error {
	var stmt bytes.Buffer
	stmt.WriteString("CREATE TABLE IF NOT EXISTS ")
	stmt.WriteString(a.QuoteIdentifier(t.Name))
	stmt.WriteString("(")
	for _, c := range columns[:len(columns)-1] {
		stmt.WriteString(c)
		stmt.WriteString(" REAL NOT NULL, ")
	}
	stmt.WriteString(columns[len(columns)-1])
	stmt.WriteString(" INTEGER NOT NULL)")
	_, err := a.DB().ExecContext(ctx, stmt.String())
	if err != nil {
		return fmt.Errorf("ensuring table %s exists: %v", t.Name, err)
	}
	return nil
}

func insert(ctx context.Context, a Adapter, t Table, columns []string, samples []*dataset.Sample) error {
	var stmt bytes.Buffer
	args := make([]interface{}, 0, len(samples)*len(columns))
	stmt.WriteString("INSERT INTO ")
	stmt.WriteString(a.QuoteIdentifier(t.Name))
	stmt.WriteString(" (")
	stmt.WriteString(strings.Join(columns, ", "))
	stmt.WriteString(") VALUES ")
	for i, s := range samples {
		if i > 0 {
			stmt.WriteString(", ")
		}
		stmt.WriteString("(")
		for _, v := range s.Values() {
			args = append(args, v)
			stmt.WriteString(a.Placeholder(len(args)))
			stmt.WriteString(", ")
		}
		label := 0
		if s.Label() {
			label = 1
		}
		args = append(args, label)
		stmt.WriteString(a.Placeholder(len(args)))
		stmt.WriteString(")")
	}
	_, err := a.DB().ExecContext(ctx, stmt.String(), args...)
	return err
}
