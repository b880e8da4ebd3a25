package table

import (
	"errors"
	"fmt"
	"math"

	"github.com/drakos74/census/internal/model"
	"github.com/go-gota/gota/dataframe"
)

var (
	// ErrNotNumeric is returned when a value cannot be read as a number.
	ErrNotNumeric = errors.New("not numeric")
	// ErrNotEncoded is returned when a categorical column is used as a label before encoding.
	ErrNotEncoded = errors.New("not encoded")
)

// Table is a record table together with the schema describing its columns.
type Table struct {
	Schema model.Schema
	frame  dataframe.DataFrame
}

// New wraps the given frame with its schema.
func New(schema model.Schema, frame dataframe.DataFrame) (Table, error) {
	if frame.Err != nil {
		return Table{}, frame.Err
	}
	if frame.Ncol() != schema.Len() {
		return Table{}, fmt.Errorf("frame has %d columns but schema expects %d", frame.Ncol(), schema.Len())
	}
	return Table{
		Schema: schema,
		frame:  frame,
	}, nil
}

// Rows returns the number of records.
func (t Table) Rows() int {
	return t.frame.Nrow()
}

// Shape returns the number of records and columns.
func (t Table) Shape() (int, int) {
	return t.frame.Dims()
}

// Strings returns the raw values of the column.
func (t Table) Strings(c model.Column) ([]string, error) {
	if err := t.Schema.Check(c); err != nil {
		return nil, err
	}
	return t.frame.Col(string(c)).Records(), nil
}

// Floats returns the values of the column as numbers.
func (t Table) Floats(c model.Column) ([]float64, error) {
	if err := t.Schema.Check(c); err != nil {
		return nil, err
	}
	values := t.frame.Col(string(c)).Float()
	for i, v := range values {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("column '%s' row %d: %w", c, i, ErrNotNumeric)
		}
	}
	return values, nil
}

// Distinct returns the number of distinct values in the column.
func (t Table) Distinct(c model.Column) (int, error) {
	values, err := t.Strings(c)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]struct{})
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen), nil
}

func (t Table) with(frame dataframe.DataFrame) (Table, error) {
	if frame.Err != nil {
		return Table{}, frame.Err
	}
	return Table{
		Schema: t.Schema,
		frame:  frame,
	}, nil
}
