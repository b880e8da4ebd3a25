package table

import (
	"fmt"
	"math"

	"github.com/drakos74/census/internal/model"
)

// Features builds the row-major feature matrix for the given columns.
func Features(t Table, columns []model.Column) ([][]float64, error) {
	cols := make([][]float64, len(columns))
	for j, c := range columns {
		values, err := t.Floats(c)
		if err != nil {
			return nil, err
		}
		cols[j] = values
	}
	x := make([][]float64, t.Rows())
	for i := range x {
		row := make([]float64, len(columns))
		for j := range columns {
			row[j] = cols[j][i]
		}
		x[i] = row
	}
	return x, nil
}

// Labels returns the codes of an encoded categorical column.
func Labels(t Table, c model.Column) ([]int, error) {
	values, err := t.Floats(c)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrNotEncoded)
	}
	y := make([]int, len(values))
	for i, v := range values {
		if v != math.Trunc(v) || v < 0 {
			return nil, fmt.Errorf("column '%s' row %d value %v: %w", c, i, v, ErrNotEncoded)
		}
		y[i] = int(v)
	}
	return y, nil
}
