package table

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/drakos74/census/internal/model"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/rs/zerolog/log"
)

// Load reads the header-less csv file at the given path.
func Load(path string, schema model.Schema) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("could not open file '%s': %w", path, err)
	}
	defer f.Close()
	t, err := Read(f, schema)
	if err != nil {
		return Table{}, fmt.Errorf("could not load '%s': %w", path, err)
	}
	rows, cols := t.Shape()
	log.Debug().
		Str("file", path).
		Int("rows", rows).
		Int("columns", cols).
		Msg("loaded dataset")
	return t, nil
}

// Read parses header-less csv records in schema order.
// Categorical values are kept verbatim, numeric values are trimmed and parsed.
func Read(r io.Reader, schema model.Schema) (Table, error) {
	frame := dataframe.ReadCSV(r,
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{}),
	)
	if frame.Err != nil {
		return Table{}, fmt.Errorf("could not parse records: %w", frame.Err)
	}
	if frame.Ncol() != schema.Len() {
		return Table{}, fmt.Errorf("records have %d fields but schema expects %d", frame.Ncol(), schema.Len())
	}
	if err := frame.SetNames(model.Names(schema.Columns())...); err != nil {
		return Table{}, fmt.Errorf("could not name columns: %w", err)
	}
	t, err := New(schema, frame)
	if err != nil {
		return Table{}, err
	}
	for _, c := range schema.Of(model.Numeric) {
		t, err = parseNumeric(t, c)
		if err != nil {
			return Table{}, err
		}
	}
	return t, nil
}

func parseNumeric(t Table, c model.Column) (Table, error) {
	raw, err := t.Strings(c)
	if err != nil {
		return Table{}, err
	}
	values := make([]float64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Table{}, fmt.Errorf("column '%s' row %d value '%s': %w", c, i, s, ErrNotNumeric)
		}
		values[i] = v
	}
	return t.with(t.frame.Mutate(series.New(values, series.Float, string(c))))
}
