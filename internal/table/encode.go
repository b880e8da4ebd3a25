package table

import (
	"sort"

	"github.com/drakos74/census/internal/model"
	"github.com/go-gota/gota/series"
	"github.com/rs/zerolog/log"
)

// Encoding maps the distinct values of a categorical column to dense integer codes.
type Encoding struct {
	Column model.Column
	values []string
	codes  map[string]int
}

// NewEncoding learns the codes of the observed values in lexicographic order.
func NewEncoding(c model.Column, observed []string) Encoding {
	codes := make(map[string]int)
	for _, v := range observed {
		codes[v] = 0
	}
	values := make([]string, 0, len(codes))
	for v := range codes {
		values = append(values, v)
	}
	sort.Strings(values)
	for i, v := range values {
		codes[v] = i
	}
	return Encoding{
		Column: c,
		values: values,
		codes:  codes,
	}
}

// Len is the number of distinct values.
func (e Encoding) Len() int {
	return len(e.values)
}

// Code returns the code of the value.
func (e Encoding) Code(v string) (int, bool) {
	code, ok := e.codes[v]
	return code, ok
}

// Value returns the value behind the code.
func (e Encoding) Value(code int) (string, bool) {
	if code < 0 || code >= len(e.values) {
		return "", false
	}
	return e.values[code], true
}

// Values returns the distinct values ordered by code.
func (e Encoding) Values() []string {
	values := make([]string, len(e.values))
	copy(values, e.values)
	return values
}

// Encode replaces the values of each given column with its code.
// Every column gets its own encoding.
func Encode(t Table, columns []model.Column) (Table, map[model.Column]Encoding, error) {
	if err := t.Schema.Check(columns...); err != nil {
		return Table{}, nil, err
	}
	encodings := make(map[model.Column]Encoding, len(columns))
	for _, c := range model.Sorted(columns) {
		raw, err := t.Strings(c)
		if err != nil {
			return Table{}, nil, err
		}
		enc := NewEncoding(c, raw)
		codes := make([]int, len(raw))
		for i, v := range raw {
			codes[i], _ = enc.Code(v)
		}
		t, err = t.with(t.frame.Mutate(series.New(codes, series.Int, string(c))))
		if err != nil {
			return Table{}, nil, err
		}
		encodings[c] = enc
		log.Debug().Str("column", string(c)).Int("values", enc.Len()).Msg("encoded column")
	}
	return t, encodings, nil
}
