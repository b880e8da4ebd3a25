package table

import (
	"strings"

	"github.com/drakos74/census/internal/model"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/rs/zerolog/log"
)

// Step is the outcome of removing the missing values of one column.
type Step struct {
	Column  model.Column `json:"column"`
	Removed int          `json:"removed"`
	Rows    int          `json:"rows"`
}

// Cleaning summarises what Clean did to the table.
type Cleaning struct {
	Rows    int                  `json:"rows"`
	Missing map[model.Column]int `json:"missing"`
	Steps   []Step               `json:"steps"`
}

// Checked returns the columns that had missing values, in processing order.
func (c Cleaning) Checked() []model.Column {
	cc := make([]model.Column, len(c.Steps))
	for i, s := range c.Steps {
		cc[i] = s.Column
	}
	return cc
}

// Clean trims the given columns and drops every row holding the missing token in any of them.
// Columns are processed in sorted order and row removal is cumulative.
func Clean(t Table, columns []model.Column) (Table, Cleaning, error) {
	cleaning := Cleaning{
		Rows:    t.Rows(),
		Missing: make(map[model.Column]int),
		Steps:   make([]Step, 0),
	}
	if err := t.Schema.Check(columns...); err != nil {
		return Table{}, cleaning, err
	}
	sorted := model.Sorted(columns)

	checked := make([]model.Column, 0)
	for _, c := range sorted {
		var count int
		var err error
		t, count, err = strip(t, c)
		if err != nil {
			return Table{}, cleaning, err
		}
		cleaning.Missing[c] = count
		log.Debug().Str("column", string(c)).Int("missing", count).Msg("column has missing values")
		if count > 0 {
			checked = append(checked, c)
		}
	}

	for _, c := range checked {
		before := t.Rows()
		var err error
		t, err = dropMissing(t, c)
		if err != nil {
			return Table{}, cleaning, err
		}
		cleaning.Steps = append(cleaning.Steps, Step{
			Column:  c,
			Removed: before - t.Rows(),
			Rows:    t.Rows(),
		})
		log.Debug().Str("column", string(c)).Int("rows", t.Rows()).Msg("removed missing values")
	}

	return t, cleaning, nil
}

func strip(t Table, c model.Column) (Table, int, error) {
	raw, err := t.Strings(c)
	if err != nil {
		return Table{}, 0, err
	}
	values := make([]string, len(raw))
	count := 0
	for i, v := range raw {
		values[i] = strings.TrimSpace(v)
		if values[i] == model.Missing {
			count++
		}
	}
	stripped, err := t.with(t.frame.Mutate(series.New(values, series.String, string(c))))
	return stripped, count, err
}

func dropMissing(t Table, c model.Column) (Table, error) {
	if t.Rows() == 0 {
		return t, nil
	}
	return t.with(t.frame.Filter(dataframe.F{
		Colname:    string(c),
		Comparator: series.Neq,
		Comparando: model.Missing,
	}))
}
