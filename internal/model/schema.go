package model

import (
	"errors"
	"fmt"
)

// ErrUnknownColumn is returned when a column is not part of the schema.
var ErrUnknownColumn = errors.New("unknown column")

// Field is a column together with its value domain.
type Field struct {
	Column Column `json:"column"`
	Kind   Kind   `json:"kind"`
}

// Schema is the fixed, ordered list of fields of a record table.
type Schema struct {
	Fields []Field `json:"fields"`
	index  map[Column]int
}

// NewSchema creates a schema for the given fields in file order.
func NewSchema(fields ...Field) Schema {
	index := make(map[Column]int, len(fields))
	for i, f := range fields {
		index[f.Column] = i
	}
	return Schema{
		Fields: fields,
		index:  index,
	}
}

// Adult is the schema of the UCI adult census dataset.
func Adult() Schema {
	return NewSchema(
		Field{Column: Age, Kind: Numeric},
		Field{Column: WorkClass, Kind: Categorical},
		Field{Column: FnlWgt, Kind: Numeric},
		Field{Column: Education, Kind: Categorical},
		Field{Column: EducationYears, Kind: Numeric},
		Field{Column: MaritalStatus, Kind: Categorical},
		Field{Column: Occupation, Kind: Categorical},
		Field{Column: Relationship, Kind: Categorical},
		Field{Column: Race, Kind: Categorical},
		Field{Column: Sex, Kind: Categorical},
		Field{Column: CapGain, Kind: Numeric},
		Field{Column: CapLoss, Kind: Numeric},
		Field{Column: HrsWeekly, Kind: Numeric},
		Field{Column: NativeCountry, Kind: Categorical},
		Field{Column: Target, Kind: Categorical},
	)
}

// Len returns the number of fields.
func (s Schema) Len() int {
	return len(s.Fields)
}

// Columns returns the column names in file order.
func (s Schema) Columns() []Column {
	cc := make([]Column, len(s.Fields))
	for i, f := range s.Fields {
		cc[i] = f.Column
	}
	return cc
}

// Index returns the position of the column.
func (s Schema) Index(c Column) (int, bool) {
	i, ok := s.index[c]
	return i, ok
}

// Kind returns the kind of the column.
func (s Schema) Kind(c Column) (Kind, error) {
	i, ok := s.index[c]
	if !ok {
		return 0, fmt.Errorf("'%s': %w", c, ErrUnknownColumn)
	}
	return s.Fields[i].Kind, nil
}

// Of returns the columns of the given kind in file order.
func (s Schema) Of(kind Kind) []Column {
	cc := make([]Column, 0)
	for _, f := range s.Fields {
		if f.Kind == kind {
			cc = append(cc, f.Column)
		}
	}
	return cc
}

// Check makes sure all columns are part of the schema.
func (s Schema) Check(cc ...Column) error {
	for _, c := range cc {
		if _, ok := s.index[c]; !ok {
			return fmt.Errorf("'%s': %w", c, ErrUnknownColumn)
		}
	}
	return nil
}
