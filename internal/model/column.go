package model

import "sort"

// Column defines a named field of the census record.
type Column string

const (
	// Age is the age of the individual
	Age Column = "age"
	// WorkClass is the employment sector
	WorkClass Column = "workclass"
	// FnlWgt is the census sampling weight
	FnlWgt Column = "fnlwgt"
	// Education is the highest education level
	Education Column = "education"
	// EducationYears is the education level as a number of years
	EducationYears Column = "education_years"
	// MaritalStatus is the marital status
	MaritalStatus Column = "marital_status"
	// Occupation is the occupation category
	Occupation Column = "occupation"
	// Relationship is the role within the household
	Relationship Column = "relationship"
	// Race is the self reported race
	Race Column = "race"
	// Sex is the self reported sex
	Sex Column = "sex"
	// CapGain is the capital gain
	CapGain Column = "capgain"
	// CapLoss is the capital loss
	CapLoss Column = "caploss"
	// HrsWeekly is the number of hours worked per week
	HrsWeekly Column = "hrsweekly"
	// NativeCountry is the country of origin
	NativeCountry Column = "native_country"
	// Target is the income bracket
	Target Column = "target"
)

// Missing is the token the source format uses for an unknown value.
const Missing = "?"

// Kind is the value domain of a column.
type Kind int

const (
	// Numeric columns hold integer or continuous values.
	Numeric Kind = iota + 1
	// Categorical columns hold string labels from a finite set.
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	}
	return "unknown"
}

// Columns converts plain names into columns.
func Columns(names ...string) []Column {
	cc := make([]Column, len(names))
	for i, n := range names {
		cc[i] = Column(n)
	}
	return cc
}

// Names converts the columns back into plain names.
func Names(cc []Column) []string {
	names := make([]string, len(cc))
	for i, c := range cc {
		names[i] = string(c)
	}
	return names
}

// Sorted returns a sorted copy of the given columns.
func Sorted(cc []Column) []Column {
	sorted := make([]Column, len(cc))
	copy(sorted, cc)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	return sorted
}

// Without returns the columns except the excluded one, keeping the order.
func Without(cc []Column, exclude Column) []Column {
	out := make([]Column, 0, len(cc))
	for _, c := range cc {
		if c != exclude {
			out = append(out, c)
		}
	}
	return out
}
