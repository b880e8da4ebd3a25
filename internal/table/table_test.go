package table

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drakos74/census/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `39, State-gov, 77516, Bachelors, 13, Never-married, Adm-clerical, Not-in-family, White, Male, 2174, 0, 40, United-States, <=50K
50, Self-emp-not-inc, 83311, Bachelors, 13, Married-civ-spouse, Exec-managerial, Husband, White, Male, 0, 0, 13, United-States, <=50K
38, Private, 215646, HS-grad, 9, Divorced, Handlers-cleaners, Not-in-family, White, Male, 0, 0, 40, United-States, <=50K
53, ?, 234721, 11th, 7, Married-civ-spouse, ?, Husband, Black, Male, 0, 0, 40, United-States, <=50K
28, Private, 338409, Bachelors, 13, Married-civ-spouse, Prof-specialty, Wife, Black, Female, 0, 0, 40, Cuba, <=50K
37, Private, 284582, Masters, 14, Married-civ-spouse, Exec-managerial, Wife, White, Female, 0, 0, 40, United-States, <=50K
49, Private, 160187, 9th, 5, Married-spouse-absent, Other-service, Not-in-family, Black, Female, 0, 0, 16, Jamaica, <=50K
52, Self-emp-not-inc, 209642, HS-grad, 9, Married-civ-spouse, Exec-managerial, Husband, White, Male, 0, 0, 45, United-States, >50K
31, ?, 45781, Masters, 14, Never-married, ?, Not-in-family, White, Female, 14084, 0, 50, United-States, >50K
42, Private, 159449, Bachelors, 13, Married-civ-spouse, Exec-managerial, Husband, White, Male, 5178, 0, 40, ?, >50K
`

func categorical() []model.Column {
	return model.Adult().Of(model.Categorical)
}

func load(t *testing.T, data string) Table {
	tt, err := Read(strings.NewReader(data), model.Adult())
	require.NoError(t, err)
	return tt
}

func TestRead(t *testing.T) {
	tt := load(t, sample)

	rows, cols := tt.Shape()
	assert.Equal(t, 10, rows)
	assert.Equal(t, 15, cols)

	ages, err := tt.Floats(model.Age)
	require.NoError(t, err)
	assert.Equal(t, 39.0, ages[0])

	gains, err := tt.Floats(model.CapGain)
	require.NoError(t, err)
	assert.Equal(t, 14084.0, gains[8])

	classes, err := tt.Strings(model.WorkClass)
	require.NoError(t, err)
	assert.Equal(t, " State-gov", classes[0])

	_, err = tt.Strings(model.Column("salary"))
	assert.ErrorIs(t, err, model.ErrUnknownColumn)
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "adult.data")
	require.NoError(t, os.WriteFile(fn, []byte(sample+"\n"), 0644))

	tt, err := Load(fn, model.Adult())
	require.NoError(t, err)
	assert.Equal(t, 10, tt.Rows())

	_, err = Load(filepath.Join(t.TempDir(), "missing.data"), model.Adult())
	assert.Error(t, err)
}

func TestRead_Errors(t *testing.T) {
	_, err := Read(strings.NewReader("x, State-gov, 77516, Bachelors, 13, Never-married, Adm-clerical, Not-in-family, White, Male, 2174, 0, 40, United-States, <=50K\n"), model.Adult())
	assert.ErrorIs(t, err, ErrNotNumeric)

	_, err = Read(strings.NewReader("39, State-gov, 77516\n"), model.Adult())
	assert.Error(t, err)

	for _, v := range []string{"NaN", "Inf", "-Inf", "+Inf"} {
		_, err = Read(strings.NewReader("39, State-gov, "+v+", Bachelors, 13, Never-married, Adm-clerical, Not-in-family, White, Male, 2174, 0, 40, United-States, <=50K\n"), model.Adult())
		assert.ErrorIs(t, err, ErrNotNumeric, v)
	}
}

func TestClean(t *testing.T) {
	tt := load(t, sample)

	cleaned, cleaning, err := Clean(tt, categorical())
	require.NoError(t, err)

	assert.Equal(t, 10, cleaning.Rows)
	assert.Equal(t, 2, cleaning.Missing[model.WorkClass])
	assert.Equal(t, 2, cleaning.Missing[model.Occupation])
	assert.Equal(t, 1, cleaning.Missing[model.NativeCountry])
	assert.Equal(t, 0, cleaning.Missing[model.Sex])

	// sorted order of the columns with missing values
	assert.Equal(t, []model.Column{model.NativeCountry, model.Occupation, model.WorkClass}, cleaning.Checked())
	assert.Equal(t, []Step{
		{Column: model.NativeCountry, Removed: 1, Rows: 9},
		{Column: model.Occupation, Removed: 2, Rows: 7},
		{Column: model.WorkClass, Removed: 0, Rows: 7},
	}, cleaning.Steps)
	assert.Equal(t, 7, cleaned.Rows())

	for _, c := range cleaning.Checked() {
		values, err := cleaned.Strings(c)
		require.NoError(t, err)
		assert.NotContains(t, values, model.Missing)
	}

	classes, err := cleaned.Strings(model.WorkClass)
	require.NoError(t, err)
	assert.Equal(t, "State-gov", classes[0])

	// the input table is left untouched
	assert.Equal(t, 10, tt.Rows())
}

func TestClean_Monotonic(t *testing.T) {
	_, cleaning, err := Clean(load(t, sample), categorical())
	require.NoError(t, err)
	rows := cleaning.Rows
	for _, step := range cleaning.Steps {
		assert.LessOrEqual(t, step.Rows, rows)
		rows = step.Rows
	}
}

func TestClean_WorkClassOnly(t *testing.T) {
	tt := load(t, sample)
	cleaned, cleaning, err := Clean(tt, []model.Column{model.WorkClass})
	require.NoError(t, err)
	assert.Equal(t, 8, cleaned.Rows())
	assert.Equal(t, []model.Column{model.WorkClass}, cleaning.Checked())

	raw, err := tt.Strings(model.WorkClass)
	require.NoError(t, err)
	distinct := make(map[string]bool)
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != model.Missing {
			distinct[v] = true
		}
	}

	encoded, encodings, err := Encode(cleaned, []model.Column{model.WorkClass})
	require.NoError(t, err)
	assert.Equal(t, len(distinct), encodings[model.WorkClass].Len())

	codes, err := Labels(encoded, model.WorkClass)
	require.NoError(t, err)
	seen := make(map[int]bool)
	for _, c := range codes {
		seen[c] = true
	}
	assert.Equal(t, len(distinct), len(seen))
}

func TestClean_UnknownColumn(t *testing.T) {
	_, _, err := Clean(load(t, sample), []model.Column{"salary"})
	assert.ErrorIs(t, err, model.ErrUnknownColumn)
}

func TestEncode(t *testing.T) {
	cleaned, _, err := Clean(load(t, sample), categorical())
	require.NoError(t, err)

	encoded, encodings, err := Encode(cleaned, categorical())
	require.NoError(t, err)
	assert.Len(t, encodings, len(categorical()))

	for _, c := range categorical() {
		distinct, err := cleaned.Distinct(c)
		require.NoError(t, err)
		assert.Equal(t, distinct, encodings[c].Len(), "column %s", c)

		codes, err := Labels(encoded, c)
		require.NoError(t, err)
		raw, err := cleaned.Strings(c)
		require.NoError(t, err)
		for i, code := range codes {
			v, ok := encodings[c].Value(code)
			require.True(t, ok)
			assert.Equal(t, raw[i], v)
		}
	}

	sex := encodings[model.Sex]
	assert.Equal(t, []string{"Female", "Male"}, sex.Values())
	code, ok := sex.Code("Male")
	assert.True(t, ok)
	assert.Equal(t, 1, code)
	_, ok = sex.Value(2)
	assert.False(t, ok)
}

func TestFeatures(t *testing.T) {
	cleaned, _, err := Clean(load(t, sample), categorical())
	require.NoError(t, err)

	x, err := Features(cleaned, []model.Column{model.Age, model.HrsWeekly})
	require.NoError(t, err)
	assert.Len(t, x, 7)
	assert.Equal(t, []float64{39, 40}, x[0])

	_, err = Features(cleaned, []model.Column{model.Sex})
	assert.ErrorIs(t, err, ErrNotNumeric)

	_, err = Labels(cleaned, model.Sex)
	assert.ErrorIs(t, err, ErrNotEncoded)
}
