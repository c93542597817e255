package sdf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdf "github.com/getintently/safe-dataframe"
	"github.com/getintently/safe-dataframe/errors"
	"github.com/getintently/safe-dataframe/schema"
)

func buildTestSchema(names map[string]string) (*schema.Schema, error) {
	s := schema.CreateSchema()
	if _, err := s.CreateColumn(names["columnA"], &schema.StringColumnType{}, false); err != nil {
		return nil, err
	}
	if _, err := s.CreateColumn(names["columnB"], &schema.Int64ColumnType{}, false); err != nil {
		return nil, err
	}
	return s, nil
}

func createTestColumnSet(t *testing.T) *sdf.ColumnSet {
	cols, err := sdf.NewColumnSet(buildTestSchema,
		sdf.Field{Name: "columnA", Column: "Name A"},
		sdf.Field{Name: "columnB", Column: "Name B"},
	)
	require.Nil(t, err)
	return cols
}

func TestColumnSetDeclaration(t *testing.T) {
	cols := createTestColumnSet(t)
	require.Equal(t, []string{"columnA", "columnB"}, cols.Columns())
	require.Equal(t, []string{"Name A", "Name B"}, cols.Names())

	name, err := cols.Name("columnB")
	require.Nil(t, err)
	require.Equal(t, "Name B", name)

	_, err = cols.Name("columnC")
	require.IsType(t, errors.MissingFieldError{}, err)
}

func TestColumnSetRejectsNilBuilder(t *testing.T) {
	_, err := sdf.NewColumnSet(nil, sdf.Field{Name: "columnA", Column: "Name A"})
	require.IsType(t, errors.NoSchemaRuleError{}, err)
}

func TestColumnSetRejectsDuplicateFields(t *testing.T) {
	_, err := sdf.NewColumnSet(buildTestSchema,
		sdf.Field{Name: "columnA", Column: "Name A"},
		sdf.Field{Name: "columnA", Column: "Name B"},
	)
	require.IsType(t, errors.DuplicateFieldError{}, err)
}

func TestColumnSetSchemaComputedOnce(t *testing.T) {
	calls := 0
	cols, err := sdf.NewColumnSet(func(names map[string]string) (*schema.Schema, error) {
		calls++
		return buildTestSchema(names)
	}, sdf.Field{Name: "columnA", Column: "Name A"}, sdf.Field{Name: "columnB", Column: "Name B"})
	require.Nil(t, err)

	first, err := cols.DataSchema()
	require.Nil(t, err)
	second, err := cols.DataSchema()
	require.Nil(t, err)
	require.Same(t, first, second)
	require.Equal(t, 1, calls)

	// a derived instance recomputes
	_, err = cols.WithPrefix("p_").DataSchema()
	require.Nil(t, err)
	require.Equal(t, 2, calls)
}

func TestColumnSetWithPrefix(t *testing.T) {
	cols := createTestColumnSet(t)
	prefixed := cols.WithPrefix("left_")
	require.Equal(t, []string{"left_Name A", "left_Name B"}, prefixed.Names())
	// field names unchanged, receiver untouched
	require.Equal(t, []string{"columnA", "columnB"}, prefixed.Columns())
	require.Equal(t, []string{"Name A", "Name B"}, cols.Names())

	s, err := prefixed.DataSchema()
	require.Nil(t, err)
	require.True(t, s.HasColumn("left_Name A"))
}

func TestColumnSetDumpRoundTrip(t *testing.T) {
	cols := createTestColumnSet(t)
	restored, err := cols.WithNames(cols.DumpColumnNames())
	require.Nil(t, err)
	require.Equal(t, cols.Names(), restored.Names())
	require.Equal(t, cols.Columns(), restored.Columns())
}

func TestColumnSetJSONRoundTrip(t *testing.T) {
	cols := createTestColumnSet(t)
	data, err := cols.DumpJSON()
	require.Nil(t, err)
	require.JSONEq(t, `{"columnA":"Name A","columnB":"Name B"}`, string(data))

	restored, err := sdf.ColumnSetFromJSON(buildTestSchema, data)
	require.Nil(t, err)
	require.Equal(t, cols.Names(), restored.Names())
	require.Equal(t, cols.Columns(), restored.Columns())
}

func TestColumnSetDumpDict(t *testing.T) {
	cols := createTestColumnSet(t)
	dump, err := cols.DumpDict()
	require.Nil(t, err)
	require.Equal(t, "Name A", dump["columnA"])
	require.Equal(t, "Name B", dump["columnB"])
	require.Contains(t, dump, "data_schema")
}

func TestColumnSetTypes(t *testing.T) {
	cols := createTestColumnSet(t)
	types, err := cols.Types()
	require.Nil(t, err)
	require.IsType(t, &schema.StringColumnType{}, types["Name A"])
	require.IsType(t, &schema.Int64ColumnType{}, types["Name B"])
}

func TestColumnSetIntersection(t *testing.T) {
	cols := createTestColumnSet(t)
	common := cols.Intersection([]string{"Name B", "Unrelated"})
	require.Equal(t, []string{"Name B"}, common)
	require.Empty(t, cols.Intersection([]string{"Unrelated"}))
}
