package transform_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	sdf "github.com/getintently/safe-dataframe"
	"github.com/getintently/safe-dataframe/dataframe"
	"github.com/getintently/safe-dataframe/errors"
	"github.com/getintently/safe-dataframe/schema"
	"github.com/getintently/safe-dataframe/transform"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestIdentity(t *testing.T) {
	df := createNumberedFrame(t)
	out, err := transform.Identity().Apply(df)
	require.Nil(t, err)
	require.Same(t, df, out)
}

func TestFromFunctionBindsArgs(t *testing.T) {
	threshold := transform.FromFunction(func(df *dataframe.DataFrame, args ...interface{}) (*dataframe.DataFrame, error) {
		limit := args[0].(int)
		return df.FilterRows(func(rec dataframe.Record) (bool, error) {
			return rec["v"].(int) >= limit, nil
		})
	}, 2)

	out, err := threshold.Apply(createNumberedFrame(t))
	require.Nil(t, err)
	require.Equal(t, 2, out.NumRows())
}

func TestFromFunctionNamesAreUnique(t *testing.T) {
	fn := func(df *dataframe.DataFrame, args ...interface{}) (*dataframe.DataFrame, error) {
		return df, nil
	}
	a := transform.FromFunction(fn)
	b := transform.FromFunction(fn)
	require.NotEqual(t, a.Name(), b.Name())
	require.Equal(t, "readable", a.Named("readable").Name())
}

func TestGroupedPipeline(t *testing.T) {
	df, err := dataframe.FromColumns([]string{"g", "v"}, map[string][]interface{}{
		"g": {"a", "b", "a"},
		"v": {1, 2, 3},
	})
	require.Nil(t, err)

	// tag every row with the size of its group
	groupSize := transform.FromFunction(func(df *dataframe.DataFrame, args ...interface{}) (*dataframe.DataFrame, error) {
		size := df.NumRows()
		values := make([]interface{}, size)
		for i := range values {
			values[i] = size
		}
		return df.WithColumn("n", values)
	}).Named("group_size")

	out, err := transform.NewGroupedPipeline("g", groupSize).Apply(df)
	require.Nil(t, err)
	require.Equal(t, 3, out.NumRows())
	// groups reassemble in first-encounter order: a rows first, then b
	groups, err := out.Column("g")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"a", "a", "b"}, groups)
	sizes, err := out.Column("n")
	require.Nil(t, err)
	require.Equal(t, []interface{}{2, 2, 1}, sizes)
}

func TestGroupedPipelineEmptyInput(t *testing.T) {
	df := dataframe.New("g", "v")
	out, err := transform.NewGroupedPipeline("g", transform.Identity()).Apply(df)
	require.Nil(t, err)
	require.Same(t, df, out)
}

func TestGroupedPipelineMissingGroupColumn(t *testing.T) {
	_, err := transform.NewGroupedPipeline("missing", transform.Identity()).Apply(createNumberedFrame(t))
	require.IsType(t, errors.MissingColumnError{}, err)
}

func TestConcatRows(t *testing.T) {
	ones := transform.Filter(func(rec dataframe.Record) (bool, error) {
		return rec["v"].(int) == 1, nil
	})
	threes := transform.Filter(func(rec dataframe.Record) (bool, error) {
		return rec["v"].(int) == 3, nil
	})

	out, err := transform.NewConcat(ones, threes).Apply(createNumberedFrame(t))
	require.Nil(t, err)
	values, err := out.Column("v")
	require.Nil(t, err)
	require.Equal(t, []interface{}{1, 3}, values)
}

func TestConcatColumnsAxis(t *testing.T) {
	df, err := dataframe.FromColumns([]string{"a", "b"}, map[string][]interface{}{
		"a": {1, 2},
		"b": {"x", "y"},
	})
	require.Nil(t, err)

	selectColumn := func(name string) sdf.Transform {
		return transform.FromFunction(func(df *dataframe.DataFrame, args ...interface{}) (*dataframe.DataFrame, error) {
			return df.Select(name)
		}).Named("select_" + name)
	}

	out, err := transform.NewConcat(selectColumn("b"), selectColumn("a")).
		WithAxis(dataframe.AxisColumns).
		Apply(df)
	require.Nil(t, err)
	require.Equal(t, []string{"b", "a"}, out.ColumnNames())
	require.Equal(t, 2, out.NumRows())
}

func TestConcatNothing(t *testing.T) {
	_, err := transform.NewConcat().Apply(createNumberedFrame(t))
	require.NotNil(t, err)
}

func TestWithColumn(t *testing.T) {
	doubled := transform.WithColumn("double", func(rec dataframe.Record) (interface{}, error) {
		return rec["v"].(int) * 2, nil
	})
	out, err := doubled.Apply(createNumberedFrame(t))
	require.Nil(t, err)
	values, err := out.Column("double")
	require.Nil(t, err)
	require.Equal(t, []interface{}{2, 4, 6}, values)
}

func TestRenameAndRemoveColumns(t *testing.T) {
	df, err := dataframe.FromColumns([]string{"a", "b"}, map[string][]interface{}{
		"a": {1},
		"b": {2},
	})
	require.Nil(t, err)

	p := transform.NewPipeline(
		transform.RenameColumns(map[string]string{"a": "kept"}),
		transform.RemoveColumns("b"),
	)
	out, err := p.Apply(df)
	require.Nil(t, err)
	require.Equal(t, []string{"kept"}, out.ColumnNames())
}

func TestFillNilMissingColumn(t *testing.T) {
	_, err := transform.FillNil("missing", 0).Apply(createNumberedFrame(t))
	require.IsType(t, errors.MissingColumnError{}, err)
}

func TestContainerInjectsColumnSet(t *testing.T) {
	cols, err := sdf.NewColumnSet(func(names map[string]string) (*schema.Schema, error) {
		s := schema.CreateSchema()
		if _, err := s.CreateColumn(names["value"], &schema.Int64ColumnType{}, false); err != nil {
			return nil, err
		}
		return s, nil
	}, sdf.Field{Name: "value", Column: "v"})
	require.Nil(t, err)

	container := transform.NewContainer(cols)
	container.Register("truncate", func(cols *sdf.ColumnSet, args ...interface{}) (sdf.Transform, error) {
		return transform.FromFunction(func(df *dataframe.DataFrame, _ ...interface{}) (*dataframe.DataFrame, error) {
			return df.Select(cols.Names()...)
		}).Named("truncate"), nil
	})

	df, err := dataframe.FromColumns([]string{"v", "extra"}, map[string][]interface{}{
		"v":     {1, 2},
		"extra": {true, false},
	})
	require.Nil(t, err)

	truncate, err := container.Build("truncate")
	require.Nil(t, err)
	out, err := truncate.Apply(df)
	require.Nil(t, err)
	require.Equal(t, []string{"v"}, out.ColumnNames())

	_, err = container.Build("unknown")
	require.IsType(t, errors.UnknownFactoryError{}, err)
	require.Same(t, cols, container.Columns())
}
