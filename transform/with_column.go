package transform

import (
	sdf "github.com/getintently/safe-dataframe"
	"github.com/getintently/safe-dataframe/dataframe"
)

// ColumnOperation computes one new cell value from a row
type ColumnOperation func(rec dataframe.Record) (interface{}, error)

type withColumn struct {
	column string
	fn     ColumnOperation
}

// Name returns the name of this transform
func (t *withColumn) Name() string {
	return "with_column(" + t.column + ")"
}

// Apply appends a column computed per row
func (t *withColumn) Apply(df *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	values := make([]interface{}, df.NumRows())
	for i := 0; i < df.NumRows(); i++ {
		rec, err := df.Record(i)
		if err != nil {
			return nil, err
		}
		values[i], err = t.fn(rec)
		if err != nil {
			return nil, err
		}
	}
	return df.WithColumn(t.column, values)
}

// WithColumn appends a new column whose values are computed row by row
func WithColumn(column string, fn ColumnOperation) sdf.Transform {
	return &withColumn{column: column, fn: fn}
}
