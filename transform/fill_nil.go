package transform

import (
	sdf "github.com/getintently/safe-dataframe"
	"github.com/getintently/safe-dataframe/dataframe"
	"github.com/getintently/safe-dataframe/errors"
)

type fillNil struct {
	column string
	value  interface{}
}

// Name returns the name of this transform
func (t *fillNil) Name() string {
	return "fill_nil(" + t.column + ")"
}

// Apply replaces nil values in the column with the fill value
func (t *fillNil) Apply(df *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	if !df.HasColumn(t.column) {
		return nil, errors.MissingColumnError{Name: t.column}
	}
	return df.MapRows(func(rec dataframe.Record) (dataframe.Record, error) {
		if rec[t.column] == nil {
			rec[t.column] = t.value
		}
		return rec, nil
	})
}

// FillNil replaces missing values in one column with a constant
func FillNil(column string, value interface{}) sdf.Transform {
	return &fillNil{column: column, value: value}
}
