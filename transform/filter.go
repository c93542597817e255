package transform

import (
	sdf "github.com/getintently/safe-dataframe"
	"github.com/getintently/safe-dataframe/dataframe"
)

// FilterOperation decides whether a row should be retained
type FilterOperation func(rec dataframe.Record) (bool, error)

type filter struct {
	fn FilterOperation
}

// Name returns the name of this transform
func (t *filter) Name() string {
	return "filter"
}

// Apply keeps only the rows for which the predicate returns true
func (t *filter) Apply(df *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	return df.FilterRows(t.fn)
}

// Filter filters rows out of a table, creating a new one
func Filter(fn FilterOperation) sdf.Transform {
	return &filter{fn: fn}
}
