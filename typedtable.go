package sdf

import (
	"github.com/getintently/safe-dataframe/dataframe"
	"github.com/getintently/safe-dataframe/errors"
	"github.com/getintently/safe-dataframe/logging"
)

// A TypedTable couples a DataFrame with exactly one ColumnSet. Unless
// construction is explicitly told otherwise, the table is validated
// against the ColumnSet's schema immediately, so holding a TypedTable is
// holding proof that the data satisfied its schema at construction time.
type TypedTable struct {
	df   *dataframe.DataFrame
	cols *ColumnSet
}

type tableConf struct {
	skipCheck bool
}

// TableOption configures TypedTable construction
type TableOption func(*tableConf)

// SkipCheck disables validation at construction. This is an explicit,
// logged escape hatch: the table is treated as pre-validated with no proof
// and a warning is emitted.
func SkipCheck() TableOption {
	return func(conf *tableConf) {
		conf.skipCheck = true
	}
}

// NewTypedTable constructs a TypedTable, validating df against cols unless
// SkipCheck is supplied. Validation failures propagate unmodified.
func NewTypedTable(df *dataframe.DataFrame, cols *ColumnSet, opts ...TableOption) (*TypedTable, error) {
	if cols == nil {
		return nil, errors.MissingColumnSetError{}
	}
	var conf tableConf
	for _, opt := range opts {
		opt(&conf)
	}
	if conf.skipCheck {
		logging.Warnf("data check skipped for columns %v", cols.Columns())
	} else if err := cols.ValidateData(df); err != nil {
		return nil, err
	}
	return &TypedTable{df: df, cols: cols}, nil
}

// FromDataFrame constructs a TypedTable, first applying an optional
// Transform to df
func FromDataFrame(df *dataframe.DataFrame, cols *ColumnSet, transform Transform, opts ...TableOption) (*TypedTable, error) {
	if transform != nil {
		transformed, err := transform.Apply(df)
		if err != nil {
			return nil, err
		}
		df = transformed
	}
	return NewTypedTable(df, cols, opts...)
}

// Data returns the underlying DataFrame
func (t *TypedTable) Data() *dataframe.DataFrame {
	return t.df
}

// Columns returns the owning ColumnSet
func (t *TypedTable) Columns() *ColumnSet {
	return t.cols
}

// C is a shortcut for Columns
func (t *TypedTable) C() *ColumnSet {
	return t.cols
}

// NewData returns a TypedTable with the same ColumnSet bound to a
// different DataFrame
func (t *TypedTable) NewData(df *dataframe.DataFrame) (*TypedTable, error) {
	return FromDataFrame(df, t.cols, nil)
}

// Transform applies a Transform to the underlying DataFrame and re-wraps
// the result with the same ColumnSet
func (t *TypedTable) Transform(transform Transform) (*TypedTable, error) {
	return FromDataFrame(t.df, t.cols, transform)
}

// PrefixColumns renames every physical column of the underlying DataFrame
// by prepending prefix, derives a prefixed ColumnSet, and returns a new
// TypedTable wrapping both. The receiver is untouched.
func (t *TypedTable) PrefixColumns(prefix string) (*TypedTable, error) {
	mapping := make(map[string]string)
	for _, name := range t.df.ColumnNames() {
		mapping[name] = prefix + name
	}
	renamed, err := t.df.Rename(mapping)
	if err != nil {
		return nil, err
	}
	return FromDataFrame(renamed, t.cols.WithPrefix(prefix), nil)
}

// ValuesPresence returns, for each named column, the fraction of rows
// holding a non-nil value. A table with no rows has no defined presence
// and yields an EmptyFrameError.
func (t *TypedTable) ValuesPresence(columns ...string) (map[string]float64, error) {
	rows := t.df.NumRows()
	if rows == 0 {
		return nil, errors.EmptyFrameError{}
	}
	presence := make(map[string]float64, len(columns))
	for _, name := range columns {
		nulls, err := t.df.NullCount(name)
		if err != nil {
			return nil, err
		}
		presence[name] = float64(rows-nulls) / float64(rows)
	}
	return presence, nil
}

// Unique returns the distinct values of one column, in encounter order
func (t *TypedTable) Unique(column string) ([]interface{}, error) {
	return t.df.Unique(column)
}

// TruncateColumns returns a TypedTable containing only the columns the
// ColumnSet declares, in declared order, dropping anything else
func (t *TypedTable) TruncateColumns() (*TypedTable, error) {
	truncated, err := t.df.Select(t.cols.Names()...)
	if err != nil {
		return nil, err
	}
	return t.NewData(truncated)
}
