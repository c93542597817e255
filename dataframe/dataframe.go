package dataframe

import (
	"github.com/getintently/safe-dataframe/errors"
)

// Record is a single row of a DataFrame, keyed by column name. Missing
// values are represented as nil.
type Record map[string]interface{}

// A DataFrame is an immutable, column-oriented, in-memory table. Column
// order is significant. Every operation returns a new DataFrame and leaves
// the receiver untouched.
type DataFrame struct {
	names []string
	cols  map[string][]interface{}
	rows  int
}

// New returns an empty DataFrame with the given column names and zero rows.
// Duplicate names are collapsed to the first occurrence.
func New(names ...string) *DataFrame {
	df := &DataFrame{cols: make(map[string][]interface{})}
	for _, name := range names {
		if _, ok := df.cols[name]; ok {
			continue
		}
		df.names = append(df.names, name)
		df.cols[name] = nil
	}
	return df
}

// FromColumns builds a DataFrame from a name->values mapping. order fixes
// the column order; keys of cols not named in order are ignored. All
// columns must have the same length.
func FromColumns(order []string, cols map[string][]interface{}) (*DataFrame, error) {
	df := &DataFrame{cols: make(map[string][]interface{})}
	rows := -1
	for _, name := range order {
		values, ok := cols[name]
		if !ok {
			return nil, errors.MissingColumnError{Name: name}
		}
		if _, dup := df.cols[name]; dup {
			return nil, errors.DuplicateColumnError{Name: name}
		}
		if rows < 0 {
			rows = len(values)
		} else if len(values) != rows {
			return nil, errors.LengthMismatchError{Name: name, Expected: rows, Actual: len(values)}
		}
		df.names = append(df.names, name)
		df.cols[name] = append([]interface{}(nil), values...)
	}
	if rows < 0 {
		rows = 0
	}
	df.rows = rows
	return df, nil
}

// FromRecords builds a DataFrame with the given column order from row
// records. Keys absent from a record become nil; keys outside order are
// ignored.
func FromRecords(order []string, records ...Record) *DataFrame {
	df := New(order...)
	df.rows = len(records)
	for _, name := range df.names {
		values := make([]interface{}, len(records))
		for i, rec := range records {
			values[i] = rec[name]
		}
		df.cols[name] = values
	}
	return df
}

// Copy returns a deep copy of this DataFrame
func (df *DataFrame) Copy() *DataFrame {
	out := &DataFrame{
		names: append([]string(nil), df.names...),
		cols:  make(map[string][]interface{}, len(df.cols)),
		rows:  df.rows,
	}
	for name, values := range df.cols {
		out.cols[name] = append([]interface{}(nil), values...)
	}
	return out
}

// NumRows returns the number of rows in this DataFrame
func (df *DataFrame) NumRows() int {
	return df.rows
}

// NumColumns returns the number of columns in this DataFrame
func (df *DataFrame) NumColumns() int {
	return len(df.names)
}

// Shape returns the row and column counts of this DataFrame
func (df *DataFrame) Shape() (rows int, columns int) {
	return df.rows, len(df.names)
}

// IsEmpty returns true iff this DataFrame contains no rows
func (df *DataFrame) IsEmpty() bool {
	return df.rows == 0
}

// ColumnNames returns the column names of this DataFrame, in column order
func (df *DataFrame) ColumnNames() []string {
	return append([]string(nil), df.names...)
}

// HasColumn returns true iff this DataFrame contains a column with the given name
func (df *DataFrame) HasColumn(name string) bool {
	_, ok := df.cols[name]
	return ok
}

// Column returns a copy of the values in the named column
func (df *DataFrame) Column(name string) ([]interface{}, error) {
	values, ok := df.cols[name]
	if !ok {
		return nil, errors.MissingColumnError{Name: name}
	}
	return append([]interface{}(nil), values...), nil
}

// Value returns the value at the given row in the named column
func (df *DataFrame) Value(row int, name string) (interface{}, error) {
	values, ok := df.cols[name]
	if !ok {
		return nil, errors.MissingColumnError{Name: name}
	}
	if row < 0 || row >= df.rows {
		return nil, errors.RowOutOfRangeError{Row: row, Rows: df.rows}
	}
	return values[row], nil
}

// Record returns the given row as a Record
func (df *DataFrame) Record(row int) (Record, error) {
	if row < 0 || row >= df.rows {
		return nil, errors.RowOutOfRangeError{Row: row, Rows: df.rows}
	}
	rec := make(Record, len(df.names))
	for _, name := range df.names {
		rec[name] = df.cols[name][row]
	}
	return rec, nil
}
