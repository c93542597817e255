package dataframe

import (
	"fmt"

	"github.com/getintently/safe-dataframe/errors"
)

// Rename returns a DataFrame with columns renamed according to mapping.
// Names absent from the DataFrame are ignored.
func (df *DataFrame) Rename(mapping map[string]string) (*DataFrame, error) {
	out := &DataFrame{cols: make(map[string][]interface{}, len(df.cols)), rows: df.rows}
	for _, name := range df.names {
		newName := name
		if mapped, ok := mapping[name]; ok {
			newName = mapped
		}
		if _, dup := out.cols[newName]; dup {
			return nil, errors.DuplicateColumnError{Name: newName}
		}
		out.names = append(out.names, newName)
		out.cols[newName] = append([]interface{}(nil), df.cols[name]...)
	}
	return out, nil
}

// Select returns a DataFrame containing only the given columns, in the
// given order
func (df *DataFrame) Select(names ...string) (*DataFrame, error) {
	out := &DataFrame{cols: make(map[string][]interface{}, len(names)), rows: df.rows}
	for _, name := range names {
		values, ok := df.cols[name]
		if !ok {
			return nil, errors.MissingColumnError{Name: name}
		}
		if _, dup := out.cols[name]; dup {
			return nil, errors.DuplicateColumnError{Name: name}
		}
		out.names = append(out.names, name)
		out.cols[name] = append([]interface{}(nil), values...)
	}
	return out, nil
}

// Drop returns a DataFrame without the given columns. Names absent from
// the DataFrame are ignored.
func (df *DataFrame) Drop(names ...string) (*DataFrame, error) {
	dropped := make(map[string]bool, len(names))
	for _, name := range names {
		dropped[name] = true
	}
	keep := make([]string, 0, len(df.names))
	for _, name := range df.names {
		if !dropped[name] {
			keep = append(keep, name)
		}
	}
	return df.Select(keep...)
}

// FilterRows returns a DataFrame containing only the rows for which fn
// returns true
func (df *DataFrame) FilterRows(fn func(rec Record) (bool, error)) (*DataFrame, error) {
	var kept []int
	for i := 0; i < df.rows; i++ {
		rec, err := df.Record(i)
		if err != nil {
			return nil, err
		}
		keep, err := fn(rec)
		if err != nil {
			return nil, err
		}
		if keep {
			kept = append(kept, i)
		}
	}
	return df.takeRows(kept), nil
}

// MapRows applies fn to every row and returns a DataFrame built from the
// resulting records. Column names and order are preserved; keys added by
// fn which are not existing columns are ignored.
func (df *DataFrame) MapRows(fn func(rec Record) (Record, error)) (*DataFrame, error) {
	out := New(df.names...)
	out.rows = df.rows
	for _, name := range out.names {
		out.cols[name] = make([]interface{}, df.rows)
	}
	for i := 0; i < df.rows; i++ {
		rec, err := df.Record(i)
		if err != nil {
			return nil, err
		}
		mapped, err := fn(rec)
		if err != nil {
			return nil, err
		}
		for _, name := range out.names {
			out.cols[name][i] = mapped[name]
		}
	}
	return out, nil
}

// WithColumn returns a DataFrame with an additional column appended. The
// number of values must match the number of rows.
func (df *DataFrame) WithColumn(name string, values []interface{}) (*DataFrame, error) {
	if _, dup := df.cols[name]; dup {
		return nil, errors.DuplicateColumnError{Name: name}
	}
	if len(df.names) > 0 && len(values) != df.rows {
		return nil, errors.LengthMismatchError{Name: name, Expected: df.rows, Actual: len(values)}
	}
	out := df.Copy()
	out.names = append(out.names, name)
	out.cols[name] = append([]interface{}(nil), values...)
	out.rows = len(values)
	return out, nil
}

// Unique returns the distinct values of the named column, in encounter order
func (df *DataFrame) Unique(name string) ([]interface{}, error) {
	values, ok := df.cols[name]
	if !ok {
		return nil, errors.MissingColumnError{Name: name}
	}
	seen := make(map[string]bool, len(values))
	var unique []interface{}
	for _, v := range values {
		key := valueKey(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, v)
	}
	return unique, nil
}

// NullCount returns the number of nil values in the named column
func (df *DataFrame) NullCount(name string) (int, error) {
	values, ok := df.cols[name]
	if !ok {
		return 0, errors.MissingColumnError{Name: name}
	}
	count := 0
	for _, v := range values {
		if v == nil {
			count++
		}
	}
	return count, nil
}

// takeRows builds a DataFrame from a subset of row indices, preserving
// column order
func (df *DataFrame) takeRows(rows []int) *DataFrame {
	out := New(df.names...)
	out.rows = len(rows)
	for _, name := range out.names {
		values := make([]interface{}, len(rows))
		for i, row := range rows {
			values[i] = df.cols[name][row]
		}
		out.cols[name] = values
	}
	return out
}

// valueKey produces a comparable representation of a cell value, used for
// uniqueness and grouping
func valueKey(v interface{}) string {
	return fmt.Sprintf("%T:%#v", v, v)
}
