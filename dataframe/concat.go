package dataframe

import (
	"fmt"

	"github.com/getintently/safe-dataframe/errors"
)

const (
	// AxisRows concatenates tables vertically, unioning their columns
	AxisRows = 0
	// AxisColumns concatenates tables horizontally, requiring equal row counts
	AxisColumns = 1
)

// Concat concatenates DataFrames along the given axis.
//
// Along AxisRows the result's columns are the union of all input columns,
// in first-seen order, with nil filled in where an input lacks a column.
// Along AxisColumns all inputs must have the same number of rows and no
// column name may repeat.
func Concat(axis int, dfs ...*DataFrame) (*DataFrame, error) {
	if len(dfs) == 0 {
		return nil, fmt.Errorf("nothing to concatenate")
	}
	switch axis {
	case AxisRows:
		return concatRows(dfs)
	case AxisColumns:
		return concatColumns(dfs)
	default:
		return nil, fmt.Errorf("unsupported concatenation axis %d", axis)
	}
}

func concatRows(dfs []*DataFrame) (*DataFrame, error) {
	var names []string
	seen := make(map[string]bool)
	rows := 0
	for _, df := range dfs {
		for _, name := range df.names {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
		rows += df.rows
	}
	out := New(names...)
	out.rows = rows
	for _, name := range out.names {
		values := make([]interface{}, 0, rows)
		for _, df := range dfs {
			if col, ok := df.cols[name]; ok {
				values = append(values, col...)
			} else {
				values = append(values, make([]interface{}, df.rows)...)
			}
		}
		out.cols[name] = values
	}
	return out, nil
}

func concatColumns(dfs []*DataFrame) (*DataFrame, error) {
	rows := dfs[0].rows
	out := &DataFrame{cols: make(map[string][]interface{}), rows: rows}
	for _, df := range dfs {
		if df.rows != rows {
			return nil, errors.LengthMismatchError{Name: firstName(df), Expected: rows, Actual: df.rows}
		}
		for _, name := range df.names {
			if _, dup := out.cols[name]; dup {
				return nil, errors.DuplicateColumnError{Name: name}
			}
			out.names = append(out.names, name)
			out.cols[name] = append([]interface{}(nil), df.cols[name]...)
		}
	}
	return out, nil
}

func firstName(df *DataFrame) string {
	if len(df.names) > 0 {
		return df.names[0]
	}
	return ""
}
