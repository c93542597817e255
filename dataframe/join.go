package dataframe

import (
	"github.com/getintently/safe-dataframe/errors"
)

// Join performs an inner join of two DataFrames on one key column per
// side. The result carries the left columns followed by the right columns
// minus the right key, in left-row order. Overlapping column names must be
// disambiguated (prefixed) before joining.
func Join(left *DataFrame, right *DataFrame, leftOn string, rightOn string) (*DataFrame, error) {
	leftKeys, ok := left.cols[leftOn]
	if !ok {
		return nil, errors.MissingColumnError{Name: leftOn}
	}
	rightKeys, ok := right.cols[rightOn]
	if !ok {
		return nil, errors.MissingColumnError{Name: rightOn}
	}
	names := left.ColumnNames()
	carried := make([]string, 0, len(right.names))
	for _, name := range right.names {
		if name == rightOn {
			continue
		}
		for _, existing := range names {
			if existing == name {
				return nil, errors.DuplicateColumnError{Name: name}
			}
		}
		names = append(names, name)
		carried = append(carried, name)
	}

	index := make(map[string][]int, len(rightKeys))
	for i, key := range rightKeys {
		k := valueKey(key)
		index[k] = append(index[k], i)
	}

	out := New(names...)
	for _, name := range out.names {
		out.cols[name] = []interface{}{}
	}
	for i, key := range leftKeys {
		for _, j := range index[valueKey(key)] {
			for _, name := range left.names {
				out.cols[name] = append(out.cols[name], left.cols[name][i])
			}
			for _, name := range carried {
				out.cols[name] = append(out.cols[name], right.cols[name][j])
			}
			out.rows++
		}
	}
	return out, nil
}
