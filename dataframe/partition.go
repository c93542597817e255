package dataframe

import (
	xxhash "github.com/cespare/xxhash/v2"

	"github.com/getintently/safe-dataframe/errors"
)

// group collects the row indices which share a single key value
type group struct {
	key  string
	rows []int
}

// Partition splits this DataFrame into one DataFrame per distinct value of
// the named column. Partitions are returned in first-encounter order of
// their key, and rows within a partition keep their input order. Keys are
// bucketed by xxhash, with an equality check within each bucket.
func (df *DataFrame) Partition(name string) ([]*DataFrame, error) {
	values, ok := df.cols[name]
	if !ok {
		return nil, errors.MissingColumnError{Name: name}
	}
	buckets := make(map[uint64][]*group)
	var order []*group
	for i, v := range values {
		key := valueKey(v)
		hash := xxhash.Sum64String(key)
		var target *group
		for _, g := range buckets[hash] {
			if g.key == key {
				target = g
				break
			}
		}
		if target == nil {
			target = &group{key: key}
			buckets[hash] = append(buckets[hash], target)
			order = append(order, target)
		}
		target.rows = append(target.rows, i)
	}
	parts := make([]*DataFrame, len(order))
	for i, g := range order {
		parts[i] = df.takeRows(g.rows)
	}
	return parts, nil
}
