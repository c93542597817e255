package sdf

import (
	"github.com/getintently/safe-dataframe/dataframe"
)

// A MergeContainer holds the result of joining two TypedTables, carrying
// the joined DataFrame alongside the ColumnSets which described the join
// inputs. It performs no validation of its own: it assumes the inputs were
// already valid TypedTables.
type MergeContainer struct {
	df    *dataframe.DataFrame
	left  *ColumnSet
	right *ColumnSet
}

// NewMergeContainer is a factory for MergeContainers
func NewMergeContainer(df *dataframe.DataFrame, left *ColumnSet, right *ColumnSet) *MergeContainer {
	return &MergeContainer{df: df, left: left, right: right}
}

// Data returns the joined DataFrame
func (m *MergeContainer) Data() *dataframe.DataFrame {
	return m.df
}

// Left returns the ColumnSet which described the left join input
func (m *MergeContainer) Left() *ColumnSet {
	return m.left
}

// Right returns the ColumnSet which described the right join input
func (m *MergeContainer) Right() *ColumnSet {
	return m.right
}

// L is a shortcut for Left
func (m *MergeContainer) L() *ColumnSet {
	return m.left
}

// R is a shortcut for Right
func (m *MergeContainer) R() *ColumnSet {
	return m.right
}

// PrefixJoinSides prefix-renames either side of a prospective join when a
// non-empty prefix is supplied for it, leaving the other side untouched.
// Used to disambiguate column-name collisions before joining. The inputs
// are never modified.
func PrefixJoinSides(left *TypedTable, right *TypedTable, leftPrefix string, rightPrefix string) (*TypedTable, *TypedTable, error) {
	var err error
	if len(leftPrefix) > 0 {
		left, err = left.PrefixColumns(leftPrefix)
		if err != nil {
			return nil, nil, err
		}
	}
	if len(rightPrefix) > 0 {
		right, err = right.PrefixColumns(rightPrefix)
		if err != nil {
			return nil, nil, err
		}
	}
	return left, right, nil
}

// Merge inner-joins two TypedTables on one logical field per side and
// wraps the result in a MergeContainer. The joined data is not revalidated.
func Merge(left *TypedTable, right *TypedTable, leftField string, rightField string) (*MergeContainer, error) {
	leftOn, err := left.C().Name(leftField)
	if err != nil {
		return nil, err
	}
	rightOn, err := right.C().Name(rightField)
	if err != nil {
		return nil, err
	}
	joined, err := dataframe.Join(left.Data(), right.Data(), leftOn, rightOn)
	if err != nil {
		return nil, err
	}
	return NewMergeContainer(joined, left.C(), right.C()), nil
}
