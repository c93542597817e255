package sdf

import (
	"github.com/getintently/safe-dataframe/dataframe"
)

// Transform is a unary table-to-table operation, the atomic unit of
// composition. Transforms are pure with respect to external data: they
// close over construction-time arguments only, and must return a new or
// safely-shareable table rather than mutate their input.
//
// Concrete transforms, including pipelines, live in the transform package.
type Transform interface {
	Name() string
	Apply(df *dataframe.DataFrame) (*dataframe.DataFrame, error)
}
