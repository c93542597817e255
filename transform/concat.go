package transform

import (
	sdf "github.com/getintently/safe-dataframe"
	"github.com/getintently/safe-dataframe/dataframe"
)

// Concat applies every transform to the same input table independently
// (not chained) and concatenates all outputs into a single table.
type Concat struct {
	transforms []sdf.Transform
	axis       int
}

// NewConcat is a factory for Concats, concatenating along the row axis
func NewConcat(transforms ...sdf.Transform) *Concat {
	return &Concat{transforms: transforms, axis: dataframe.AxisRows}
}

// WithAxis returns a copy of this Concat concatenating along the given
// axis, forwarded to the engine's concatenation
func (c *Concat) WithAxis(axis int) *Concat {
	return &Concat{transforms: c.transforms, axis: axis}
}

// Name returns the name of this transform
func (c *Concat) Name() string {
	return "concat"
}

// Apply fans the input out over every transform and concatenates the
// outputs
func (c *Concat) Apply(df *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	out := make([]*dataframe.DataFrame, len(c.transforms))
	for i, t := range c.transforms {
		result, err := t.Apply(df)
		if err != nil {
			return nil, err
		}
		out[i] = result
	}
	return dataframe.Concat(c.axis, out...)
}
