package transform

import (
	sdf "github.com/getintently/safe-dataframe"
	"github.com/getintently/safe-dataframe/dataframe"
)

// GroupedPipeline partitions a table by the distinct values of one column,
// applies a transform independently to each partition, and reassembles the
// results. Partitions are processed and reassembled in first-encounter
// order of their key.
type GroupedPipeline struct {
	group     string
	transform sdf.Transform
}

// NewGroupedPipeline is a factory for GroupedPipelines. Multiple
// transforms are pre-composed into an inner Pipeline.
func NewGroupedPipeline(group string, transforms ...sdf.Transform) *GroupedPipeline {
	var t sdf.Transform
	switch len(transforms) {
	case 0:
		t = Identity()
	case 1:
		t = transforms[0]
	default:
		t = NewPipeline(transforms...)
	}
	return &GroupedPipeline{group: group, transform: t}
}

// Name returns the name of this transform
func (p *GroupedPipeline) Name() string {
	return "grouped_pipeline(" + p.group + ")"
}

// Apply partitions df by the group column, applies the transform per
// partition and row-concatenates the results
func (p *GroupedPipeline) Apply(df *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	if df.IsEmpty() {
		return df, nil
	}
	parts, err := df.Partition(p.group)
	if err != nil {
		return nil, err
	}
	out := make([]*dataframe.DataFrame, len(parts))
	for i, part := range parts {
		transformed, err := p.transform.Apply(part)
		if err != nil {
			return nil, err
		}
		out[i] = transformed
	}
	return dataframe.Concat(dataframe.AxisRows, out...)
}
