package transform

import (
	sdf "github.com/getintently/safe-dataframe"
	"github.com/getintently/safe-dataframe/dataframe"
)

// identity is a transform which returns its input unchanged
type identity struct{}

// Name returns the name of this transform
func (t *identity) Name() string {
	return "identity"
}

// Apply returns df unchanged
func (t *identity) Apply(df *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	return df, nil
}

// Identity returns the identity Transform
func Identity() sdf.Transform {
	return &identity{}
}
