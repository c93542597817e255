package transform

import (
	sdf "github.com/getintently/safe-dataframe"
	"github.com/getintently/safe-dataframe/dataframe"
)

type removeColumns struct {
	names []string
}

// Name returns the name of this transform
func (t *removeColumns) Name() string {
	return "remove_columns"
}

// Apply drops the named columns, ignoring any which are absent
func (t *removeColumns) Apply(df *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	return df.Drop(t.names...)
}

// RemoveColumns removes existing columns
func RemoveColumns(names ...string) sdf.Transform {
	return &removeColumns{names: names}
}
