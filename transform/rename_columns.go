package transform

import (
	sdf "github.com/getintently/safe-dataframe"
	"github.com/getintently/safe-dataframe/dataframe"
)

type renameColumns struct {
	mapping map[string]string
}

// Name returns the name of this transform
func (t *renameColumns) Name() string {
	return "rename_columns"
}

// Apply renames columns according to the mapping
func (t *renameColumns) Apply(df *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	return df.Rename(t.mapping)
}

// RenameColumns renames existing columns
func RenameColumns(mapping map[string]string) sdf.Transform {
	return &renameColumns{mapping: mapping}
}
