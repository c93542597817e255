package schema

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/getintently/safe-dataframe/errors"
)

// columnJSON is the serialized form of one column declaration
type columnJSON struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
}

// schemaJSON is the serialized form of a Schema
type schemaJSON struct {
	Columns []columnJSON `json:"columns"`
}

// ToJSON serializes this Schema to a portable JSON form. Columns appear in
// declaration order, so serialization is deterministic.
func (s *Schema) ToJSON() ([]byte, error) {
	out := schemaJSON{Columns: make([]columnJSON, 0, len(s.names))}
	for _, name := range s.names {
		col := s.schema[name]
		out.Columns = append(out.Columns, columnJSON{
			Name:     name,
			Type:     col.Type().TypeName(),
			Nullable: col.Nullable(),
		})
	}
	return json.Marshal(out)
}

// FromJSON reconstructs a Schema from its ToJSON form
func FromJSON(data []byte) (*Schema, error) {
	s := CreateSchema()
	var err error
	gjson.GetBytes(data, "columns").ForEach(func(_, col gjson.Result) bool {
		typeName := col.Get("type").String()
		colType, ok := columnTypeByName(typeName)
		if !ok {
			err = errors.UnknownColumnTypeError{TypeName: typeName}
			return false
		}
		_, err = s.CreateColumn(col.Get("name").String(), colType, col.Get("nullable").Bool())
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}
