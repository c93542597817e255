package schema

import (
	"fmt"
	"reflect"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/getintently/safe-dataframe/dataframe"
	"github.com/getintently/safe-dataframe/errors"
)

// Column describes one declared column: its type, its nullability and its
// position within the Schema.
type Column struct {
	idx      int
	colType  ColumnType
	nullable bool
}

// Clone returns a copy of this Column
func (c *Column) Clone() *Column {
	return &Column{c.idx, c.colType, c.nullable}
}

// Index returns the index of this Column within a Schema
func (c *Column) Index() int {
	return c.idx
}

// Type returns the ColumnType of this Column
func (c *Column) Type() ColumnType {
	return c.colType
}

// Nullable returns true iff this Column admits nil values
func (c *Column) Nullable() bool {
	return c.nullable
}

// Schema is a mapping from column names to type and nullability
// declarations. It validates tables against those declarations and
// serializes to a portable JSON form.
type Schema struct {
	schema map[string]*Column
	names  []string
}

// CreateSchema is a factory for Schemas
func CreateSchema() *Schema {
	return &Schema{schema: make(map[string]*Column)}
}

// CreateColumn declares a new column within the Schema. Returns the Schema
// to allow declaration chaining.
func (s *Schema) CreateColumn(colName string, columnType ColumnType, nullable bool) (*Schema, error) {
	if _, contains := s.schema[colName]; contains {
		return nil, errors.DuplicateColumnError{Name: colName}
	}
	s.schema[colName] = &Column{idx: len(s.names), colType: columnType, nullable: nullable}
	s.names = append(s.names, colName)
	return s, nil
}

// HasColumn returns true iff this Schema contains a column with the given name
func (s *Schema) HasColumn(colName string) bool {
	_, ok := s.schema[colName]
	return ok
}

// Column returns the declaration for the named column
func (s *Schema) Column(colName string) (*Column, error) {
	col, ok := s.schema[colName]
	if !ok {
		return nil, errors.MissingColumnError{Name: colName}
	}
	return col, nil
}

// NumColumns returns the number of columns in this Schema
func (s *Schema) NumColumns() int {
	return len(s.names)
}

// ColumnNames returns the names in the Schema, in declaration order
func (s *Schema) ColumnNames() []string {
	return append([]string(nil), s.names...)
}

// ColumnTypes returns the types in the Schema, in declaration order
func (s *Schema) ColumnTypes() []ColumnType {
	types := make([]ColumnType, len(s.names))
	for i, name := range s.names {
		types[i] = s.schema[name].colType
	}
	return types
}

// Types returns the mapping from column name to declared ColumnType
func (s *Schema) Types() map[string]ColumnType {
	types := make(map[string]ColumnType, len(s.schema))
	for name, col := range s.schema {
		types[name] = col.colType
	}
	return types
}

// Clone returns a copy of this Schema
func (s *Schema) Clone() *Schema {
	out := CreateSchema()
	for _, name := range s.names {
		col := s.schema[name]
		out.schema[name] = col.Clone()
		out.names = append(out.names, name)
	}
	return out
}

// WithPrefix returns a copy of this Schema with prefix prepended to every
// column name
func (s *Schema) WithPrefix(prefix string) *Schema {
	out := CreateSchema()
	for _, name := range s.names {
		out.schema[prefix+name] = s.schema[name].Clone()
		out.names = append(out.names, prefix+name)
	}
	return out
}

// Equals returns nil iff this and another Schema declare the same columns,
// types and nullability in the same order
func (s *Schema) Equals(other *Schema) error {
	if s.NumColumns() != other.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	for _, name := range s.names {
		col := s.schema[name]
		otherCol, err := other.Column(name)
		if err != nil {
			return err
		}
		if col.Index() != otherCol.Index() {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		if reflect.TypeOf(col.Type()) != reflect.TypeOf(otherCol.Type()) {
			return fmt.Errorf("Column %s types do not match", name)
		}
		if col.Nullable() != otherCol.Nullable() {
			return fmt.Errorf("Column %s nullability does not match", name)
		}
	}
	return nil
}

// Validate checks a DataFrame against this Schema. Every declared column
// must be present, every value must satisfy the declared type, and nil
// values are only admitted in nullable columns. All violations are
// collected and reported together; nil is returned on success.
func (s *Schema) Validate(df *dataframe.DataFrame) error {
	var result *multierror.Error
	for _, name := range s.names {
		col := s.schema[name]
		values, err := df.Column(name)
		if err != nil {
			result = multierror.Append(result, errors.MissingColumnError{Name: name})
			continue
		}
		for i, v := range values {
			if v == nil {
				if !col.Nullable() {
					result = multierror.Append(result, errors.NilValueError{Name: name, Row: i})
				}
				continue
			}
			if !col.Type().Accepts(v) {
				result = multierror.Append(result, errors.ColumnTypeError{
					Name:  name,
					Type:  col.Type().TypeName(),
					Row:   i,
					Value: v,
				})
			}
		}
	}
	return result.ErrorOrNil()
}
