package sdf

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/getintently/safe-dataframe/dataframe"
	"github.com/getintently/safe-dataframe/errors"
	"github.com/getintently/safe-dataframe/schema"
)

// Field binds one logical field name to a physical column name
type Field struct {
	Name   string
	Column string
}

// SchemaBuilder constructs a validation Schema from a logical-field-name to
// physical-column-name mapping. Builders must be pure and deterministic for
// a given mapping.
type SchemaBuilder func(names map[string]string) (*schema.Schema, error)

// A ColumnSet is an immutable, ordered mapping from logical field names to
// physical column names, paired with a SchemaBuilder which derives the
// validation schema for those columns. The schema is computed once, on
// first access, and cached for the lifetime of the instance; deriving a new
// ColumnSet (WithPrefix, WithNames) starts with a fresh cache.
type ColumnSet struct {
	fields     []Field
	build      SchemaBuilder
	dataSchema *schema.Schema
	computed   bool
}

// NewColumnSet is a factory for ColumnSets. A nil builder or an empty or
// duplicated field list is rejected.
func NewColumnSet(build SchemaBuilder, fields ...Field) (*ColumnSet, error) {
	if build == nil {
		return nil, errors.NoSchemaRuleError{}
	}
	if len(fields) == 0 {
		return nil, errors.MissingFieldError{Name: ""}
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.Name] {
			return nil, errors.DuplicateFieldError{Name: f.Name}
		}
		seen[f.Name] = true
	}
	return &ColumnSet{fields: append([]Field(nil), fields...), build: build}, nil
}

// DataSchema returns the validation schema for this ColumnSet, computing it
// via the SchemaBuilder on first access
func (c *ColumnSet) DataSchema() (*schema.Schema, error) {
	if !c.computed {
		s, err := c.build(c.DumpColumnNames())
		if err != nil {
			return nil, err
		}
		c.dataSchema = s
		c.computed = true
	}
	return c.dataSchema, nil
}

// Types returns the mapping from physical column name to declared ColumnType
func (c *ColumnSet) Types() (map[string]schema.ColumnType, error) {
	s, err := c.DataSchema()
	if err != nil {
		return nil, err
	}
	return s.Types(), nil
}

// DumpColumnNames returns the logical-field-name to physical-column-name
// mapping, without the schema
func (c *ColumnSet) DumpColumnNames() map[string]string {
	names := make(map[string]string, len(c.fields))
	for _, f := range c.fields {
		names[f.Name] = f.Column
	}
	return names
}

// Columns returns the logical field names, in declaration order
func (c *ColumnSet) Columns() []string {
	names := make([]string, len(c.fields))
	for i, f := range c.fields {
		names[i] = f.Name
	}
	return names
}

// Names returns the physical column names, in declaration order
func (c *ColumnSet) Names() []string {
	names := make([]string, len(c.fields))
	for i, f := range c.fields {
		names[i] = f.Column
	}
	return names
}

// Name returns the physical column name bound to a logical field
func (c *ColumnSet) Name(field string) (string, error) {
	for _, f := range c.fields {
		if f.Name == field {
			return f.Column, nil
		}
	}
	return "", errors.MissingFieldError{Name: field}
}

// WithNames returns a new ColumnSet with the same fields and builder but
// new physical column names. Every declared field must be present in names.
func (c *ColumnSet) WithNames(names map[string]string) (*ColumnSet, error) {
	fields := make([]Field, len(c.fields))
	for i, f := range c.fields {
		column, ok := names[f.Name]
		if !ok {
			return nil, errors.MissingFieldError{Name: f.Name}
		}
		fields[i] = Field{Name: f.Name, Column: column}
	}
	return &ColumnSet{fields: fields, build: c.build}, nil
}

// WithPrefix returns a new ColumnSet of the same shape where every physical
// column name has prefix prepended. Field names are unchanged and the
// schema cache starts fresh.
func (c *ColumnSet) WithPrefix(prefix string) *ColumnSet {
	fields := make([]Field, len(c.fields))
	for i, f := range c.fields {
		fields[i] = Field{Name: f.Name, Column: prefix + f.Column}
	}
	return &ColumnSet{fields: fields, build: c.build}
}

// ValidateData checks a DataFrame against this ColumnSet's schema. All
// violations are reported together; nil is returned on success.
func (c *ColumnSet) ValidateData(df *dataframe.DataFrame) error {
	s, err := c.DataSchema()
	if err != nil {
		return err
	}
	return s.Validate(df)
}

// Intersection returns the physical column names of this ColumnSet which
// also appear in names, in declaration order
func (c *ColumnSet) Intersection(names []string) []string {
	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[name] = true
	}
	var common []string
	for _, f := range c.fields {
		if present[f.Column] {
			common = append(common, f.Column)
		}
	}
	return common
}

// DumpDict returns the field values plus a serialized form of the schema,
// for persistence and inspection
func (c *ColumnSet) DumpDict() (map[string]interface{}, error) {
	s, err := c.DataSchema()
	if err != nil {
		return nil, err
	}
	serialized, err := s.ToJSON()
	if err != nil {
		return nil, err
	}
	out := make(map[string]interface{}, len(c.fields)+1)
	for _, f := range c.fields {
		out[f.Name] = f.Column
	}
	out["data_schema"] = json.RawMessage(serialized)
	return out, nil
}

// DumpJSON serializes the field values to a JSON object, preserving
// declaration order. The schema is excluded.
func (c *ColumnSet) DumpJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range c.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Column)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ColumnSetFromJSON reconstructs a ColumnSet from a DumpJSON form and a
// builder. Fields keep the document's key order; a data_schema key, if
// present, is ignored in favor of recomputing from the builder.
func ColumnSetFromJSON(build SchemaBuilder, data []byte) (*ColumnSet, error) {
	var fields []Field
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		if key.String() == "data_schema" {
			return true
		}
		fields = append(fields, Field{Name: key.String(), Column: value.String()})
		return true
	})
	return NewColumnSet(build, fields...)
}
