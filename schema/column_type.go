package schema

import (
	"fmt"
	"time"
)

// ColumnType is implemented to define a supported column type. A ColumnType
// decides which Go values belong to a column and how they print.
type ColumnType interface {
	TypeName() string              // returns the portable name of this type, used in serialized schemas
	Accepts(v interface{}) bool    // returns true iff v is a legal non-nil value for this type
	ToString(v interface{}) string // produces a string representation of a value of this type
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// TypeName returns the portable name of a BoolColumnType
func (b *BoolColumnType) TypeName() string {
	return "bool"
}

// Accepts returns true iff v is a bool
func (b *BoolColumnType) Accepts(v interface{}) bool {
	_, ok := v.(bool)
	return ok
}

// ToString produces a string representation of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%t", v.(bool))
}

// Int64ColumnType is a column type which stores an integer value. Any of
// Go's signed integer widths is accepted and handled as an int64.
type Int64ColumnType struct{}

// TypeName returns the portable name of an Int64ColumnType
func (b *Int64ColumnType) TypeName() string {
	return "int64"
}

// Accepts returns true iff v is a signed integer
func (b *Int64ColumnType) Accepts(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64:
		return true
	default:
		return false
	}
}

// ToString produces a string representation of an Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v)
}

// Float64ColumnType is a column type which stores a floating-point value
type Float64ColumnType struct{}

// TypeName returns the portable name of a Float64ColumnType
func (b *Float64ColumnType) TypeName() string {
	return "float64"
}

// Accepts returns true iff v is a float
func (b *Float64ColumnType) Accepts(v interface{}) bool {
	switch v.(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// ToString produces a string representation of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%f", v)
}

// StringColumnType is a column type which stores a string value
type StringColumnType struct{}

// TypeName returns the portable name of a StringColumnType
func (b *StringColumnType) TypeName() string {
	return "string"
}

// Accepts returns true iff v is a string
func (b *StringColumnType) Accepts(v interface{}) bool {
	_, ok := v.(string)
	return ok
}

// ToString produces a string representation of a StringColumnType value
func (b *StringColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(string))
}

// TimeColumnType is a column type which stores a time.Time value
type TimeColumnType struct{}

// TypeName returns the portable name of a TimeColumnType
func (b *TimeColumnType) TypeName() string {
	return "time"
}

// Accepts returns true iff v is a time.Time
func (b *TimeColumnType) Accepts(v interface{}) bool {
	_, ok := v.(time.Time)
	return ok
}

// ToString produces a string representation of a TimeColumnType value
func (b *TimeColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(time.Time).String())
}

// columnTypeByName maps portable type names back to ColumnTypes, for
// deserializing schemas
func columnTypeByName(name string) (ColumnType, bool) {
	switch name {
	case "bool":
		return &BoolColumnType{}, true
	case "int64":
		return &Int64ColumnType{}, true
	case "float64":
		return &Float64ColumnType{}, true
	case "string":
		return &StringColumnType{}, true
	case "time":
		return &TimeColumnType{}, true
	default:
		return nil, false
	}
}
