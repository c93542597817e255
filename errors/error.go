package errors

import (
	"fmt"
)

// MissingColumnError occurs when a declared column cannot be found in a table
type MissingColumnError struct{ Name string }

// Error returns a textual representation of this MissingColumnError
func (e MissingColumnError) Error() string {
	return fmt.Sprintf("Table does not contain column with name %s", e.Name)
}

// DuplicateColumnError occurs when a column is added to a table or schema which
// already contains a column with the same name
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Table already contains column with name %s", e.Name)
}

// ColumnTypeError occurs when a value in a column does not satisfy the column's declared type
type ColumnTypeError struct {
	Name  string
	Type  string
	Row   int
	Value interface{}
}

// Error returns a textual representation of this ColumnTypeError
func (e ColumnTypeError) Error() string {
	return fmt.Sprintf("Value for column %s at row %d is not a %s. Was: %#v", e.Name, e.Row, e.Type, e.Value)
}

// NilValueError occurs when a value in a non-nullable column is nil
type NilValueError struct {
	Name string
	Row  int
}

// Error returns a textual representation of this NilValueError
func (e NilValueError) Error() string {
	return fmt.Sprintf("Value for column %s at row %d is nil", e.Name, e.Row)
}

// LengthMismatchError occurs when a column's length does not match the number of rows in a table
type LengthMismatchError struct {
	Name     string
	Expected int
	Actual   int
}

// Error returns a textual representation of this LengthMismatchError
func (e LengthMismatchError) Error() string {
	return fmt.Sprintf("Column %s has %d values, expected %d", e.Name, e.Actual, e.Expected)
}

// RowOutOfRangeError occurs when a row index falls outside a table's bounds
type RowOutOfRangeError struct {
	Row  int
	Rows int
}

// Error returns a textual representation of this RowOutOfRangeError
func (e RowOutOfRangeError) Error() string {
	return fmt.Sprintf("Row %d is out of range for a table with %d rows", e.Row, e.Rows)
}

// EmptyFrameError occurs when an operation requires at least one row and the table has none
type EmptyFrameError struct{}

// Error returns a textual representation of this EmptyFrameError
func (e EmptyFrameError) Error() string {
	return "Table contains no rows"
}

// NoSchemaRuleError occurs when a ColumnSet is constructed without a schema builder
type NoSchemaRuleError struct{}

// Error returns a textual representation of this NoSchemaRuleError
func (e NoSchemaRuleError) Error() string {
	return "ColumnSet does not define a schema builder"
}

// MissingColumnSetError occurs when a TypedTable is constructed without a ColumnSet
type MissingColumnSetError struct{}

// Error returns a textual representation of this MissingColumnSetError
func (e MissingColumnSetError) Error() string {
	return "TypedTable requires a ColumnSet"
}

// MissingFieldError occurs when a ColumnSet does not declare a requested logical field
type MissingFieldError struct{ Name string }

// Error returns a textual representation of this MissingFieldError
func (e MissingFieldError) Error() string {
	return fmt.Sprintf("ColumnSet does not contain field with name %s", e.Name)
}

// DuplicateFieldError occurs when a ColumnSet declares the same logical field twice
type DuplicateFieldError struct{ Name string }

// Error returns a textual representation of this DuplicateFieldError
func (e DuplicateFieldError) Error() string {
	return fmt.Sprintf("ColumnSet already contains field with name %s", e.Name)
}

// UnknownFactoryError occurs when a transform factory is requested from a
// Container under a name which was never registered
type UnknownFactoryError struct{ Name string }

// Error returns a textual representation of this UnknownFactoryError
func (e UnknownFactoryError) Error() string {
	return fmt.Sprintf("No transform factory registered with name %s", e.Name)
}

// UnknownColumnTypeError occurs when a serialized schema references a column type
// which is not part of the built-in catalogue
type UnknownColumnTypeError struct{ TypeName string }

// Error returns a textual representation of this UnknownColumnTypeError
func (e UnknownColumnTypeError) Error() string {
	return fmt.Sprintf("Unknown column type %s", e.TypeName)
}
