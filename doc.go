// Package sdf provides a schema-governed wrapper around tabular data:
// ColumnSets bind logical field names to physical column names and a
// validation schema, TypedTables couple a table with the ColumnSet it was
// validated against, and Transforms compose table-to-table operations into
// short-circuiting pipelines.
//
// The underlying table engine lives in the dataframe package and the
// validation engine in the schema package; this package only orchestrates
// them.
package sdf
