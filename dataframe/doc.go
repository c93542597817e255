// Package dataframe provides the in-memory, column-oriented table engine
// consumed by the rest of this module. DataFrames are immutable: every
// operation returns a new table. nil is the missing value.
package dataframe
