// Package transform provides concrete table-to-table transforms and their
// composition: function-backed transforms, short-circuiting pipelines,
// grouped pipelines, fan-out concatenation, and a container which binds
// transform factories to a ColumnSet.
package transform
