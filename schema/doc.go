// Package schema implements the validation engine: declarative column
// type and nullability constraints which tables can be checked against,
// with a portable JSON serialization.
package schema
